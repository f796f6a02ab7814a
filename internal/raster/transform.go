package raster

// FlipHorizontal mirrors the image left to right. For odd widths the middle
// column stays in place.
func (m *Image) FlipHorizontal() {
	for i := 0; i < m.height; i++ {
		row := m.pix[i*m.width : (i+1)*m.width]
		for j, k := 0, m.width-1; j < k; j, k = j+1, k-1 {
			row[j], row[k] = row[k], row[j]
		}
	}
}

// FlipVertical mirrors the image top to bottom. For odd heights the middle
// row stays in place.
func (m *Image) FlipVertical() {
	for i, k := 0, m.height-1; i < k; i, k = i+1, k-1 {
		top := m.pix[i*m.width : (i+1)*m.width]
		bottom := m.pix[k*m.width : (k+1)*m.width]
		for j := range top {
			top[j], bottom[j] = bottom[j], top[j]
		}
	}
}

// RotateClockwise rotates the image a quarter turn clockwise. Height and
// width are swapped: the pixel at (i, j) moves to (j, height-1-i).
func (m *Image) RotateClockwise() {
	h, w := m.height, m.width
	pix := make([]Color, len(m.pix))
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			pix[j*h+(h-1-i)] = m.pix[i*w+j]
		}
	}
	m.replace(w, h, pix)
}

// RotateCounterClockwise rotates the image a quarter turn counter-clockwise.
// Height and width are swapped: the pixel at (i, j) moves to (width-1-j, i).
func (m *Image) RotateCounterClockwise() {
	h, w := m.height, m.width
	pix := make([]Color, len(m.pix))
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			pix[(w-1-j)*h+i] = m.pix[i*w+j]
		}
	}
	m.replace(w, h, pix)
}

// ShiftCol translates the content horizontally by offset columns.
//
// A positive offset moves content right and a negative one moves it left.
// Columns uncovered by the move are filled with black, and content pushed
// past an edge is discarded. An offset whose magnitude is at least the width
// leaves an all-black image. Zero is a no-op.
func (m *Image) ShiftCol(offset int) {
	if offset == 0 {
		return
	}
	pix := make([]Color, len(m.pix))
	for i := 0; i < m.height; i++ {
		for j := 0; j < m.width; j++ {
			src := j - offset
			if src < 0 || src >= m.width {
				continue
			}
			pix[i*m.width+j] = m.pix[i*m.width+src]
		}
	}
	m.replace(m.height, m.width, pix)
}

// ShiftRow translates the content vertically by offset rows.
//
// A positive offset moves content down and a negative one moves it up.
// Rows uncovered by the move are filled with black, and content pushed past
// an edge is discarded. An offset whose magnitude is at least the height
// leaves an all-black image. Zero is a no-op.
func (m *Image) ShiftRow(offset int) {
	if offset == 0 {
		return
	}
	pix := make([]Color, len(m.pix))
	for i := 0; i < m.height; i++ {
		src := i - offset
		if src < 0 || src >= m.height {
			continue
		}
		copy(pix[i*m.width:(i+1)*m.width], m.pix[src*m.width:(src+1)*m.width])
	}
	m.replace(m.height, m.width, pix)
}

// InvertColors replaces every component c of every pixel with 255-c.
func (m *Image) InvertColors() {
	for i := range m.pix {
		m.pix[i] = m.pix[i].Invert()
	}
}

// replace installs a freshly built buffer together with its dimensions.
func (m *Image) replace(height, width int, pix []Color) {
	m.height = height
	m.width = width
	m.pix = pix
}
