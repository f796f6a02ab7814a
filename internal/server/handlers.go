package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/rgbimage-mcp/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_create", "image_rotate").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("Tool %s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Reads or updates the named image through the store
//  4. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Construction
	case "image_create":
		return s.handleImageCreate(args)
	case "image_from_pixels":
		return s.handleImageFromPixels(args)
	case "image_copy":
		return s.handleImageCopy(args)

	// Accessors
	case "image_info":
		return s.handleImageInfo(args)
	case "image_get_pixel":
		return s.handleImageGetPixel(args)
	case "image_set_pixel":
		return s.handleImageSetPixel(args)

	// Geometric transforms
	case "image_flip":
		return s.handleImageFlip(args)
	case "image_rotate":
		return s.handleImageRotate(args)
	case "image_shift":
		return s.handleImageShift(args)

	// Colorimetric transforms
	case "image_invert":
		return s.handleImageInvert(args)

	// Export
	case "image_grayscale":
		return s.handleImageGrayscale(args)
	case "image_pixels":
		return s.handleImagePixels(args)
	case "image_render":
		return s.handleImageRender(args)

	// Comparison
	case "image_compare":
		return s.handleImageCompare(args)

	// Registry
	case "image_delete":
		return s.handleImageDelete(args)
	case "image_list":
		return s.handleImageList()

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// ImageInfo describes a stored image after a tool has run.
type ImageInfo struct {
	Name   string `json:"name"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

func infoOf(name string, img *raster.Image) *ImageInfo {
	return &ImageInfo{Name: name, Height: img.Height(), Width: img.Width()}
}

// mutate applies fn to the named image under its write lock and reports the
// resulting dimensions.
func (s *Server) mutate(name string, fn func(img *raster.Image) error) (*ImageInfo, error) {
	var info *ImageInfo
	err := s.images.Update(name, func(img *raster.Image) error {
		if err := fn(img); err != nil {
			return err
		}
		info = infoOf(name, img)
		return nil
	})
	return info, err
}

// save stores img under name, failing on a name clash unless replace is set.
func (s *Server) save(name string, img *raster.Image, replace bool) (*ImageInfo, error) {
	var err error
	if replace {
		err = s.images.Put(name, img)
	} else {
		err = s.images.Create(name, img)
	}
	if err != nil {
		return nil, err
	}
	s.debugf("Stored image %q (%dx%d)", name, img.Height(), img.Width())
	return infoOf(name, img), nil
}

// === Construction Handlers ===

type imageCreateArgs struct {
	Name    string `json:"name"`
	Rows    int    `json:"rows"`
	Cols    int    `json:"cols"`
	Replace bool   `json:"replace"`
}

func (s *Server) handleImageCreate(args json.RawMessage) (interface{}, error) {
	var a imageCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.images.CheckSize(a.Rows, a.Cols); err != nil {
		return nil, err
	}
	img, err := raster.New(a.Rows, a.Cols)
	if err != nil {
		return nil, err
	}
	return s.save(a.Name, img, a.Replace)
}

type imageFromPixelsArgs struct {
	Name    string     `json:"name"`
	Pixels  [][]string `json:"pixels"`
	Replace bool       `json:"replace"`
}

func (s *Server) handleImageFromPixels(args json.RawMessage) (interface{}, error) {
	var a imageFromPixelsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := raster.ParseHexGrid(a.Pixels)
	if err != nil {
		return nil, err
	}
	return s.save(a.Name, img, a.Replace)
}

type imageCopyArgs struct {
	Source string `json:"source"`
	Name   string `json:"name"`
}

func (s *Server) handleImageCopy(args json.RawMessage) (interface{}, error) {
	var a imageCopyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.images.Get(a.Source)
	if err != nil {
		return nil, err
	}
	return s.save(a.Name, img, false)
}

// === Accessor Handlers ===

type imageNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var info *ImageInfo
	err := s.images.View(a.Name, func(img *raster.Image) error {
		info = infoOf(a.Name, img)
		return nil
	})
	return info, err
}

// PixelResult reports the color at a coordinate.
type PixelResult struct {
	Row      int                `json:"row"`
	Col      int                `json:"col"`
	InBounds bool               `json:"in_bounds"`
	Color    raster.ColorResult `json:"color"`
}

type imagePixelArgs struct {
	Name  string `json:"name"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Color string `json:"color"`
}

func (s *Server) handleImageGetPixel(args json.RawMessage) (interface{}, error) {
	var a imagePixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *PixelResult
	err := s.images.View(a.Name, func(img *raster.Image) error {
		c, ok := img.Lookup(a.Row, a.Col)
		result = &PixelResult{Row: a.Row, Col: a.Col, InBounds: ok, Color: c.Describe()}
		return nil
	})
	return result, err
}

// SetPixelResult reports the outcome of image_set_pixel.
type SetPixelResult struct {
	ImageInfo
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	InBounds bool `json:"in_bounds"`
}

func (s *Server) handleImageSetPixel(args json.RawMessage) (interface{}, error) {
	var a imagePixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := raster.ParseHex(a.Color)
	if err != nil {
		return nil, err
	}

	var inBounds bool
	info, err := s.mutate(a.Name, func(img *raster.Image) error {
		inBounds = img.TrySetPixel(a.Row, a.Col, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SetPixelResult{ImageInfo: *info, Row: a.Row, Col: a.Col, InBounds: inBounds}, nil
}

// === Geometric Transform Handlers ===

type imageFlipArgs struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
}

func (s *Server) handleImageFlip(args json.RawMessage) (interface{}, error) {
	var a imageFlipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var flip func(*raster.Image)
	switch a.Direction {
	case "horizontal":
		flip = (*raster.Image).FlipHorizontal
	case "vertical":
		flip = (*raster.Image).FlipVertical
	default:
		return nil, fmt.Errorf("unknown flip direction: %q", a.Direction)
	}

	return s.mutate(a.Name, func(img *raster.Image) error {
		flip(img)
		return nil
	})
}

type imageRotateArgs struct {
	Name      string `json:"name"`
	Direction string `json:"direction"`
	Turns     int    `json:"turns"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Turns == 0 {
		a.Turns = 1
	}
	if a.Turns < 0 {
		return nil, fmt.Errorf("turns must not be negative, got %d", a.Turns)
	}

	var rotate func(*raster.Image)
	switch a.Direction {
	case "clockwise":
		rotate = (*raster.Image).RotateClockwise
	case "counterclockwise":
		rotate = (*raster.Image).RotateCounterClockwise
	default:
		return nil, fmt.Errorf("unknown rotation direction: %q", a.Direction)
	}

	// Four quarter turns are the identity
	turns := a.Turns % 4
	return s.mutate(a.Name, func(img *raster.Image) error {
		for i := 0; i < turns; i++ {
			rotate(img)
		}
		return nil
	})
}

type imageShiftArgs struct {
	Name   string `json:"name"`
	Axis   string `json:"axis"`
	Offset int    `json:"offset"`
}

func (s *Server) handleImageShift(args json.RawMessage) (interface{}, error) {
	var a imageShiftArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var shift func(*raster.Image, int)
	switch a.Axis {
	case "col":
		shift = (*raster.Image).ShiftCol
	case "row":
		shift = (*raster.Image).ShiftRow
	default:
		return nil, fmt.Errorf("unknown shift axis: %q", a.Axis)
	}

	return s.mutate(a.Name, func(img *raster.Image) error {
		shift(img, a.Offset)
		return nil
	})
}

// === Colorimetric Transform Handlers ===

func (s *Server) handleImageInvert(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.mutate(a.Name, func(img *raster.Image) error {
		img.InvertColors()
		return nil
	})
}

// === Export Handlers ===

// GrayscaleResult contains per-pixel luminance values.
type GrayscaleResult struct {
	ImageInfo
	Values [][]float64 `json:"values"`
}

func (s *Server) handleImageGrayscale(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *GrayscaleResult
	err := s.images.View(a.Name, func(img *raster.Image) error {
		result = &GrayscaleResult{ImageInfo: *infoOf(a.Name, img), Values: img.GrayscaleArray()}
		return nil
	})
	return result, err
}

// PixelsResult contains the full pixel grid as hex colors.
type PixelsResult struct {
	ImageInfo
	Pixels [][]string `json:"pixels"`
}

func (s *Server) handleImagePixels(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *PixelsResult
	err := s.images.View(a.Name, func(img *raster.Image) error {
		result = &PixelsResult{ImageInfo: *infoOf(a.Name, img), Pixels: img.HexGrid()}
		return nil
	})
	return result, err
}

// RenderResult contains the debug text rendering of an image.
type RenderResult struct {
	ImageInfo
	Text string `json:"text"`
}

func (s *Server) handleImageRender(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	var result *RenderResult
	err := s.images.View(a.Name, func(img *raster.Image) error {
		result = &RenderResult{ImageInfo: *infoOf(a.Name, img), Text: img.String()}
		return nil
	})
	return result, err
}

// === Comparison Handlers ===

type imageCompareArgs struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CompareResult names the two compared images alongside the statistics.
type CompareResult struct {
	A string `json:"a"`
	B string `json:"b"`
	*raster.CompareResult
}

func (s *Server) handleImageCompare(args json.RawMessage) (interface{}, error) {
	var a imageCompareArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	// Work on copies so the two read locks are never held together
	imgA, err := s.images.Get(a.A)
	if err != nil {
		return nil, err
	}
	imgB, err := s.images.Get(a.B)
	if err != nil {
		return nil, err
	}
	return &CompareResult{A: a.A, B: a.B, CompareResult: raster.Compare(imgA, imgB)}, nil
}

// === Registry Handlers ===

// DeleteResult reports a removed image.
type DeleteResult struct {
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

func (s *Server) handleImageDelete(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.images.Delete(a.Name); err != nil {
		return nil, err
	}
	return &DeleteResult{Name: a.Name, Deleted: true}, nil
}

// ListResult contains the names of all stored images.
type ListResult struct {
	Images []string `json:"images"`
	Count  int      `json:"count"`
}

func (s *Server) handleImageList() (interface{}, error) {
	names := s.images.Names()
	return &ListResult{Images: names, Count: len(names)}, nil
}
