package store

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/ironsheep/rgbimage-mcp/internal/raster"
)

// newTestStore creates a store or fails the test.
func newTestStore(t *testing.T, capacity, maxPixels int, onEvict func(string)) *Store {
	t.Helper()
	s, err := New(Options{Capacity: capacity, MaxPixels: maxPixels, OnEvict: onEvict})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

// blank creates a black image or fails the test.
func blank(t *testing.T, rows, cols int) *raster.Image {
	t.Helper()
	img, err := raster.New(rows, cols)
	if err != nil {
		t.Fatalf("raster.New failed: %v", err)
	}
	return img
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero capacity", Options{Capacity: 0, MaxPixels: 10}},
		{"negative capacity", Options{Capacity: -1, MaxPixels: 10}},
		{"zero max pixels", Options{Capacity: 1, MaxPixels: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opts); err == nil {
				t.Error("New should fail")
			}
		})
	}
}

func TestCreateAndGet(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	img := blank(t, 2, 3)

	if err := s.Create("a", img); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := s.Get("a")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Equal(img) {
		t.Error("Get returned a different image")
	}
}

func TestCreate_CopiesInput(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	img := blank(t, 1, 1)

	if err := s.Create("a", img); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	img.SetPixel(0, 0, raster.NewColor(255, 255, 255))

	got, _ := s.Get("a")
	if got.Pixel(0, 0) != raster.Black() {
		t.Error("stored image followed the caller's copy")
	}

	got.SetPixel(0, 0, raster.NewColor(1, 1, 1))
	again, _ := s.Get("a")
	if again.Pixel(0, 0) != raster.Black() {
		t.Error("mutating a Get result changed the stored image")
	}
}

func TestCreate_Errors(t *testing.T) {
	s := newTestStore(t, 4, 10, nil)
	if err := s.Create("a", blank(t, 1, 1)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	tests := []struct {
		name    string
		key     string
		img     *raster.Image
		wantErr error
	}{
		{"duplicate", "a", blank(t, 1, 1), ErrExists},
		{"empty name", "", blank(t, 1, 1), ErrInvalidName},
		{"too large", "big", blank(t, 3, 4), ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Create(tt.key, tt.img)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error: got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPut_Replaces(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	if err := s.Put("a", blank(t, 1, 1)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := s.Put("a", blank(t, 2, 5)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, _ := s.Get("a")
	if got.Height() != 2 || got.Width() != 5 {
		t.Errorf("dimensions: got %dx%d, want 2x5", got.Height(), got.Width())
	}
	if s.Len() != 1 {
		t.Errorf("Len: got %d, want 1", s.Len())
	}
}

func TestUpdate(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	_ = s.Create("a", blank(t, 2, 3))

	err := s.Update("a", func(img *raster.Image) error {
		img.RotateClockwise()
		return nil
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, _ := s.Get("a")
	if got.Height() != 3 || got.Width() != 2 {
		t.Errorf("dimensions: got %dx%d, want 3x2", got.Height(), got.Width())
	}
}

func TestUpdate_PropagatesError(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	_ = s.Create("a", blank(t, 1, 1))

	want := errors.New("boom")
	if err := s.Update("a", func(*raster.Image) error { return want }); err != want {
		t.Errorf("error: got %v, want %v", err, want)
	}
}

func TestMissingImage(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	noop := func(*raster.Image) error { return nil }

	if err := s.View("x", noop); !errors.Is(err, ErrNotFound) {
		t.Errorf("View: got %v, want ErrNotFound", err)
	}
	if err := s.Update("x", noop); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update: got %v, want ErrNotFound", err)
	}
	if _, err := s.Get("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: got %v, want ErrNotFound", err)
	}
	if err := s.Delete("x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete: got %v, want ErrNotFound", err)
	}
}

func TestDeleteAndNames(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	for _, name := range []string{"c", "a", "b"} {
		_ = s.Create(name, blank(t, 1, 1))
	}

	if got := s.Names(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Names: got %v, want [a b c]", got)
	}

	if err := s.Delete("b"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if got := s.Names(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Names after delete: got %v, want [a c]", got)
	}

	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Len after Clear: got %d, want 0", s.Len())
	}
}

func TestEviction(t *testing.T) {
	var evicted []string
	s := newTestStore(t, 2, 100, func(name string) { evicted = append(evicted, name) })

	_ = s.Create("a", blank(t, 1, 1))
	_ = s.Create("b", blank(t, 1, 1))

	// Touch "a" so that "b" becomes least recently used.
	if _, err := s.Get("a"); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	_ = s.Create("c", blank(t, 1, 1))

	if !reflect.DeepEqual(evicted, []string{"b"}) {
		t.Errorf("evicted: got %v, want [b]", evicted)
	}
	if got := s.Names(); !reflect.DeepEqual(got, []string{"a", "c"}) {
		t.Errorf("Names: got %v, want [a c]", got)
	}

	_ = s.Delete("a")
	s.Clear()
	if len(evicted) != 1 {
		t.Errorf("Delete/Clear should not report evictions, got %v", evicted)
	}
}

func TestCheckSize(t *testing.T) {
	s := newTestStore(t, 1, 12, nil)
	if s.MaxPixels() != 12 {
		t.Errorf("MaxPixels: got %d, want 12", s.MaxPixels())
	}

	tests := []struct {
		rows, cols int
		wantErr    bool
	}{
		{3, 4, false},
		{1, 12, false},
		{12, 1, false},
		{2, 7, true},
		{13, 1, true},
		{1 << 30, 1 << 30, true},
	}

	for _, tt := range tests {
		err := s.CheckSize(tt.rows, tt.cols)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckSize(%d,%d): got %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := newTestStore(t, 4, 100, nil)
	_ = s.Create("a", blank(t, 4, 4))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = s.Update("a", func(img *raster.Image) error {
				img.RotateClockwise()
				img.InvertColors()
				return nil
			})
		}()
		go func() {
			defer wg.Done()
			_ = s.View("a", func(img *raster.Image) error {
				if img.Height() != 4 || img.Width() != 4 {
					t.Errorf("dimensions: got %dx%d, want 4x4", img.Height(), img.Width())
				}
				_ = img.GrayscaleArray()
				return nil
			})
		}()
	}
	wg.Wait()

	// Eight rotations and eight inversions return to the original.
	got, _ := s.Get("a")
	if !got.Equal(blank(t, 4, 4)) {
		t.Error("image should be back to all black")
	}
}
