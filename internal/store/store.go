// Package store keeps named raster images in memory for the server.
//
// raster.Image has no locking of its own. Store gives every image a
// reader/writer lock so that any number of View calls may run together while
// an Update has the image to itself.
//
// The registry is bounded: once it holds Capacity images, adding another
// evicts the least recently used one.
package store

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/ironsheep/rgbimage-mcp/internal/raster"
)

var (
	// ErrNotFound is returned when no image is stored under a name.
	ErrNotFound = errors.New("image not found")

	// ErrExists is returned by Create when the name is already taken.
	ErrExists = errors.New("image already exists")

	// ErrTooLarge is returned when an image exceeds the configured pixel limit.
	ErrTooLarge = errors.New("image exceeds pixel limit")

	// ErrInvalidName is returned for an empty image name.
	ErrInvalidName = errors.New("image name must not be empty")
)

// Options configures a Store.
type Options struct {
	// Capacity is the maximum number of images kept. Must be positive.
	Capacity int

	// MaxPixels is the largest height*width accepted. Must be positive.
	MaxPixels int

	// OnEvict, if set, is called with the name of every image dropped to
	// make room for a new one.
	OnEvict func(name string)
}

// Store is a concurrency-safe, size-bounded set of named images.
type Store struct {
	mu        sync.Mutex
	images    *lru.Cache
	maxPixels int
	onEvict   func(name string)

	// removing is set while Delete or Clear run so that explicit removals
	// are not reported as evictions. Guarded by mu.
	removing bool
}

type entry struct {
	mu  sync.RWMutex
	img *raster.Image
}

// New creates an empty store.
func New(opts Options) (*Store, error) {
	if opts.MaxPixels <= 0 {
		return nil, fmt.Errorf("invalid max pixels %d: must be positive", opts.MaxPixels)
	}
	s := &Store{maxPixels: opts.MaxPixels, onEvict: opts.OnEvict}
	cache, err := lru.NewWithEvict(opts.Capacity, s.evicted)
	if err != nil {
		return nil, fmt.Errorf("failed to create image registry: %w", err)
	}
	s.images = cache
	return s, nil
}

// evicted runs inside lru calls made with mu held.
func (s *Store) evicted(key interface{}, _ interface{}) {
	if s.removing || s.onEvict == nil {
		return
	}
	s.onEvict(key.(string))
}

// Create stores a copy of img under name. It fails with ErrExists if the
// name is taken.
func (s *Store) Create(name string, img *raster.Image) error {
	if err := s.check(name, img); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.images.Contains(name) {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	s.images.Add(name, &entry{img: img.Clone()})
	return nil
}

// Put stores a copy of img under name, replacing any existing image.
func (s *Store) Put(name string, img *raster.Image) error {
	if err := s.check(name, img); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.images.Add(name, &entry{img: img.Clone()})
	return nil
}

// View calls fn with the named image under a read lock. fn must not modify
// the image or keep a reference to it after returning.
func (s *Store) View(name string, fn func(img *raster.Image) error) error {
	e, err := s.lookup(name)
	if err != nil {
		return err
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fn(e.img)
}

// Update calls fn with the named image under an exclusive lock. fn may
// mutate the image but must not keep a reference to it after returning.
func (s *Store) Update(name string, fn func(img *raster.Image) error) error {
	e, err := s.lookup(name)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.img)
}

// Get returns a copy of the named image.
func (s *Store) Get(name string) (*raster.Image, error) {
	var out *raster.Image
	err := s.View(name, func(img *raster.Image) error {
		out = img.Clone()
		return nil
	})
	return out, err
}

// Delete removes the named image. It returns ErrNotFound if there was none.
func (s *Store) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.images.Contains(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	s.removing = true
	s.images.Remove(name)
	s.removing = false
	return nil
}

// Names returns the stored image names in sorted order.
func (s *Store) Names() []string {
	s.mu.Lock()
	keys := s.images.Keys()
	s.mu.Unlock()

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.(string))
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored images.
func (s *Store) Len() int {
	return s.images.Len()
}

// Clear removes every image without calling OnEvict.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removing = true
	s.images.Purge()
	s.removing = false
}

// MaxPixels returns the configured pixel limit.
func (s *Store) MaxPixels() int {
	return s.maxPixels
}

// CheckSize returns ErrTooLarge if an image of the given dimensions would
// exceed the pixel limit.
func (s *Store) CheckSize(rows, cols int) error {
	if rows > 0 && cols > 0 && rows > s.maxPixels/cols {
		return fmt.Errorf("%w: %dx%d > %d pixels", ErrTooLarge, rows, cols, s.maxPixels)
	}
	return nil
}

func (s *Store) check(name string, img *raster.Image) error {
	if name == "" {
		return ErrInvalidName
	}
	return s.CheckSize(img.Height(), img.Width())
}

func (s *Store) lookup(name string) (*entry, error) {
	v, ok := s.images.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return v.(*entry), nil
}
