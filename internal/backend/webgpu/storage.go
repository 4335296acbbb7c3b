// Package webgpu implements the GPU-texture storage backend. Arrays are
// packed into pooled 2-D device textures; each identifier owns exactly one
// texture until it is disposed.
// Uses go-webgpu (github.com/go-webgpu/webgpu) for zero-CGO WebGPU bindings.
package webgpu

import (
	"fmt"

	"github.com/weft-ml/weft/internal/tensor"
)

// Resolver maps a logical shape to a physical 2-D texel layout. It must be
// deterministic and pure; the packing policy is opaque to the storage
// backend.
type Resolver interface {
	PhysicalShape(shape tensor.Shape) (rows, cols int)
}

// Pool owns a bounded set of device textures. Every successful Acquire is
// matched by exactly one Release. Acquire fails with tensor.ErrPoolExhausted
// when the pool cannot satisfy the request.
type Pool interface {
	Acquire(rows, cols int) (Texture, error)
	Release(t Texture)
}

// Texture is one pooled device texture holding row-major float32 texels.
type Texture interface {
	// Write bulk-writes the normalized values into the texture.
	Write(vals []float32) error

	// Read reads the first n texels back into host memory.
	Read(n int) ([]float32, error)
}

// record is the physical binding for one identifier.
type record struct {
	tex   Texture
	rows  int
	cols  int
	dtype tensor.DataType
	count int
}

// TextureStorage implements tensor.Storage over a texture pool and a shape
// resolver, both injected at construction time. It owns the id -> record
// table; one physical texture never backs two live identifiers.
//
// Not internally synchronized, matching the Manager's execution model.
type TextureStorage struct {
	pool     Pool
	resolver Resolver

	records  map[int64]*record
	disposed map[int64]struct{}
	closed   bool
}

var _ tensor.Storage = (*TextureStorage)(nil)

// NewTextureStorage creates a texture-backed storage using the given pool and
// resolver.
func NewTextureStorage(pool Pool, res Resolver) *TextureStorage {
	return &TextureStorage{
		pool:     pool,
		resolver: res,
		records:  make(map[int64]*record),
		disposed: make(map[int64]struct{}),
	}
}

// Allocate resolves the physical layout for shape, acquires a texture of that
// layout from the pool and binds it to id without writing values.
func (s *TextureStorage) Allocate(id int64, shape tensor.Shape, dtype tensor.DataType) error {
	if s.closed {
		return fmt.Errorf("webgpu: allocate %d: %w", id, tensor.ErrBackendClosed)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("webgpu: allocate %d: %w", id, err)
	}
	if err := s.checkUnallocated(id); err != nil {
		return err
	}

	n := shape.NumElements()
	rows, cols := s.resolver.PhysicalShape(shape)
	if rows*cols < n {
		return fmt.Errorf("webgpu: allocate %d: physical shape %dx%d cannot hold %d elements",
			id, rows, cols, n)
	}

	tex, err := s.pool.Acquire(rows, cols)
	if err != nil {
		return fmt.Errorf("webgpu: allocate %d: %w", id, err)
	}

	s.records[id] = &record{tex: tex, rows: rows, cols: cols, dtype: dtype, count: n}
	return nil
}

// Upload allocates and writes vals, normalized to the float32 texel
// representation, into the acquired texture.
func (s *TextureStorage) Upload(id int64, shape tensor.Shape, dtype tensor.DataType, vals tensor.Values) error {
	if err := s.Allocate(id, shape, dtype); err != nil {
		return err
	}
	rec := s.records[id]

	if err := rec.tex.Write(vals.Physical()); err != nil {
		// A failed upload leaves no binding behind; the id is consumed
		// either way and is never reused.
		s.pool.Release(rec.tex)
		delete(s.records, id)
		s.disposed[id] = struct{}{}
		return fmt.Errorf("webgpu: upload %d: %w", id, err)
	}
	return nil
}

// Download reads the texture back and denormalizes to the array's logical
// type, inverting Upload.
func (s *TextureStorage) Download(id int64) (tensor.Values, error) {
	if s.closed {
		return nil, fmt.Errorf("webgpu: download %d: %w", id, tensor.ErrBackendClosed)
	}
	rec, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("webgpu: download %d: %w", id, tensor.ErrUnknownID)
	}

	phys, err := rec.tex.Read(rec.count)
	if err != nil {
		return nil, fmt.Errorf("webgpu: download %d: %w", id, err)
	}
	return tensor.FromPhysical(rec.dtype, phys), nil
}

// Dispose returns the texture to the pool exactly once and drops the binding.
func (s *TextureStorage) Dispose(id int64) error {
	if s.closed {
		return fmt.Errorf("webgpu: dispose %d: %w", id, tensor.ErrBackendClosed)
	}
	rec, ok := s.records[id]
	if !ok {
		return fmt.Errorf("webgpu: dispose %d: %w", id, tensor.ErrDoubleDispose)
	}

	s.pool.Release(rec.tex)
	delete(s.records, id)
	s.disposed[id] = struct{}{}
	return nil
}

// Close releases every live texture back to the pool and tears the backend
// down. Every later operation fails with tensor.ErrBackendClosed.
func (s *TextureStorage) Close() error {
	if s.closed {
		return nil
	}
	for id, rec := range s.records {
		s.pool.Release(rec.tex)
		delete(s.records, id)
	}
	s.closed = true
	return nil
}

// Live returns the number of live bindings.
func (s *TextureStorage) Live() int {
	return len(s.records)
}

func (s *TextureStorage) checkUnallocated(id int64) error {
	if _, ok := s.records[id]; ok {
		return fmt.Errorf("webgpu: identifier %d already has a live binding", id)
	}
	if _, was := s.disposed[id]; was {
		return fmt.Errorf("webgpu: allocate %d: %w", id, tensor.ErrDoubleDispose)
	}
	return nil
}
