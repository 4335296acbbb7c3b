// Package host implements the host-memory storage backend. It realizes the
// same contract as the GPU-texture backend with a plain float32 buffer as the
// physical layout, which makes it the device-free reference for round-trip
// behavior.
package host

import (
	"fmt"

	"github.com/weft-ml/weft/internal/tensor"
)

// record is the physical binding for one identifier: a host float32 buffer
// in the normalized representation plus the logical type needed to invert it.
type record struct {
	buf      []float32
	dtype    tensor.DataType
	count    int
	uploaded bool
}

// HostStorage implements tensor.Storage on host memory.
//
// Like the Manager, it is not internally synchronized; the storage table is
// accessed from one logical thread of control.
type HostStorage struct {
	records  map[int64]*record
	disposed map[int64]struct{}
	closed   bool
}

// New creates a new host-memory storage backend.
func New() *HostStorage {
	return &HostStorage{
		records:  make(map[int64]*record),
		disposed: make(map[int64]struct{}),
	}
}

// Name returns the backend name.
func (h *HostStorage) Name() string {
	return "Host"
}

// Allocate reserves a zeroed buffer for id without writing values.
func (h *HostStorage) Allocate(id int64, shape tensor.Shape, dtype tensor.DataType) error {
	if h.closed {
		return fmt.Errorf("host: allocate %d: %w", id, tensor.ErrBackendClosed)
	}
	if err := shape.Validate(); err != nil {
		return fmt.Errorf("host: allocate %d: %w", id, err)
	}
	if err := h.checkUnallocated(id); err != nil {
		return err
	}

	n := shape.NumElements()
	h.records[id] = &record{buf: make([]float32, n), dtype: dtype, count: n}
	return nil
}

// Upload allocates and writes the normalized values.
func (h *HostStorage) Upload(id int64, shape tensor.Shape, dtype tensor.DataType, vals tensor.Values) error {
	if err := h.Allocate(id, shape, dtype); err != nil {
		return err
	}
	rec := h.records[id]
	copy(rec.buf, vals.Physical())
	rec.uploaded = true
	return nil
}

// Download reads the buffer back as values of the array's logical type.
func (h *HostStorage) Download(id int64) (tensor.Values, error) {
	if h.closed {
		return nil, fmt.Errorf("host: download %d: %w", id, tensor.ErrBackendClosed)
	}
	rec, ok := h.records[id]
	if !ok {
		return nil, fmt.Errorf("host: download %d: %w", id, tensor.ErrUnknownID)
	}
	return tensor.FromPhysical(rec.dtype, rec.buf), nil
}

// Dispose drops the binding for id. A second dispose is an error.
func (h *HostStorage) Dispose(id int64) error {
	if h.closed {
		return fmt.Errorf("host: dispose %d: %w", id, tensor.ErrBackendClosed)
	}
	if _, ok := h.records[id]; !ok {
		return fmt.Errorf("host: dispose %d: %w", id, tensor.ErrDoubleDispose)
	}
	delete(h.records, id)
	h.disposed[id] = struct{}{}
	return nil
}

// Close tears the backend down; every later call fails with
// tensor.ErrBackendClosed.
func (h *HostStorage) Close() error {
	h.records = nil
	h.disposed = nil
	h.closed = true
	return nil
}

// Live returns the number of live bindings.
func (h *HostStorage) Live() int {
	return len(h.records)
}

func (h *HostStorage) checkUnallocated(id int64) error {
	if _, ok := h.records[id]; ok {
		return fmt.Errorf("host: identifier %d already has a live binding", id)
	}
	if _, was := h.disposed[id]; was {
		return fmt.Errorf("host: allocate %d: %w", id, tensor.ErrDoubleDispose)
	}
	return nil
}
