package tensor

import "fmt"

// Manager owns the identifier space and the identifier -> descriptor
// registry, and is the single entry point callers use to create, read back
// and dispose arrays. Data-bearing operations are forwarded to the configured
// Storage backend.
//
// The Manager is not internally synchronized. The identifier table is meant
// for one logical thread of control; callers sharing a Manager across
// goroutines must add external mutual exclusion.
type Manager struct {
	storage Storage
	nextID  int64

	registry map[int64]*arrayEntry
	disposed map[int64]struct{}
}

// arrayEntry is the registry slot for one live identifier. uploaded records
// whether the backend holds a physical binding for it.
type arrayEntry struct {
	desc     Descriptor
	uploaded bool
}

// NewManager creates a Manager backed by the given storage backend.
// Identifiers start at 1 and increase monotonically for the lifetime of the
// Manager; they are never reused, even after disposal.
func NewManager(s Storage) *Manager {
	return &Manager{
		storage:  s,
		nextID:   1,
		registry: make(map[int64]*arrayEntry),
		disposed: make(map[int64]struct{}),
	}
}

// CreateArray allocates the next identifier, uploads vals through the storage
// backend when vals is non-nil, and records the descriptor.
//
// A failed upload still consumes the identifier so that identifiers stay
// strictly increasing; the failure is propagated and nothing is registered.
func (m *Manager) CreateArray(shape Shape, dtype DataType, vals Values) (Descriptor, error) {
	if !dtype.Valid() {
		return Descriptor{}, fmt.Errorf("tensor: unsupported data type %d", int(dtype))
	}
	if err := shape.Validate(); err != nil {
		return Descriptor{}, err
	}
	if vals != nil {
		if vals.DataType() != dtype {
			return Descriptor{}, fmt.Errorf("%w: values are %s, array is %s",
				ErrInvalidShape, vals.DataType(), dtype)
		}
		if vals.Len() != shape.NumElements() {
			return Descriptor{}, fmt.Errorf("%w: %d values for shape %v (%d elements)",
				ErrInvalidShape, vals.Len(), shape, shape.NumElements())
		}
	}

	id := m.nextID
	m.nextID++

	desc := Descriptor{ID: id, DType: dtype, Shape: shape.Clone()}
	if vals != nil {
		if err := m.storage.Upload(id, desc.Shape, dtype, vals); err != nil {
			return Descriptor{}, fmt.Errorf("tensor: upload of array %d failed: %w", id, err)
		}
	}

	m.registry[id] = &arrayEntry{desc: desc, uploaded: vals != nil}
	return desc, nil
}

// Download reads the array's values back from the storage backend.
func (m *Manager) Download(id int64) (Values, error) {
	if _, ok := m.registry[id]; !ok {
		return nil, fmt.Errorf("%w: array %d", ErrUnknownID, id)
	}
	return m.storage.Download(id)
}

// Dispose releases the array's physical binding and drops its descriptor.
// Disposal is always explicit; disposing an unknown identifier fails with
// ErrUnknownID and disposing twice fails with ErrDoubleDispose.
func (m *Manager) Dispose(id int64) error {
	entry, ok := m.registry[id]
	if !ok {
		if _, was := m.disposed[id]; was {
			return fmt.Errorf("%w: array %d", ErrDoubleDispose, id)
		}
		return fmt.Errorf("%w: array %d", ErrUnknownID, id)
	}

	// Arrays created without values have no physical binding to release.
	if entry.uploaded {
		if err := m.storage.Dispose(id); err != nil {
			return err
		}
	}
	delete(m.registry, id)
	m.disposed[id] = struct{}{}
	return nil
}

// Descriptor returns the registered descriptor for id.
func (m *Manager) Descriptor(id int64) (Descriptor, bool) {
	entry, ok := m.registry[id]
	if !ok {
		return Descriptor{}, false
	}
	return entry.desc, true
}

// Descriptors returns every live descriptor. The registry replaces a
// diagnostic side channel: tests and tooling inspect it directly.
func (m *Manager) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(m.registry))
	for _, entry := range m.registry {
		out = append(out, entry.desc)
	}
	return out
}

// Live returns the number of live arrays.
func (m *Manager) Live() int {
	return len(m.registry)
}

// NextID returns the identifier the next CreateArray call will consume.
func (m *Manager) NextID() int64 {
	return m.nextID
}
