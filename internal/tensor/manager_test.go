package tensor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage is a minimal in-memory Storage for Manager tests.
type memStorage struct {
	bufs     map[int64][]float32
	dtypes   map[int64]DataType
	disposed map[int64]struct{}
	uploads  int
	failNext error
}

func newMemStorage() *memStorage {
	return &memStorage{
		bufs:     make(map[int64][]float32),
		dtypes:   make(map[int64]DataType),
		disposed: make(map[int64]struct{}),
	}
}

func (m *memStorage) Allocate(id int64, shape Shape, dtype DataType) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	m.bufs[id] = make([]float32, shape.NumElements())
	m.dtypes[id] = dtype
	return nil
}

func (m *memStorage) Upload(id int64, shape Shape, dtype DataType, vals Values) error {
	if err := m.Allocate(id, shape, dtype); err != nil {
		return err
	}
	m.uploads++
	copy(m.bufs[id], vals.Physical())
	return nil
}

func (m *memStorage) Download(id int64) (Values, error) {
	buf, ok := m.bufs[id]
	if !ok {
		return nil, fmt.Errorf("mem: %w", ErrUnknownID)
	}
	return FromPhysical(m.dtypes[id], buf), nil
}

func (m *memStorage) Dispose(id int64) error {
	if _, ok := m.bufs[id]; !ok {
		return fmt.Errorf("mem: %w", ErrDoubleDispose)
	}
	delete(m.bufs, id)
	m.disposed[id] = struct{}{}
	return nil
}

func (m *memStorage) Close() error { return nil }

func TestCreateArrayIdentifiersStrictlyIncrease(t *testing.T) {
	mgr := NewManager(newMemStorage())

	var last int64
	for i := 0; i < 100; i++ {
		desc, err := mgr.CreateArray(Shape{1}, Bool, nil)
		require.NoError(t, err)
		assert.Greater(t, desc.ID, last)
		last = desc.ID
	}
}

func TestCreateArrayFirstIdentifierIsOne(t *testing.T) {
	mgr := NewManager(newMemStorage())

	desc, err := mgr.CreateArray(Shape{2, 3}, Float32, Float32Values{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	assert.Equal(t, int64(1), desc.ID)
	assert.Equal(t, Float32, desc.DType)
	assert.True(t, desc.Shape.Equal(Shape{2, 3}))
}

func TestCreateArrayRoundTrip(t *testing.T) {
	mgr := NewManager(newMemStorage())

	desc, err := mgr.CreateArray(Shape{2, 3}, Float32, Float32Values{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	vals, err := mgr.Download(desc.ID)
	require.NoError(t, err)
	assert.Equal(t, Float32Values{1, 2, 3, 4, 5, 6}, vals)
}

func TestCreateArrayNoValuesSkipsUpload(t *testing.T) {
	store := newMemStorage()
	mgr := NewManager(store)

	desc, err := mgr.CreateArray(Shape{4}, Int32, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, store.uploads)

	// Only the logical descriptor exists; the backend has no binding.
	_, err = mgr.Download(desc.ID)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestCreateArrayNegativeDimension(t *testing.T) {
	mgr := NewManager(newMemStorage())

	_, err := mgr.CreateArray(Shape{-1}, Float32, nil)
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestCreateArrayZeroDimensionIsDegenerate(t *testing.T) {
	mgr := NewManager(newMemStorage())

	desc, err := mgr.CreateArray(Shape{0, 3}, Float32, Float32Values{})
	require.NoError(t, err)
	assert.Equal(t, 0, desc.Shape.NumElements())
}

func TestCreateArrayValueCountMismatch(t *testing.T) {
	mgr := NewManager(newMemStorage())

	_, err := mgr.CreateArray(Shape{2, 2}, Float32, Float32Values{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestCreateArrayValueTypeMismatch(t *testing.T) {
	mgr := NewManager(newMemStorage())

	_, err := mgr.CreateArray(Shape{2}, Int32, Float32Values{1, 2})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestCreateArrayFailedUploadConsumesIdentifier(t *testing.T) {
	store := newMemStorage()
	mgr := NewManager(store)

	store.failNext = fmt.Errorf("pool: %w", ErrPoolExhausted)
	_, err := mgr.CreateArray(Shape{2}, Float32, Float32Values{1, 2})
	require.ErrorIs(t, err, ErrPoolExhausted)
	assert.Equal(t, 0, mgr.Live())

	// The failed create consumed id 1; the next array gets id 2.
	desc, err := mgr.CreateArray(Shape{2}, Float32, Float32Values{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), desc.ID)
}

func TestDisposeNeverReusesIdentifiers(t *testing.T) {
	mgr := NewManager(newMemStorage())

	first, err := mgr.CreateArray(Shape{1}, Bool, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	require.NoError(t, mgr.Dispose(first.ID))

	second, err := mgr.CreateArray(Shape{1}, Bool, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestDisposeReleasesBacking(t *testing.T) {
	store := newMemStorage()
	mgr := NewManager(store)

	desc, err := mgr.CreateArray(Shape{3}, Float32, Float32Values{1, 2, 3})
	require.NoError(t, err)

	require.NoError(t, mgr.Dispose(desc.ID))
	assert.Empty(t, store.bufs)

	_, err = mgr.Download(desc.ID)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestDisposeUnknownIdentifier(t *testing.T) {
	mgr := NewManager(newMemStorage())

	err := mgr.Dispose(42)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestDoubleDispose(t *testing.T) {
	mgr := NewManager(newMemStorage())

	desc, err := mgr.CreateArray(Shape{1}, Float32, Float32Values{7})
	require.NoError(t, err)

	require.NoError(t, mgr.Dispose(desc.ID))
	err = mgr.Dispose(desc.ID)
	assert.ErrorIs(t, err, ErrDoubleDispose)
}

func TestRegistryIsQueryable(t *testing.T) {
	mgr := NewManager(newMemStorage())

	a, err := mgr.CreateArray(Shape{2}, Float32, Float32Values{1, 2})
	require.NoError(t, err)
	b, err := mgr.CreateArray(Shape{3}, Int32, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, mgr.Live())

	got, ok := mgr.Descriptor(a.ID)
	require.True(t, ok)
	assert.Equal(t, a, got)

	ids := make(map[int64]bool)
	for _, d := range mgr.Descriptors() {
		ids[d.ID] = true
	}
	assert.True(t, ids[a.ID])
	assert.True(t, ids[b.ID])

	require.NoError(t, mgr.Dispose(b.ID))
	assert.Equal(t, 1, mgr.Live())
	_, ok = mgr.Descriptor(b.ID)
	assert.False(t, ok)
}

// stubStorage declines every data-bearing operation, standing in for a
// backend variant that is not finished yet.
type stubStorage struct{}

func (stubStorage) Allocate(int64, Shape, DataType) error { return ErrNotImplemented }
func (stubStorage) Upload(int64, Shape, DataType, Values) error {
	return fmt.Errorf("stub: upload: %w", ErrNotImplemented)
}
func (stubStorage) Download(int64) (Values, error) {
	return nil, fmt.Errorf("stub: download: %w", ErrNotImplemented)
}
func (stubStorage) Dispose(int64) error { return fmt.Errorf("stub: dispose: %w", ErrNotImplemented) }
func (stubStorage) Close() error        { return nil }

func TestIncompleteBackendSurfacesNotImplemented(t *testing.T) {
	mgr := NewManager(stubStorage{})

	_, err := mgr.CreateArray(Shape{1}, Float32, Float32Values{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImplemented))

	// Arrays without values never touch the backend, so creation succeeds
	// and only the data-bearing operations fail.
	desc, err := mgr.CreateArray(Shape{1}, Float32, nil)
	require.NoError(t, err)
	_, err = mgr.Download(desc.ID)
	assert.ErrorIs(t, err, ErrNotImplemented)
}
