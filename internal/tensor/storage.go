package tensor

import "errors"

// Storage errors. Backends wrap these with context; callers match them with
// errors.Is.
var (
	// ErrInvalidShape is returned when a dimension is negative or a supplied
	// value count does not match the logical element count.
	ErrInvalidShape = errors.New("tensor: invalid shape")

	// ErrUnknownID is returned for an operation referencing an identifier
	// with no live descriptor or storage record.
	ErrUnknownID = errors.New("tensor: unknown identifier")

	// ErrDoubleDispose is returned when Dispose is called on an identifier
	// that was already disposed or never allocated.
	ErrDoubleDispose = errors.New("tensor: identifier already disposed")

	// ErrBackendClosed is returned by any operation invoked after the
	// backend's own teardown.
	ErrBackendClosed = errors.New("tensor: storage backend closed")

	// ErrPoolExhausted is returned when the texture pool cannot satisfy an
	// acquisition.
	ErrPoolExhausted = errors.New("tensor: texture pool exhausted")

	// ErrNotImplemented is returned by backend variants that have not yet
	// provided an operation, so callers and tests can tell an incomplete
	// backend from a contract violation.
	ErrNotImplemented = errors.New("tensor: operation not implemented")
)

// Storage is the contract any physical-memory provider implements, one
// physical binding per identifier. The binding itself (texture handle,
// physical layout) is backend-internal state and never crosses this boundary.
//
// Per identifier the backend follows a strict state machine:
// unallocated -> allocated -> (uploaded) -> disposed. Allocate and Upload are
// only valid from unallocated, Download from allocated or uploaded, Dispose
// from any live state. Disposed is terminal; identifiers are never reused.
//
// Close tears down the backend as a whole; every later call fails with
// ErrBackendClosed.
type Storage interface {
	// Allocate reserves physical capacity for id without writing values.
	Allocate(id int64, shape Shape, dtype DataType) error

	// Upload allocates and writes values normalized to the physical
	// representation.
	Upload(id int64, shape Shape, dtype DataType, vals Values) error

	// Download reads physical memory back into values of the array's
	// logical type. It is the inverse of Upload.
	Download(id int64) (Values, error)

	// Dispose releases the physical binding for id. A second call is an
	// error.
	Dispose(id int64) error

	// Close releases every live binding and tears the backend down.
	Close() error
}
