// Package tensor provides the core array types and the storage manager for
// the Weft tensor-storage library.
package tensor

import "math"

// DataType represents runtime type information for arrays.
type DataType int

// Supported element types for arrays.
const (
	Float32 DataType = iota
	Int32
	Bool
)

// NaNInt32 is the designated invalid marker for Int32 values. It is the one
// int32 value that normalizes to a floating NaN in physical storage and is
// restored on download.
const NaNInt32 = math.MinInt32

// Size returns the byte size of one element of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Valid reports whether dt is one of the supported element types.
func (dt DataType) Valid() bool {
	switch dt {
	case Float32, Int32, Bool:
		return true
	default:
		return false
	}
}
