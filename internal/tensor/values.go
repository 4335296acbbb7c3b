package tensor

import "math"

// Values carries typed host-side element data for one array. It is a closed
// tagged variant over the supported element types; each kind owns its buffer
// representation and its normalization to the physical float32 layout used by
// storage backends.
type Values interface {
	// DataType returns the element type tag of the values.
	DataType() DataType

	// Len returns the number of elements.
	Len() int

	// Physical normalizes the values to the backend's row-major float32
	// representation. Invalid markers become floating NaN (see NaNInt32).
	Physical() []float32
}

// Float32Values holds float32 element data.
type Float32Values []float32

// Int32Values holds int32 element data. NaNInt32 is its invalid marker.
type Int32Values []int32

// BoolValues holds bool element data. The bool representation has no invalid
// marker; normalization is total.
type BoolValues []bool

// DataType returns Float32.
func (v Float32Values) DataType() DataType { return Float32 }

// Len returns the number of elements.
func (v Float32Values) Len() int { return len(v) }

// Physical returns the values unchanged. Float32 data is already in the
// physical representation, so no copy is made and NaN bit patterns are
// preserved.
func (v Float32Values) Physical() []float32 { return v }

// DataType returns Int32.
func (v Int32Values) DataType() DataType { return Int32 }

// Len returns the number of elements.
func (v Int32Values) Len() int { return len(v) }

// Physical converts to float32, coercing the NaNInt32 marker to NaN.
func (v Int32Values) Physical() []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		if x == NaNInt32 {
			out[i] = float32(math.NaN())
		} else {
			out[i] = float32(x)
		}
	}
	return out
}

// DataType returns Bool.
func (v BoolValues) DataType() DataType { return Bool }

// Len returns the number of elements.
func (v BoolValues) Len() int { return len(v) }

// Physical converts to float32: false is 0, true is 1.
func (v BoolValues) Physical() []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		if x {
			out[i] = 1
		}
	}
	return out
}

// FromPhysical denormalizes a physical float32 buffer back to typed values,
// inverting Physical for the given element type. For Int32, NaN restores the
// NaNInt32 marker. For Bool, zero is false and anything else is true.
func FromPhysical(dtype DataType, phys []float32) Values {
	switch dtype {
	case Float32:
		out := make(Float32Values, len(phys))
		copy(out, phys)
		return out
	case Int32:
		out := make(Int32Values, len(phys))
		for i, x := range phys {
			if math.IsNaN(float64(x)) {
				out[i] = NaNInt32
			} else {
				out[i] = int32(x)
			}
		}
		return out
	case Bool:
		out := make(BoolValues, len(phys))
		for i, x := range phys {
			out[i] = x != 0
		}
		return out
	default:
		panic("unknown data type")
	}
}
