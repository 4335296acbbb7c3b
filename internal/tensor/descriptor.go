package tensor

// Descriptor is the logical metadata for one array: identifier, element type
// and shape. It carries no reference to physical memory; the storage backend
// owns that side. Descriptors are created and mutated only by the Manager.
type Descriptor struct {
	ID    int64
	DType DataType
	Shape Shape
}
