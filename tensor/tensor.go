// Copyright 2025 Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the Weft tensor-storage manager.
//
// The package defines the logical side of array storage:
//   - Manager: issues identifiers and owns the id -> descriptor registry
//   - Storage: the contract physical-memory backends implement
//   - Descriptor, Shape, DataType, Values: the logical data model
//
// Physical memory lives behind the Storage contract; see backend/webgpu for
// the GPU-texture implementation and backend/host for the host-memory one.
//
// Example:
//
//	store := host.New()
//	mgr := tensor.NewManager(store)
//	desc, err := mgr.CreateArray(tensor.Shape{2, 3}, tensor.Float32,
//	    tensor.Float32Values{1, 2, 3, 4, 5, 6})
//	vals, err := mgr.Download(desc.ID)
package tensor

import (
	"github.com/weft-ml/weft/internal/tensor"
)

// Type aliases for public API

// DataType represents the element type of an array.
type DataType = tensor.DataType

// Element type constants.
const (
	Float32 DataType = tensor.Float32
	Int32   DataType = tensor.Int32
	Bool    DataType = tensor.Bool
)

// NaNInt32 is the designated invalid marker for Int32 values.
const NaNInt32 = tensor.NaNInt32

// Shape represents the logical dimensions of an array.
// Example: Shape{2, 3} describes a 2x3 array with 6 elements.
type Shape = tensor.Shape

// Descriptor is the logical metadata for one array.
type Descriptor = tensor.Descriptor

// Values carries typed host-side element data for one array.
type Values = tensor.Values

// Concrete Values kinds, one per element type.
type (
	// Float32Values holds float32 element data.
	Float32Values = tensor.Float32Values
	// Int32Values holds int32 element data.
	Int32Values = tensor.Int32Values
	// BoolValues holds bool element data.
	BoolValues = tensor.BoolValues
)

// FromPhysical denormalizes a physical float32 buffer back to typed values.
func FromPhysical(dtype DataType, phys []float32) Values {
	return tensor.FromPhysical(dtype, phys)
}

// Manager owns the identifier space and the array registry.
type Manager = tensor.Manager

// NewManager creates a Manager backed by the given storage backend.
func NewManager(s Storage) *Manager {
	return tensor.NewManager(s)
}
