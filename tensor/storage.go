// Copyright 2025 Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/weft-ml/weft/internal/tensor"
)

// Storage defines the contract that all physical-memory backends implement.
// One physical binding exists per identifier from Upload/Allocate until
// Dispose; the binding itself never crosses this boundary.
//
// Implementations:
//   - backend/host: host-memory buffers
//   - backend/webgpu: pooled 2-D device textures via WebGPU
type Storage = tensor.Storage

// Storage errors, matched with errors.Is.
var (
	// ErrInvalidShape reports a negative dimension or a value count that
	// does not match the logical element count.
	ErrInvalidShape = tensor.ErrInvalidShape

	// ErrUnknownID reports an operation on an identifier with no live
	// descriptor or storage record.
	ErrUnknownID = tensor.ErrUnknownID

	// ErrDoubleDispose reports a dispose of an identifier that was already
	// disposed or never allocated.
	ErrDoubleDispose = tensor.ErrDoubleDispose

	// ErrBackendClosed reports an operation invoked after the backend's own
	// teardown.
	ErrBackendClosed = tensor.ErrBackendClosed

	// ErrPoolExhausted reports that the texture pool could not satisfy an
	// acquisition.
	ErrPoolExhausted = tensor.ErrPoolExhausted

	// ErrNotImplemented reports an operation a backend variant has not yet
	// provided.
	ErrNotImplemented = tensor.ErrNotImplemented
)
