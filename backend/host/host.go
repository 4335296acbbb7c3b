// Copyright 2025 Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package host provides the host-memory storage backend.
package host

import (
	internalhost "github.com/weft-ml/weft/internal/backend/host"
	"github.com/weft-ml/weft/tensor"
)

// Storage represents the host-memory storage implementation.
//
// It realizes the same contract as the GPU-texture backend with plain
// float32 buffers as the physical layout, and needs no device.
type Storage = internalhost.HostStorage

// Compile-time check that Storage implements tensor.Storage.
var _ tensor.Storage = (*Storage)(nil)

// New creates a new host-memory storage backend.
//
// Example:
//
//	store := host.New()
//	mgr := tensor.NewManager(store)
func New() *Storage {
	return internalhost.New()
}
