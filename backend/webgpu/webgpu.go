//go:build windows

// Copyright 2025 Weft Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the GPU-texture storage backend.
//
// Arrays are packed into pooled 2-D R32Float device textures. The packing
// layout comes from a shape resolver, the textures from a bounded pool; both
// are injected at construction time.
//
// Example:
//
//	gpu, err := webgpu.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gpu.Close()
//
//	mgr := tensor.NewManager(gpu)
package webgpu

import (
	"github.com/go-webgpu/webgpu/wgpu"

	internalwebgpu "github.com/weft-ml/weft/internal/backend/webgpu"
	"github.com/weft-ml/weft/tensor"
)

// Storage represents the GPU-texture storage implementation.
type Storage = internalwebgpu.Backend

// Config carries construction options for the GPU-texture backend.
type Config = internalwebgpu.Config

// Compile-time check that Storage implements tensor.Storage.
var _ tensor.Storage = (*Storage)(nil)

// New creates a GPU-texture storage backend with default configuration.
//
// This initializes the WebGPU device and texture pool. Call Close when done
// to release every live texture and free GPU resources.
//
// Returns an error if WebGPU initialization fails (e.g. no compatible GPU).
func New() (*Storage, error) {
	return internalwebgpu.New()
}

// NewWithConfig creates a GPU-texture storage backend with the given
// configuration.
func NewWithConfig(cfg Config) (*Storage, error) {
	return internalwebgpu.NewWithConfig(cfg)
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It attempts to initialize a WebGPU adapter to verify that a compatible GPU
// and drivers are present, and is useful for deciding between backends at
// startup.
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}

// ListAdapters returns information about available GPU adapters.
func ListAdapters() ([]*wgpu.AdapterInfo, error) {
	return internalwebgpu.ListAdapters()
}
