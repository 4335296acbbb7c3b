//go:build windows

package main

import (
	"fmt"

	"github.com/weft-ml/weft/backend/webgpu"
)

func probeGPU() {
	if !webgpu.IsAvailable() {
		fmt.Println("WebGPU: not available")
		return
	}
	fmt.Println("WebGPU: available")

	adapters, err := webgpu.ListAdapters()
	if err != nil {
		fmt.Printf("adapter query failed: %v\n", err)
		return
	}
	for i, info := range adapters {
		fmt.Printf("Adapter %d: %s (%s)\n", i, info.Device, info.Vendor)
	}
}
