//go:build !windows

package main

import "fmt"

func probeGPU() {
	fmt.Println("WebGPU: the go-webgpu bindings support windows only on this release")
}
