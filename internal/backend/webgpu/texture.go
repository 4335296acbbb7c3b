//go:build windows

package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
)

// copyAlign is the WebGPU row alignment, in bytes, required for
// texture-to-buffer copies.
const copyAlign = 256

// poolTexture is one pooled R32Float device texture.
type poolTexture struct {
	ctx  *Context
	tex  *wgpu.Texture
	rows int
	cols int
}

var _ Texture = (*poolTexture)(nil)

// Write bulk-writes vals into the texture, row-major. vals may be shorter
// than the texel capacity; the tail rows are zero-padded since WriteTexture
// covers whole rows.
func (t *poolTexture) Write(vals []float32) error {
	capacity := t.rows * t.cols
	if len(vals) > capacity {
		return fmt.Errorf("webgpu: %d values exceed %dx%d texture capacity", len(vals), t.rows, t.cols)
	}

	padded := vals
	if len(vals) < capacity {
		padded = make([]float32, capacity)
		copy(padded, vals)
	}

	t.ctx.queue.WriteTexture(
		&wgpu.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
		},
		floatBytes(padded),
		&wgpu.TextureDataLayout{
			Offset:       0,
			BytesPerRow:  uint32(t.cols * 4),
			RowsPerImage: uint32(t.rows),
		},
		&wgpu.Extent3D{
			Width:              uint32(t.cols),
			Height:             uint32(t.rows),
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

// Read copies the texture into a staging buffer and maps it, returning the
// first n texels. Texture-to-buffer copies require 256-byte row alignment,
// so rows are read padded and repacked on the host.
func (t *poolTexture) Read(n int) ([]float32, error) {
	rowBytes := t.cols * 4
	alignedRow := (rowBytes + copyAlign - 1) &^ (copyAlign - 1)
	size := uint64(alignedRow * t.rows)

	staging := t.ctx.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
		Size:  size,
	})
	defer staging.Release()

	encoder := t.ctx.device.CreateCommandEncoder(nil)
	encoder.CopyTextureToBuffer(
		&wgpu.ImageCopyTexture{
			Texture:  t.tex,
			MipLevel: 0,
			Origin:   wgpu.Origin3D{},
		},
		&wgpu.ImageCopyBuffer{
			Buffer: staging,
			Layout: wgpu.TextureDataLayout{
				Offset:       0,
				BytesPerRow:  uint32(alignedRow),
				RowsPerImage: uint32(t.rows),
			},
		},
		&wgpu.Extent3D{
			Width:              uint32(t.cols),
			Height:             uint32(t.rows),
			DepthOrArrayLayers: 1,
		},
	)
	cmdBuffer := encoder.Finish(nil)
	t.ctx.queue.Submit(cmdBuffer)

	if err := staging.MapAsync(t.ctx.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mapped := unsafe.Slice((*byte)(mappedPtr), size)

	raw := make([]byte, t.rows*rowBytes)
	for row := 0; row < t.rows; row++ {
		copy(raw[row*rowBytes:(row+1)*rowBytes], mapped[row*alignedRow:])
	}
	staging.Unmap()

	out := make([]float32, n)
	copy(out, bytesFloats(raw))
	return out, nil
}

// destroy releases the underlying device texture. Called by the pool, never
// by the storage layer.
func (t *poolTexture) destroy() {
	if t.tex != nil {
		t.tex.Release()
		t.tex = nil
	}
}

// floatBytes reinterprets a float32 slice as its little-endian byte layout.
func floatBytes(vals []float32) []byte {
	if len(vals) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy conversion, length is exact
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*4)
}

// bytesFloats reinterprets a byte slice as float32 values.
func bytesFloats(raw []byte) []float32 {
	if len(raw) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy conversion, length is exact
	return unsafe.Slice((*float32)(unsafe.Pointer(&raw[0])), len(raw)/4)
}
