package webgpu

import (
	"math"

	"github.com/weft-ml/weft/internal/tensor"
)

// maxTextureDim is the per-side texel limit used when packing. WebGPU
// guarantees maxTextureDimension2D of at least 8192 on every conforming
// device.
const maxTextureDim = 8192

// SquareResolver packs a logical shape into a near-square 2-D layout.
// Near-square textures keep both sides well below the device limit for all
// but extreme element counts.
type SquareResolver struct{}

var _ Resolver = SquareResolver{}

// PhysicalShape returns the packed (rows, cols) layout for shape. The layout
// always has capacity for every logical element; a degenerate empty array
// packs into a single texel.
func (SquareResolver) PhysicalShape(shape tensor.Shape) (rows, cols int) {
	n := shape.NumElements()
	if n <= 1 {
		return 1, 1
	}

	cols = int(math.Ceil(math.Sqrt(float64(n))))
	if cols > maxTextureDim {
		cols = maxTextureDim
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}
