//go:build windows

package webgpu

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/weft-ml/weft/internal/tensor"
)

// DefaultMaxTextures is the pool's default bound on live device textures.
const DefaultMaxTextures = 256

// texKey identifies a free-list bucket by physical shape.
type texKey struct {
	rows int
	cols int
}

// TexturePool manages reuse of R32Float device textures. Released textures
// are kept in per-shape free lists and handed out again on the next Acquire
// of the same physical shape. The pool is elastic up to maxTextures; past
// that, Acquire fails with tensor.ErrPoolExhausted.
//
// The pool is a shared lower-layer resource and keeps its own mutex even
// though the storage layer above it is single-threaded.
type TexturePool struct {
	ctx         *Context
	maxTextures int

	free map[texKey][]*poolTexture
	mu   sync.Mutex

	// Statistics
	created  uint64
	live     int
	freed    int
	poolHits uint64
	poolMiss uint64
}

// NewTexturePool creates a texture pool on the given device context.
// maxTextures <= 0 selects DefaultMaxTextures.
func NewTexturePool(ctx *Context, maxTextures int) *TexturePool {
	if maxTextures <= 0 {
		maxTextures = DefaultMaxTextures
	}
	return &TexturePool{
		ctx:         ctx,
		maxTextures: maxTextures,
		free:        make(map[texKey][]*poolTexture),
	}
}

var _ Pool = (*TexturePool)(nil)

// Acquire returns a texture of exactly rows x cols texels, reusing a pooled
// one when available.
func (p *TexturePool) Acquire(rows, cols int) (Texture, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("webgpu: invalid physical shape %dx%d", rows, cols)
	}
	if rows > maxTextureDim || cols > maxTextureDim {
		return nil, fmt.Errorf("webgpu: physical shape %dx%d exceeds texture dimension limit %d",
			rows, cols, maxTextureDim)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := texKey{rows: rows, cols: cols}
	if list := p.free[key]; len(list) > 0 {
		tex := list[len(list)-1]
		p.free[key] = list[:len(list)-1]
		p.freed--
		p.live++
		p.poolHits++
		return tex, nil
	}

	if p.live >= p.maxTextures {
		p.poolMiss++
		return nil, fmt.Errorf("webgpu: %d textures live, limit %d: %w",
			p.live, p.maxTextures, tensor.ErrPoolExhausted)
	}

	tex, err := p.createTexture(rows, cols)
	if err != nil {
		return nil, err
	}
	p.poolMiss++
	p.created++
	p.live++
	return tex, nil
}

// Release returns a texture to the free list for reuse.
func (p *TexturePool) Release(t Texture) {
	tex, ok := t.(*poolTexture)
	if !ok || tex == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := texKey{rows: tex.rows, cols: tex.cols}
	p.free[key] = append(p.free[key], tex)
	p.live--
	p.freed++
}

// Clear destroys every pooled texture. Textures still bound to live arrays
// are untouched; they come back through Release.
func (p *TexturePool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for key, list := range p.free {
		for _, tex := range list {
			tex.destroy()
		}
		delete(p.free, key)
	}
	p.freed = 0
}

// Stats returns pool usage counters: textures ever created, currently live
// (acquired, not yet released), currently pooled, and acquire hit/miss
// counts.
func (p *TexturePool) Stats() (created uint64, live, pooled int, hits, misses uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.created, p.live, p.freed, p.poolHits, p.poolMiss
}

// createTexture allocates a fresh R32Float 2-D texture. One texel holds one
// float32 element, so the texture is cols wide and rows tall.
func (p *TexturePool) createTexture(rows, cols int) (*poolTexture, error) {
	tex := p.ctx.device.CreateTexture(&wgpu.TextureDescriptor{
		Usage:     wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst | wgpu.TextureUsageCopySrc,
		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              uint32(cols),
			Height:             uint32(rows),
			DepthOrArrayLayers: 1,
		},
		Format:        wgpu.TextureFormatR32Float,
		MipLevelCount: 1,
		SampleCount:   1,
	})
	if tex == nil {
		return nil, fmt.Errorf("webgpu: failed to create %dx%d texture", rows, cols)
	}
	return &poolTexture{ctx: p.ctx, tex: tex, rows: rows, cols: cols}, nil
}
