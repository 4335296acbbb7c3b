//go:build windows

package webgpu

import "github.com/weft-ml/weft/internal/tensor"

// Config carries construction options for the GPU-texture backend.
type Config struct {
	// MaxTextures bounds the number of live device textures.
	// <= 0 selects DefaultMaxTextures.
	MaxTextures int

	// Resolver overrides the packing policy. nil selects SquareResolver.
	Resolver Resolver
}

// Backend bundles the texture storage with the device context and pool it
// runs on. The context and pool are created once here and injected; no
// operation touches global device state.
type Backend struct {
	*TextureStorage
	ctx  *Context
	pool *TexturePool
}

var _ tensor.Storage = (*Backend)(nil)

// New creates a GPU-texture backend with default configuration.
// Returns an error if WebGPU initialization fails.
func New() (*Backend, error) {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a GPU-texture backend with the given configuration.
func NewWithConfig(cfg Config) (*Backend, error) {
	ctx, err := NewContext()
	if err != nil {
		return nil, err
	}

	res := cfg.Resolver
	if res == nil {
		res = SquareResolver{}
	}
	pool := NewTexturePool(ctx, cfg.MaxTextures)

	return &Backend{
		TextureStorage: NewTextureStorage(pool, res),
		ctx:            ctx,
		pool:           pool,
	}, nil
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "WebGPU"
}

// Close releases every live texture, drains the pool and frees the device
// context. Every later operation fails with tensor.ErrBackendClosed.
func (b *Backend) Close() error {
	if err := b.TextureStorage.Close(); err != nil {
		return err
	}
	b.pool.Clear()
	b.ctx.Release()
	return nil
}
