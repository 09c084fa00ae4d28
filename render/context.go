// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Caps holds the device limits the atlas honors.
type Caps struct {
	// MaxTextureSize is the upper bound for any page dimension in pixels.
	MaxTextureSize int
}

// DefaultMaxTextureSize is assumed when the host does not report a limit.
const DefaultMaxTextureSize = 4096

// ContextOption configures Context creation.
type ContextOption func(*Context)

// WithMaxTextureSize overrides the reported maximum texture dimension.
func WithMaxTextureSize(size int) ContextOption {
	return func(c *Context) {
		if size > 0 {
			c.caps.MaxTextureSize = size
		}
	}
}

// WithSurfaceFactory installs a per-context surface factory, overriding the
// registered global factory.
func WithSurfaceFactory(f SurfaceFactory) ContextOption {
	return func(c *Context) {
		c.surfaces = f
	}
}

// Context carries the host device, its capabilities, and the surface
// factory used for rasterizing atlas pages. It is borrowed by the atlas for
// the duration of a build; the atlas never retains it.
//
// Context is confined to the rendering thread that owns the device.
type Context struct {
	device   DeviceHandle
	caps     Caps
	surfaces SurfaceFactory
}

// NewContext creates a context over a host device. A nil device is allowed
// for headless use with the recording surface factory.
func NewContext(device DeviceHandle, opts ...ContextOption) *Context {
	c := &Context{
		device: device,
		caps:   Caps{MaxTextureSize: DefaultMaxTextureSize},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Device returns the host device handle, which may be nil.
func (c *Context) Device() DeviceHandle { return c.device }

// Caps returns the device capabilities.
func (c *Context) Caps() Caps { return c.caps }

// RenderCache supplies per-asset rendering state owned by the host's frame
// loop.
type RenderCache interface {
	// AssetMaxScale returns the maximum scale at which the asset is drawn
	// this frame. The atlas rasterizes at this scale.
	AssetMaxScale(assetID uint32) float32
}
