// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"sync"

	"github.com/gogpu/textatlas/internal/log"
)

// Surface is one offscreen rasterization target. The atlas draws each page
// into a fresh surface and keeps the resulting texture.
//
// Surfaces are NOT thread-safe; they live on the rendering thread.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Canvas returns the canvas drawing into this surface.
	Canvas() Canvas

	// Texture returns the texture holding the surface contents. Ownership
	// transfers to the caller.
	Texture() Texture
}

// SurfaceFactory creates surfaces for atlas pages. alphaOnly selects a
// single-channel mask format over full RGBA.
type SurfaceFactory func(ctx *Context, width, height int, alphaOnly bool) (Surface, error)

// ErrNoSurfaceFactory is the error for a missing surface backend.
// MakeSurface does not return it: with no factory it logs a warning and
// returns nil.
var ErrNoSurfaceFactory = errors.New("render: no surface factory registered")

var (
	factoryMu     sync.RWMutex
	globalFactory SurfaceFactory
)

// RegisterSurfaceFactory installs the global surface factory. Host
// applications register their GPU-backed factory at startup; the recording
// backend registers itself as the default.
func RegisterSurfaceFactory(f SurfaceFactory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	globalFactory = f
}

// MakeSurface creates a surface through the context's factory, falling back
// to the global factory. It returns nil on failure, so page draws
// short-circuit rather than abort the atlas build.
func MakeSurface(ctx *Context, width, height int, alphaOnly bool) Surface {
	if width <= 0 || height <= 0 {
		return nil
	}
	factory := globalFactoryFor(ctx)
	if factory == nil {
		log.Logger().Warn("render: surface requested with no factory registered")
		return nil
	}
	surface, err := factory(ctx, width, height, alphaOnly)
	if err != nil {
		log.Logger().Warn("render: surface creation failed",
			"width", width, "height", height, "alphaOnly", alphaOnly, "err", err)
		return nil
	}
	return surface
}

func globalFactoryFor(ctx *Context) SurfaceFactory {
	if ctx != nil && ctx.surfaces != nil {
		return ctx.surfaces
	}
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	return globalFactory
}
