// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines the GPU-facing boundary of the text atlas: the
// device handle received from the host application, texture handles, the
// surface/canvas pair the atlas rasterizes glyph runs into, and the
// drawAtlas batch call the draw site emits.
//
// The package never creates a GPU device. Hosts implement the interfaces
// (or register a Surface factory) against their own backend; the bundled
// recording implementation captures draw commands for tests and headless
// use.
package render
