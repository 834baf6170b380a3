// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"github.com/gogpu/gg"
)

// Canvas is a drawing target that exposes a gg 2D context.
//
// Canvases are NOT thread-safe. Each canvas should be used from a single
// goroutine, or external synchronization must be used.
type Canvas interface {
	// Context returns the 2D drawing context, or nil if the canvas
	// cannot provide one (for example after Close).
	Context() *gg.Context

	// Width returns the canvas width in pixels.
	Width() int

	// Height returns the canvas height in pixels.
	Height() int

	// Resize changes the canvas dimensions and clears its content,
	// even when the dimensions are unchanged.
	Resize(width, height int) error
}

// DirtyMarker is implemented by canvases that upload their content
// lazily, such as window canvases backed by a GPU texture. The gauge calls
// MarkDirty after every repaint.
type DirtyMarker interface {
	MarkDirty()
}
