// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// ImageCanvas is an in-memory Canvas backed by a gg.Context.
//
// Example:
//
//	c := surface.NewImageCanvas(200, 200)
//	defer c.Close()
//
//	dc := c.Context()
//	dc.DrawCircle(100, 100, 50)
//	_ = dc.Fill()
type ImageCanvas struct {
	dc     *gg.Context
	closed bool
}

// NewImageCanvas creates an in-memory canvas with the given dimensions.
// Non-positive dimensions are raised to 1.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &ImageCanvas{dc: gg.NewContext(width, height)}
}

// Context returns the drawing context, or nil once the canvas is closed.
func (c *ImageCanvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.dc
}

// Width returns the canvas width.
func (c *ImageCanvas) Width() int {
	return c.dc.Width()
}

// Height returns the canvas height.
func (c *ImageCanvas) Height() int {
	return c.dc.Height()
}

// Resize changes the canvas dimensions and clears the content.
func (c *ImageCanvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if err := Reset(c.dc, width, height); err != nil {
		return fmt.Errorf("surface: resize failed: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current canvas pixels.
func (c *ImageCanvas) Snapshot() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas content to a PNG file.
func (c *ImageCanvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.dc.SavePNG(path)
}

// Close releases the drawing context. Close is idempotent.
func (c *ImageCanvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}

// Reset resizes dc to width x height and discards its content.
// gg skips reallocation when the size is unchanged, so the pixels are
// cleared explicitly in that case.
func Reset(dc *gg.Context, width, height int) error {
	if dc.Width() == width && dc.Height() == height {
		dc.Clear()
		return nil
	}
	return dc.Resize(width, height)
}
