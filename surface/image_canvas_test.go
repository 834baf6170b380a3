// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewImageCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"normal", 100, 50, 100, 50},
		{"zero", 0, 0, 1, 1},
		{"negative", -5, 10, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewImageCanvas(tt.width, tt.height)
			if c.Width() != tt.wantW || c.Height() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", c.Width(), c.Height(), tt.wantW, tt.wantH)
			}
			if c.Context() == nil {
				t.Error("Context() = nil")
			}
		})
	}
}

func TestImageCanvasResizeClears(t *testing.T) {
	c := NewImageCanvas(10, 10)
	dc := c.Context()
	dc.ClearWithColor(gg.White)

	// Same size still discards content.
	if err := c.Resize(10, 10); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if _, _, _, a := c.Snapshot().At(5, 5).RGBA(); a != 0 {
		t.Errorf("alpha after same-size resize = %d, want 0", a)
	}

	dc.ClearWithColor(gg.White)
	if err := c.Resize(20, 30); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.Width() != 20 || c.Height() != 30 {
		t.Errorf("size = %dx%d, want 20x30", c.Width(), c.Height())
	}
	if _, _, _, a := c.Snapshot().At(5, 5).RGBA(); a != 0 {
		t.Errorf("alpha after resize = %d, want 0", a)
	}
}

func TestImageCanvasResizeInvalid(t *testing.T) {
	c := NewImageCanvas(10, 10)
	if err := c.Resize(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestImageCanvasClose(t *testing.T) {
	c := NewImageCanvas(10, 10)

	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if c.Context() != nil {
		t.Error("Context() should be nil after Close")
	}
	if err := c.Resize(5, 5); !errors.Is(err, ErrCanvasClosed) {
		t.Errorf("Resize after Close = %v, want ErrCanvasClosed", err)
	}
}
