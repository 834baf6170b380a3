package steel

import (
	"testing"

	"github.com/gogpu/gg"
)

func alphaAt(dc *gg.Context, x, y int) uint32 {
	_, _, _, a := dc.Image().At(x, y).RGBA()
	return a
}

func TestPainterFrame(t *testing.T) {
	dc := gg.NewContext(100, 100)

	if err := (Painter{}).DrawFrame(dc, FrameBrass, 50, 50, 100, 100); err != nil {
		t.Fatalf("DrawFrame: %v", err)
	}

	// Inside the ring.
	if a := alphaAt(dc, 50, 3); a == 0 {
		t.Error("frame ring should be painted near the edge")
	}
	// The dial area is left for the background layer.
	if a := alphaAt(dc, 50, 50); a != 0 {
		t.Errorf("frame should not paint the centre, alpha = %d", a)
	}
}

func TestPainterBackground(t *testing.T) {
	for _, b := range BackgroundColors() {
		t.Run(b.String(), func(t *testing.T) {
			dc := gg.NewContext(60, 60)
			if err := (Painter{}).DrawBackground(dc, b, 30, 30, 60, 60); err != nil {
				t.Fatalf("DrawBackground: %v", err)
			}
			if a := alphaAt(dc, 30, 30); a == 0 {
				t.Error("background centre should be opaque")
			}
			if a := alphaAt(dc, 0, 0); a != 0 {
				t.Errorf("corner alpha = %d, want 0", a)
			}
		})
	}
}

func TestPainterForeground(t *testing.T) {
	for _, ft := range ForegroundTypes() {
		t.Run(ft.String(), func(t *testing.T) {
			dc := gg.NewContext(60, 60)
			if err := (Painter{}).DrawForeground(dc, ft, 60, 60, true); err != nil {
				t.Fatalf("DrawForeground: %v", err)
			}
			// The knob sits at the centre.
			if a := alphaAt(dc, 30, 30); a == 0 {
				t.Error("knob should be painted at the centre")
			}
		})
	}
}
