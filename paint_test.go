package rose

import (
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func TestRotateQuarter(t *testing.T) {
	// 3x2 source with a marker at the top-left pixel.
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	mark := color.RGBA{R: 255, A: 255}
	src.SetRGBA(0, 0, mark)

	tests := []struct {
		turns  int
		w, h   int
		mx, my int
	}{
		{0, 3, 2, 0, 0},
		{1, 2, 3, 1, 0},
		{2, 3, 2, 2, 1},
		{3, 2, 3, 0, 2},
		{4, 3, 2, 0, 0},
		{-1, 2, 3, 0, 2},
	}

	for _, tt := range tests {
		got := rotateQuarter(src, tt.turns)
		b := got.Bounds()
		if b.Dx() != tt.w || b.Dy() != tt.h {
			t.Errorf("turns %d: size = %dx%d, want %dx%d", tt.turns, b.Dx(), b.Dy(), tt.w, tt.h)
			continue
		}
		if c := got.RGBAAt(tt.mx, tt.my); c != mark {
			t.Errorf("turns %d: pixel (%d, %d) = %v, want marker", tt.turns, tt.mx, tt.my, c)
		}
	}
}

// inkBounds returns the bounding box of non-transparent pixels.
func inkBounds(dc *gg.Context) image.Rectangle {
	img := dc.Image()
	b := img.Bounds()
	var r image.Rectangle
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

func TestCompassLabelsTurnWithDial(t *testing.T) {
	const long = "MMMMM"

	tests := []struct {
		name    string
		symbols []string
		upright bool // wider than tall
		region  image.Rectangle
	}{
		{"north", []string{long, "", "", ""}, true, image.Rect(0, 0, 100, 50)},
		{"east", []string{"", long, "", ""}, false, image.Rect(50, 0, 100, 100)},
		{"south", []string{"", "", long, ""}, true, image.Rect(0, 50, 100, 100)},
		{"west", []string{"", "", "", long}, false, image.Rect(0, 0, 50, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGauge(t, WithPointSymbols(tt.symbols))
			ink := inkBounds(g.buffers.context(RoleBackground))
			if ink.Empty() {
				t.Fatal("label not drawn")
			}
			if !ink.In(tt.region) {
				t.Errorf("label at %v, want inside %v", ink, tt.region)
			}
			if wide := ink.Dx() > ink.Dy(); wide != tt.upright {
				t.Errorf("label bounds %dx%d, want wider = %v", ink.Dx(), ink.Dy(), tt.upright)
			}
		})
	}
}
