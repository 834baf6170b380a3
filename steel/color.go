package steel

import (
	"fmt"

	"github.com/gogpu/gg"
)

// Color is an 8-bit RGBA color definition.
type Color struct {
	R, G, B uint8
	A       float64
}

// rgb returns an opaque Color.
func rgb(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA returns the color including its alpha.
func (c Color) RGBA() gg.RGBA {
	return gg.RGBA2(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, c.A)
}

// Solid returns the color with alpha forced to 1.
func (c Color) Solid() gg.RGBA {
	return gg.RGB(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
}

// String returns the CSS rgba() form of the color.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}
