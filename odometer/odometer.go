// Package odometer draws a rolling-digit numeric readout.
//
// The readout renders into a caller-owned gg context, which it resizes to
// fit the configured digit count. Digits roll smoothly: the rightmost
// column scrolls by the fractional part of the value and every column to
// its left starts turning once all lower columns show 9.
package odometer

import (
	"errors"
	"image/color"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/rose/internal/fonts"
	"github.com/gogpu/rose/surface"
)

// Default colors, matching a classic mechanical counter.
var (
	DefaultValueForeColor   = gg.Hex("#F8F8F8")
	DefaultValueBackColor   = gg.Hex("#050505")
	DefaultDecimalForeColor = gg.Hex("#F01010")
	DefaultDecimalBackColor = gg.Hex("#F0F0F0")
)

// Defaults for zero-valued Params fields.
const (
	DefaultHeight   = 40
	DefaultDecimals = 1
	DefaultDigits   = 4
)

// ErrNilContext is returned when New is given no target context.
var ErrNilContext = errors.New("odometer: nil context")

// Params configures an Odometer. Zero fields take the package defaults.
type Params struct {
	Height int
	Digits int

	// Decimals is the number of decimal columns; DefaultDecimals when nil.
	// Places(0) gives an integer-only readout.
	Decimals *int

	ValueForeColor   color.Color
	ValueBackColor   color.Color
	DecimalForeColor color.Color
	DecimalBackColor color.Color

	// Font for the digits; Go Mono when nil.
	Font *text.FontSource

	// Value is the initial reading.
	Value float64
}

// Places returns n for use as Params.Decimals.
func Places(n int) *int {
	return &n
}

// Odometer is a rolling-digit readout.
type Odometer struct {
	dc *gg.Context

	height      int
	digitWidth  int
	decimals    int
	digits      int
	valueFore   gg.RGBA
	valueBack   gg.RGBA
	decimalFore gg.RGBA
	decimalBack gg.RGBA
	face        text.Face

	value float64
}

// New creates an odometer drawing into dc, resizes dc to fit and paints
// the initial value.
func New(dc *gg.Context, p Params) (*Odometer, error) {
	if dc == nil {
		return nil, ErrNilContext
	}

	src := p.Font
	if src == nil {
		var err error
		if src, err = fonts.Mono(); err != nil {
			return nil, err
		}
	}

	o := &Odometer{
		dc:          dc,
		height:      p.Height,
		decimals:    DefaultDecimals,
		digits:      p.Digits,
		valueFore:   pick(p.ValueForeColor, DefaultValueForeColor),
		valueBack:   pick(p.ValueBackColor, DefaultValueBackColor),
		decimalFore: pick(p.DecimalForeColor, DefaultDecimalForeColor),
		decimalBack: pick(p.DecimalBackColor, DefaultDecimalBackColor),
	}
	if o.height <= 0 {
		o.height = DefaultHeight
	}
	if p.Decimals != nil {
		o.decimals = max(*p.Decimals, 0)
	}
	if o.digits <= 0 {
		o.digits = DefaultDigits
	}

	o.face = src.Face(math.Ceil(float64(o.height) * 0.74))
	o.digitWidth = int(math.Ceil(float64(o.height) * 0.6))

	if err := surface.Reset(dc, o.Width(), o.Height()); err != nil {
		return nil, err
	}
	if err := o.SetValue(p.Value); err != nil {
		return nil, err
	}
	return o, nil
}

func pick(c color.Color, def gg.RGBA) gg.RGBA {
	if c == nil {
		return def
	}
	return gg.FromColor(c)
}

// Width returns the readout width in pixels.
func (o *Odometer) Width() int {
	return o.digitWidth * (o.digits + o.decimals)
}

// Height returns the readout height in pixels.
func (o *Odometer) Height() int {
	return o.height
}

// Value returns the displayed value.
func (o *Odometer) Value() float64 {
	return o.value
}

// Context returns the target context.
func (o *Odometer) Context() *gg.Context {
	return o.dc
}

// SetValue repaints the readout for v. Negative values display as zero.
func (o *Odometer) SetValue(v float64) error {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	o.value = v
	return o.draw()
}

func (o *Odometer) draw() error {
	dc := o.dc
	dc.Clear()
	dc.SetFont(o.face)

	columns := o.digits + o.decimals
	total := o.value * math.Pow10(o.decimals)
	dw, h := float64(o.digitWidth), float64(o.height)

	for i := 0; i < columns; i++ {
		pos := columns - 1 - i // 0 is the rightmost column
		x := float64(i) * dw

		fore, back := o.valueFore, o.valueBack
		if pos < o.decimals {
			fore, back = o.decimalFore, o.decimalBack
		}

		digit, roll := column(total, pos)

		dc.Push()
		dc.ClipRect(x, 0, dw, h)

		shade := gg.NewLinearGradientBrush(x, 0, x, h).
			AddColorStop(0, back.Lerp(gg.Black, 0.6)).
			AddColorStop(0.2, back).
			AddColorStop(0.8, back).
			AddColorStop(1, back.Lerp(gg.Black, 0.6))
		dc.DrawRectangle(x, 0, dw, h)
		dc.SetFillBrush(shade)
		if err := dc.Fill(); err != nil {
			dc.Pop()
			return err
		}

		dc.SetColor(fore.Color())
		cy := h/2 - roll*h
		dc.DrawStringAnchored(digitRune(digit), x+dw/2, cy, 0.5, 0.5)
		if roll > 0 {
			dc.DrawStringAnchored(digitRune((digit+1)%10), x+dw/2, cy+h, 0.5, 0.5)
		}
		dc.Pop()
	}
	return nil
}

// column returns the digit shown at pos (0 = rightmost) for the scaled
// total and how far, in [0, 1), it has rolled toward the next digit.
func column(total float64, pos int) (digit int, roll float64) {
	scale := math.Pow10(pos)
	digit = int(math.Mod(math.Floor(total/scale), 10))

	if pos == 0 {
		return digit, total - math.Floor(total)
	}
	lower := math.Mod(total, scale)
	if edge := scale - 1; lower > edge {
		roll = lower - edge
	}
	return digit, roll
}

func digitRune(d int) string {
	return string(rune('0' + d))
}
