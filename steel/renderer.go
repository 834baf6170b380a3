package steel

import (
	"github.com/gogpu/gg"
)

// Renderer paints the static gauge layers into an offscreen context.
// Implementations draw synchronously and report drawing failures.
type Renderer interface {
	// DrawFrame paints the frame ring centred at (cx, cy).
	DrawFrame(dc *gg.Context, design FrameDesign, cx, cy float64, w, h int) error

	// DrawBackground paints the dial background centred at (cx, cy).
	DrawBackground(dc *gg.Context, color BackgroundColor, cx, cy float64, w, h int) error

	// DrawForeground paints the glass highlight; knob adds a centre cap.
	DrawForeground(dc *gg.Context, ft ForegroundType, w, h int, knob bool) error
}

// Proportions of the gauge radius shared by all layers.
const (
	frameOuter      = 1.0
	frameInner      = 0.841121
	backgroundOuter = 0.831775
)

// Painter is the default Renderer, drawing with gg gradients.
type Painter struct{}

var _ Renderer = Painter{}

var frameStops = [...][]Color{
	FrameMetal:       {rgb(254, 254, 254), rgb(210, 210, 210), rgb(179, 179, 179), rgb(213, 213, 213)},
	FrameShinyMetal:  {rgb(254, 254, 254), rgb(210, 210, 210), rgb(179, 179, 179), rgb(160, 160, 160)},
	FrameBlackMetal:  {rgb(64, 64, 64), rgb(25, 25, 25), rgb(0, 0, 0), rgb(64, 64, 64)},
	FrameBrass:       {rgb(249, 243, 155), rgb(246, 226, 101), rgb(240, 225, 132), rgb(90, 57, 22)},
	FrameSteel:       {rgb(231, 237, 237), rgb(189, 199, 198), rgb(192, 201, 200), rgb(23, 31, 33)},
	FrameChrome:      {rgb(255, 255, 255), rgb(210, 210, 210), rgb(255, 255, 255), rgb(150, 150, 150)},
	FrameGold:        {rgb(255, 255, 207), rgb(255, 237, 96), rgb(254, 199, 57), rgb(255, 249, 203)},
	FrameAnthracite:  {rgb(118, 117, 135), rgb(74, 74, 82), rgb(50, 50, 54), rgb(79, 79, 87)},
	FrameTiltedGray:  {rgb(255, 255, 255), rgb(210, 210, 210), rgb(165, 165, 165), rgb(255, 255, 255)},
	FrameTiltedBlack: {rgb(102, 102, 102), rgb(0, 0, 0), rgb(102, 102, 102), rgb(0, 0, 0)},
	FrameGlossyMetal: {rgb(207, 207, 207), rgb(205, 204, 205), rgb(244, 244, 244), rgb(255, 255, 255)},
}

// DrawFrame paints a ring between the outer edge and the dial.
func (Painter) DrawFrame(dc *gg.Context, design FrameDesign, cx, cy float64, w, h int) error {
	stops := frameStops[FrameMetal]
	if design >= 0 && design < frameDesignCount {
		stops = frameStops[design]
	}
	r := float64(min(w, h)) / 2

	grad := gg.NewLinearGradientBrush(cx, cy-r, cx, cy+r)
	spread(grad, stops)

	dc.Push()
	defer dc.Pop()

	dc.SetFillRule(gg.FillRuleEvenOdd)
	dc.DrawCircle(cx, cy, r*frameOuter)
	dc.DrawCircle(cx, cy, r*frameInner)
	dc.SetFillBrush(grad)
	if err := dc.Fill(); err != nil {
		return err
	}

	// Thin dark edge between frame and dial.
	dc.SetFillRule(gg.FillRuleNonZero)
	dc.SetRGBA(0, 0, 0, 0.6)
	dc.SetLineWidth(r * 0.01)
	dc.DrawCircle(cx, cy, r*frameInner)
	return dc.Stroke()
}

// DrawBackground paints the dial with a vertical three-stop gradient
// and a soft inner shadow.
func (Painter) DrawBackground(dc *gg.Context, color BackgroundColor, cx, cy float64, w, h int) error {
	p := color.palette()
	r := float64(min(w, h)) / 2 * backgroundOuter

	grad := gg.NewLinearGradientBrush(cx, cy-r, cx, cy+r).
		AddColorStop(0, p.start.RGBA()).
		AddColorStop(0.4, p.middle.RGBA()).
		AddColorStop(1, p.stop.RGBA())

	dc.Push()
	defer dc.Pop()

	dc.DrawCircle(cx, cy, r)
	dc.SetFillBrush(grad)
	if err := dc.Fill(); err != nil {
		return err
	}

	shadow := gg.NewRadialGradientBrush(cx, cy, 0, r).
		AddColorStop(0, gg.RGBA2(0, 0, 0, 0)).
		AddColorStop(0.86, gg.RGBA2(0, 0, 0, 0)).
		AddColorStop(0.92, gg.RGBA2(0, 0, 0, 0.1)).
		AddColorStop(1, gg.RGBA2(0, 0, 0, 0.3))
	dc.DrawCircle(cx, cy, r)
	dc.SetFillBrush(shadow)
	return dc.Fill()
}

// DrawForeground paints the glass highlight over the upper part of the dial.
func (Painter) DrawForeground(dc *gg.Context, ft ForegroundType, w, h int, knob bool) error {
	cx, cy := float64(w)/2, float64(h)/2
	r := float64(min(w, h)) / 2 * backgroundOuter

	dc.Push()
	defer dc.Pop()

	if knob {
		dc.DrawCircle(cx, cy, r*0.09)
		dc.SetFillBrush(gg.NewLinearGradientBrush(cx, cy-r*0.09, cx, cy+r*0.09).
			AddColorStop(0, gg.RGB(0.95, 0.95, 0.95)).
			AddColorStop(1, gg.RGB(0.4, 0.4, 0.4)))
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	top := cy - r*0.98
	switch ft {
	case ForegroundType2:
		dc.DrawEllipse(cx, cy-r*0.45, r*0.8, r*0.5)
	case ForegroundType3:
		dc.DrawEllipse(cx, cy-r*0.5, r*0.9, r*0.45)
	case ForegroundType4:
		dc.DrawEllipse(cx-r*0.2, cy-r*0.45, r*0.6, r*0.45)
	case ForegroundType5:
		// Lower crescent reflection.
		dc.DrawEllipse(cx, cy+r*0.55, r*0.7, r*0.3)
		top = cy + r*0.25
	default:
		dc.DrawEllipse(cx, cy-r*0.4, r*0.85, r*0.56)
	}

	grad := gg.NewLinearGradientBrush(cx, top, cx, top+r).
		AddColorStop(0, gg.RGBA2(1, 1, 1, 0.28)).
		AddColorStop(0.6, gg.RGBA2(1, 1, 1, 0.06)).
		AddColorStop(1, gg.RGBA2(1, 1, 1, 0))
	dc.SetFillBrush(grad)
	return dc.Fill()
}

// spread places stops evenly along a gradient.
func spread(grad *gg.LinearGradientBrush, stops []Color) {
	if len(stops) == 1 {
		grad.AddColorStop(0, stops[0].RGBA())
		return
	}
	for i, c := range stops {
		grad.AddColorStop(float64(i)/float64(len(stops)-1), c.RGBA())
	}
}
