package rose

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/rose/internal/fonts"
	"github.com/gogpu/rose/surface"
)

// Text proportions, relative to the gauge size.
const (
	compassFont   = 0.08
	compassInset  = 0.125
	unitFont      = 0.05
	unitTop       = 0.67
	unitMaxWidth  = 0.5
	plotTitleSize = 0.05
	plotGutter    = 0.2
)

// resetBuffers discards the content of the buffers in roles. Hidden
// layers are left alone; the plot is always reset.
func (g *Gauge) resetBuffers(roles roleSet) error {
	for r := Role(0); r < roleCount; r++ {
		if !roles.has(r) || !g.layerVisible(r) {
			continue
		}
		if err := g.buffers.reset(r); err != nil {
			return fmt.Errorf("rose: reset %s buffer: %w", r, err)
		}
	}
	return nil
}

func (g *Gauge) layerVisible(r Role) bool {
	switch r {
	case RoleFrame:
		return g.frameVisible
	case RoleBackground:
		return g.backgroundVisible
	case RoleForeground:
		return g.foregroundVisible
	}
	return true
}

// init draws the static content of the buffers in roles and, with odo
// set, creates the odometer readout.
func (g *Gauge) init(roles roleSet, odo bool) error {
	g.initialized = true

	if roles.has(RoleFrame) && g.frameVisible {
		dc := g.buffers.context(RoleFrame)
		if err := g.renderer.DrawFrame(dc, g.frameDesign, g.center, g.center, g.size, g.size); err != nil {
			return fmt.Errorf("rose: draw frame: %w", err)
		}
		g.buffers.touch(RoleFrame)
	}

	if roles.has(RoleBackground) && g.backgroundVisible {
		dc := g.buffers.context(RoleBackground)
		if err := g.renderer.DrawBackground(dc, g.backgroundColor, g.center, g.center, g.size, g.size); err != nil {
			return fmt.Errorf("rose: draw background: %w", err)
		}
		if err := g.drawCompassPoints(dc); err != nil {
			return err
		}
		g.buffers.touch(RoleBackground)
	}

	if roles.has(RolePlot) && len(g.value) > 0 {
		if err := g.drawPlot(); err != nil {
			return fmt.Errorf("rose: draw plot: %w", err)
		}
		g.buffers.touch(RolePlot)
	}

	if roles.has(RoleForeground) && g.foregroundVisible {
		dc := g.buffers.context(RoleForeground)
		if err := g.renderer.DrawForeground(dc, g.foregroundType, g.size, g.size, false); err != nil {
			return fmt.Errorf("rose: draw foreground: %w", err)
		}
		g.buffers.touch(RoleForeground)
	}

	if odo && g.useOdometer {
		p := g.odometerParams
		p.Height = int(math.Ceil(float64(g.size) * odometerHeight))
		p.Value = g.odoValue
		readout, err := g.newReadout(g.odoBuffer, p)
		if err != nil {
			return fmt.Errorf("rose: create odometer: %w", err)
		}
		g.odo = readout
		g.odoPosX = float64(g.size-g.odoBuffer.Width()) / 2
	}
	return nil
}

type plotSetting struct {
	key   string
	value any
}

func (g *Gauge) drawPlot() error {
	ps := float64(g.plotSize)
	p := g.newPlotter(g.buffers.context(RolePlot), g.value)

	settings := []plotSetting{
		{"chart.strokestyle", "black"},
		{"chart.background.axes.color", "gray"},
		{"chart.colors.alpha", 0.5},
		{"chart.colors", []string{"Gradient(#408040:red:#7070A0)"}},
		{"chart.margin", math.Ceil(40 / float64(len(g.value)))},
		{"chart.title", norm.NFC.String(g.titleString)},
		{"chart.title.size", math.Ceil(plotTitleSize * ps)},
		{"chart.title.bold", false},
		{"chart.title.color", g.backgroundColor.LabelColor().Solid()},
		{"chart.gutter.top", plotGutter * ps},
		{"chart.gutter.bottom", plotGutter * ps},
		{"chart.tooltips.effect", "snap"},
		{"chart.labels.axes", ""},
		{"chart.background.circles", true},
		{"chart.background.grid.spokes", 16},
		{"chart.radius", ps / 2},
	}
	if g.font != nil {
		settings = append(settings, plotSetting{"chart.font", g.font})
	}

	for _, s := range settings {
		if err := p.Set(s.key, s.value); err != nil {
			return err
		}
	}
	return p.Draw()
}

// drawCompassPoints labels the four cardinal directions. Eight symbols
// are given as N, NE, E, ... and every second one is drawn. Each label
// sits 0.125*size inside the top edge of the dial turned by a quarter
// turn per point, so east reads sideways and south upside down.
func (g *Gauge) drawCompassPoints(dc *gg.Context) error {
	n := len(g.pointSymbols)
	if n != 4 && n != 8 {
		return nil
	}
	step := n / 4

	src, err := g.fontSource()
	if err != nil {
		return err
	}
	size := float64(g.size)
	dist := size/2 - size*compassInset
	col := g.backgroundColor.LabelColor().Solid()

	for i := 0; i < 4; i++ {
		label := norm.NFC.String(g.pointSymbols[i*step])
		if label == "" {
			continue
		}
		face := fitFace(src, compassFont*size, label, size)
		img := rotateQuarter(renderLabel(label, face, col), i)

		a := float64(i) * math.Pi / 2
		x := g.center + dist*math.Sin(a)
		y := g.center - dist*math.Cos(a)
		b := img.Bounds()
		dc.DrawImage(gg.ImageBufFromImage(img),
			math.Round(x-float64(b.Dx())/2), math.Round(y-float64(b.Dy())/2))
	}
	return nil
}

// renderLabel draws s centred in a tight transparent image. gg draws text
// without the current transform, so rotated labels are drawn upright here
// and turned afterwards.
func renderLabel(s string, face text.Face, col gg.RGBA) *image.RGBA {
	w, h := text.Measure(s, face)
	lc := gg.NewContext(max(int(math.Ceil(w))+2, 1), max(int(math.Ceil(h))+2, 1))
	lc.SetFont(face)
	lc.SetColor(col.Color())
	lc.DrawStringAnchored(s, float64(lc.Width())/2, float64(lc.Height())/2, 0.5, 0.5)

	img := lc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// rotateQuarter returns src turned clockwise by turns quarter turns.
// Quarter turns only permute pixels, so no resampling is involved.
func rotateQuarter(src *image.RGBA, turns int) *image.RGBA {
	turns = ((turns % 4) + 4) % 4
	if turns == 0 {
		return src
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dw, dh := w, h
	if turns%2 == 1 {
		dw, dh = h, w
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var dx, dy int
			switch turns {
			case 1:
				dx, dy = h-1-y, x
			case 2:
				dx, dy = w-1-x, h-1-y
			case 3:
				dx, dy = y, w-1-x
			}
			dst.SetRGBA(dx, dy, src.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return dst
}

// drawOdoTitle draws the unit string above the odometer.
func (g *Gauge) drawOdoTitle(dc *gg.Context) error {
	src, err := g.fontSource()
	if err != nil {
		return err
	}
	size := float64(g.size)
	label := norm.NFC.String(g.unitString)

	dc.SetColor(g.backgroundColor.LabelColor().RGBA().Color())
	dc.SetFont(fitFace(src, unitFont*size, label, size*unitMaxWidth))
	dc.DrawStringAnchored(label, size/2, size*unitTop, 0.5, 0.5)
	return nil
}

func (g *Gauge) fontSource() (*text.FontSource, error) {
	if g.font != nil {
		return g.font, nil
	}
	return fonts.Regular()
}

// fitFace returns a face of the given size, shrunk so s fits maxWidth.
func fitFace(src *text.FontSource, size float64, s string, maxWidth float64) text.Face {
	face := src.Face(size)
	if w, _ := text.Measure(s, face); w > maxWidth && w > 0 {
		face = src.Face(size * maxWidth / w)
	}
	return face
}

// repaint composites every buffer onto the canvas in fixed order: frame,
// background, plot, odometer with its title, foreground.
func (g *Gauge) repaint() error {
	if g.closed {
		return ErrClosed
	}
	if !g.initialized {
		all := setFrame | setBackground | setForeground
		if len(g.value) > 0 {
			all |= setPlot
		}
		if err := g.init(all, true); err != nil {
			return err
		}
	}

	dc := g.canvas.Context()
	if dc == nil {
		return ErrNoContext
	}

	dc.Push()
	defer dc.Pop()
	dc.Clear()

	if g.frameVisible {
		dc.DrawImage(g.buffers.image(RoleFrame), 0, 0)
	}
	if g.backgroundVisible {
		dc.DrawImage(g.buffers.image(RoleBackground), 0, 0)
	}

	offset := math.Floor(float64(g.size)/2 - float64(g.plotSize)/2)
	dc.DrawImage(g.buffers.image(RolePlot), offset, offset)

	if g.useOdometer && g.odo != nil {
		if err := g.odo.SetValue(g.odoValue); err != nil {
			return fmt.Errorf("rose: odometer: %w", err)
		}
		dc.DrawImage(gg.ImageBufFromImage(g.odoBuffer.Image()), g.odoPosX, g.odoPosY)
		if g.unitString != "" {
			if err := g.drawOdoTitle(dc); err != nil {
				return err
			}
		}
	}

	if g.foregroundVisible {
		dc.DrawImage(g.buffers.image(RoleForeground), 0, 0)
	}

	if d, ok := g.canvas.(surface.DirtyMarker); ok {
		d.MarkDirty()
	}
	return nil
}
