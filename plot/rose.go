package plot

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/rose/internal/fonts"
)

// Errors.
var (
	// ErrUnknownKey is returned by Set for an unrecognised key.
	ErrUnknownKey = errors.New("plot: unknown option")

	// ErrBadValue is returned by Set when a value has the wrong type.
	ErrBadValue = errors.New("plot: bad option value")

	// ErrBadColor is returned for unparseable colors.
	ErrBadColor = errors.New("plot: bad color")
)

// arcSteps is the number of line segments per full turn of a wedge arc.
const arcSteps = 180

// Rose is a rose chart bound to a target context.
type Rose struct {
	dc     *gg.Context
	values []float64

	strokeStyle gg.RGBA
	axesColor   gg.RGBA
	colors      []Fill
	alpha       float64
	margin      float64 // degrees on each side of a wedge

	title      string
	titleSize  float64
	titleBold  bool
	titleColor gg.RGBA
	font       *text.FontSource

	gutterTop, gutterBottom float64
	gutterLeft, gutterRight float64

	circles bool
	spokes  int
	radius  float64 // zero fits the area inside the gutters
}

// New creates a rose chart for values drawing into dc. Negative values
// are treated as zero.
func New(dc *gg.Context, values []float64) *Rose {
	v := make([]float64, len(values))
	for i, x := range values {
		v[i] = math.Max(x, 0)
	}
	return &Rose{
		dc:           dc,
		values:       v,
		strokeStyle:  gg.Black,
		axesColor:    namedColors["gray"],
		colors:       []Fill{{gg.Red}},
		alpha:        1,
		titleSize:    12,
		titleColor:   gg.Black,
		gutterTop:    25,
		gutterBottom: 25,
		gutterLeft:   25,
		gutterRight:  25,
		circles:      true,
		spokes:       12,
	}
}

// Set assigns a configuration key. Recognised keys, all optionally
// prefixed with "chart.":
//
//	strokestyle, background.axes.color, title.color   color or string
//	colors                                           string, []string, Fill, []Fill, []color.Color
//	colors.alpha, margin, title.size, radius         number
//	gutter.top, gutter.bottom, gutter.left, gutter.right  number
//	title                                            string
//	title.bold, background.circles                   bool
//	background.grid.spokes                           int
//	font                                             *text.FontSource
//
// Keys used only by interactive chart libraries (tooltips.effect,
// labels.axes) are accepted and ignored.
func (r *Rose) Set(key string, value any) error {
	key = strings.TrimPrefix(strings.ToLower(key), "chart.")

	var err error
	switch key {
	case "strokestyle":
		r.strokeStyle, err = toColor(value)
	case "background.axes.color":
		r.axesColor, err = toColor(value)
	case "title.color":
		r.titleColor, err = toColor(value)
	case "colors":
		r.colors, err = toFills(value)
	case "colors.alpha":
		r.alpha, err = toFloat(value)
	case "margin":
		r.margin, err = toFloat(value)
	case "title":
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s: %T", ErrBadValue, key, value)
		}
		r.title = s
	case "title.size":
		r.titleSize, err = toFloat(value)
	case "title.bold":
		r.titleBold, err = toBool(value)
	case "gutter.top":
		r.gutterTop, err = toFloat(value)
	case "gutter.bottom":
		r.gutterBottom, err = toFloat(value)
	case "gutter.left":
		r.gutterLeft, err = toFloat(value)
	case "gutter.right":
		r.gutterRight, err = toFloat(value)
	case "background.circles":
		r.circles, err = toBool(value)
	case "background.grid.spokes":
		var f float64
		f, err = toFloat(value)
		r.spokes = int(f)
	case "radius":
		r.radius, err = toFloat(value)
	case "font":
		src, ok := value.(*text.FontSource)
		if !ok {
			return fmt.Errorf("%w: %s: %T", ErrBadValue, key, value)
		}
		r.font = src
	case "tooltips.effect", "labels.axes":
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err != nil {
		return fmt.Errorf("plot: %s: %w", key, err)
	}
	return nil
}

// Values returns the magnitudes being plotted.
func (r *Rose) Values() []float64 {
	out := make([]float64, len(r.values))
	copy(out, r.values)
	return out
}

// Centre returns the chart centre and radius after gutters are applied.
func (r *Rose) Centre() (cx, cy, radius float64) {
	w, h := float64(r.dc.Width()), float64(r.dc.Height())
	cx = r.gutterLeft + (w-r.gutterLeft-r.gutterRight)/2
	cy = r.gutterTop + (h-r.gutterTop-r.gutterBottom)/2
	radius = r.radius
	if radius <= 0 {
		radius = math.Min(w-r.gutterLeft-r.gutterRight, h-r.gutterTop-r.gutterBottom) / 2
	}
	return cx, cy, math.Max(radius, 0)
}

// Draw paints the background grid, the wedges and the title.
func (r *Rose) Draw() error {
	dc := r.dc
	cx, cy, radius := r.Centre()

	dc.Push()
	defer dc.Pop()

	if err := r.drawGrid(cx, cy, radius); err != nil {
		return err
	}
	if err := r.drawWedges(cx, cy, radius); err != nil {
		return err
	}
	return r.drawTitle()
}

func (r *Rose) drawGrid(cx, cy, radius float64) error {
	dc := r.dc
	dc.SetColor(r.axesColor.Color())
	dc.SetLineWidth(1)

	if r.circles {
		const rings = 5
		for i := 1; i <= rings; i++ {
			dc.DrawCircle(cx, cy, radius*float64(i)/rings)
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	if r.spokes > 0 {
		for i := 0; i < r.spokes; i++ {
			a := float64(i)*2*math.Pi/float64(r.spokes) - math.Pi/2
			dc.MoveTo(cx, cy)
			dc.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
		}
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Rose) drawWedges(cx, cy, radius float64) error {
	n := len(r.values)
	if n == 0 {
		return nil
	}
	peak := 0.0
	for _, v := range r.values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		return nil
	}

	dc := r.dc
	span := 2 * math.Pi / float64(n)
	margin := r.margin * math.Pi / 180
	if 2*margin >= span {
		margin = 0
	}

	for i, v := range r.values {
		if v == 0 {
			continue
		}
		wr := radius * v / peak
		a0 := float64(i)*span - math.Pi/2 + margin
		a1 := float64(i+1)*span - math.Pi/2 - margin

		wedge(dc, cx, cy, wr, a0, a1)
		dc.SetFillBrush(r.brush(i, cx, cy, radius))
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		dc.SetColor(r.strokeStyle.Color())
		if err := dc.Stroke(); err != nil {
			return err
		}
	}
	return nil
}

// wedge adds a closed pie slice to the current path.
func wedge(dc *gg.Context, cx, cy, radius, a0, a1 float64) {
	steps := max(int(math.Ceil((a1-a0)/(2*math.Pi)*arcSteps)), 1)
	dc.MoveTo(cx, cy)
	for s := 0; s <= steps; s++ {
		a := a0 + (a1-a0)*float64(s)/float64(steps)
		dc.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
	dc.ClosePath()
}

func (r *Rose) brush(i int, cx, cy, radius float64) gg.Brush {
	if len(r.colors) == 0 {
		return gg.Solid(withAlpha(gg.Red, r.alpha))
	}
	fill := r.colors[i%len(r.colors)]
	if len(fill) == 1 {
		return gg.Solid(withAlpha(fill[0], r.alpha))
	}
	grad := gg.NewRadialGradientBrush(cx, cy, 0, radius)
	for j, c := range fill {
		grad.AddColorStop(float64(j)/float64(len(fill)-1), withAlpha(c, r.alpha))
	}
	return grad
}

func withAlpha(c gg.RGBA, alpha float64) gg.RGBA {
	c.A *= alpha
	return c
}

func (r *Rose) drawTitle() error {
	if r.title == "" || r.titleSize <= 0 {
		return nil
	}
	src := r.font
	if src == nil {
		var err error
		if r.titleBold {
			src, err = fonts.Bold()
		} else {
			src, err = fonts.Regular()
		}
		if err != nil {
			return err
		}
	}

	dc := r.dc
	dc.SetFont(src.Face(r.titleSize))
	dc.SetColor(r.titleColor.Color())
	dc.DrawStringAnchored(r.title, float64(dc.Width())/2, r.gutterTop/2, 0.5, 0.5)
	return nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: want number, got %T", ErrBadValue, v)
}

func toBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: want bool, got %T", ErrBadValue, v)
	}
	return b, nil
}
