package rose

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/rose/odometer"
	"github.com/gogpu/rose/steel"
	"github.com/gogpu/rose/surface"
	"github.com/gogpu/rose/tween"
)

// Layout proportions, relative to the gauge size.
const (
	plotScale      = 0.68
	odometerTop    = 0.7
	odometerHeight = 0.08
)

// Gauge is a round rose-chart gauge drawn on a canvas.
//
// The gauge keeps four offscreen buffers (frame, background, plot,
// foreground) and redraws a buffer only when a parameter it depends on
// changes. Every setter then composites all buffers onto the canvas.
//
// Methods are serialised by an internal mutex: odometer animation frames
// delivered by a tween.TimerScheduler arrive on timer goroutines.
type Gauge struct {
	mu sync.Mutex

	canvas   surface.Canvas
	size     int
	plotSize int
	center   float64
	odoPosX  float64
	odoPosY  float64

	frameVisible      bool
	backgroundVisible bool
	foregroundVisible bool
	useOdometer       bool
	odometerParams    odometer.Params

	renderer   steel.Renderer
	newPlotter PlotterFunc
	newReadout ReadoutFunc
	scheduler  tween.Scheduler
	font       *text.FontSource

	value           []float64
	odoValue        float64
	titleString     string
	unitString      string
	pointSymbols    []string
	frameDesign     steel.FrameDesign
	backgroundColor steel.BackgroundColor
	foregroundType  steel.ForegroundType

	buffers   *bufferSet
	odoBuffer *gg.Context
	odo       Readout

	tween       *tween.Tween
	completed   *tween.Tween // reached its end, done not yet called
	repainting  bool
	initialized bool
	closed      bool
}

// New creates a gauge on c, resizes c to size x size (clearing it) and
// paints the gauge once.
func New(c surface.Canvas, opts ...Option) (*Gauge, error) {
	if c == nil {
		return nil, ErrNilCanvas
	}
	if c.Context() == nil {
		return nil, ErrNoContext
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	size := o.size
	if size == 0 {
		size = min(c.Width(), c.Height())
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	g := &Gauge{
		canvas:            c,
		size:              size,
		plotSize:          int(math.Floor(float64(size) * plotScale)),
		center:            float64(size) / 2,
		odoPosY:           float64(size) * odometerTop,
		frameVisible:      o.frameVisible,
		backgroundVisible: o.backgroundVisible,
		foregroundVisible: o.foregroundVisible,
		useOdometer:       o.useOdometer,
		odometerParams:    o.odometerParams,
		renderer:          o.renderer,
		newPlotter:        o.newPlotter,
		newReadout:        o.newReadout,
		scheduler:         o.scheduler,
		font:              o.font,
		value:             slices.Clone(o.value),
		titleString:       o.titleString,
		unitString:        o.unitString,
		pointSymbols:      slices.Clone(o.pointSymbols),
		frameDesign:       o.frameDesign,
		backgroundColor:   o.backgroundColor,
		foregroundType:    o.foregroundType,
	}

	if err := c.Resize(size, size); err != nil {
		return nil, fmt.Errorf("rose: resize canvas: %w", err)
	}

	g.buffers = newBufferSet(g.size, max(g.plotSize, 1))
	if g.useOdometer {
		g.odoBuffer = gg.NewContext(10, 10)
	}

	if err := g.repaint(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewByID creates a gauge on the canvas registered under id.
func NewByID(id string, opts ...Option) (*Gauge, error) {
	c, err := surface.Lookup(id)
	if err != nil {
		return nil, fmt.Errorf("rose: %w", err)
	}
	return New(c, opts...)
}

// Size returns the gauge size in pixels.
func (g *Gauge) Size() int {
	return g.size
}

// Value returns a copy of the plotted magnitudes.
func (g *Gauge) Value() []float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.value)
}

// SetValue replaces the plotted magnitudes and redraws the plot.
func (g *Gauge) SetValue(values []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = slices.Clone(values)
	return g.update(setPlot)
}

// OdoValue returns the odometer value.
func (g *Gauge) OdoValue() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.odoValue
}

// SetOdoValue sets the odometer value without animation. Negative values
// are stored as zero.
func (g *Gauge) SetOdoValue(v float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.odoValue = clampOdo(v)
	return g.repaint()
}

// TitleString returns the plot title.
func (g *Gauge) TitleString() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.titleString
}

// SetTitleString changes the plot title and redraws the plot.
func (g *Gauge) SetTitleString(s string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.titleString = s
	return g.update(setPlot)
}

// UnitString returns the odometer title.
func (g *Gauge) UnitString() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.unitString
}

// SetUnitString changes the odometer title. No buffer is redrawn.
func (g *Gauge) SetUnitString(s string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.unitString = s
	return g.repaint()
}

// PointSymbols returns a copy of the compass labels.
func (g *Gauge) PointSymbols() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.pointSymbols)
}

// SetPointSymbols changes the compass labels and redraws the background.
// Labels are drawn only for four or eight symbols; other counts are
// accepted and leave the dial without labels.
func (g *Gauge) SetPointSymbols(symbols []string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pointSymbols = slices.Clone(symbols)
	return g.update(setBackground)
}

// FrameDesign returns the frame design.
func (g *Gauge) FrameDesign() steel.FrameDesign {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.frameDesign
}

// SetFrameDesign changes the frame design and redraws the frame.
func (g *Gauge) SetFrameDesign(d steel.FrameDesign) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.frameDesign = d
	return g.update(setFrame)
}

// BackgroundColor returns the background color.
func (g *Gauge) BackgroundColor() steel.BackgroundColor {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.backgroundColor
}

// SetBackgroundColor changes the background color and redraws the
// background and the plot, whose title takes the background label color.
func (g *Gauge) SetBackgroundColor(c steel.BackgroundColor) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.backgroundColor = c
	return g.update(setBackground | setPlot)
}

// ForegroundType returns the foreground type.
func (g *Gauge) ForegroundType() steel.ForegroundType {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.foregroundType
}

// SetForegroundType changes the foreground type and redraws the foreground.
func (g *Gauge) SetForegroundType(t steel.ForegroundType) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.foregroundType = t
	return g.update(setForeground)
}

// Repaint composites all buffers onto the canvas.
func (g *Gauge) Repaint() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.repaint()
}

// Close stops any running animation. A closed gauge can no longer be
// repainted.
func (g *Gauge) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	g.closed = true
	if g.tween != nil {
		g.tween.Stop()
		g.tween = nil
	}
	return nil
}

// update resets and redraws the buffers in roles, then repaints.
// State changes made before a failure are kept.
func (g *Gauge) update(roles roleSet) error {
	Logger().Debug("rose: buffers invalidated", "roles", roles.String())
	if err := g.resetBuffers(roles); err != nil {
		return err
	}
	if err := g.init(roles, false); err != nil {
		return err
	}
	return g.repaint()
}

func clampOdo(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
