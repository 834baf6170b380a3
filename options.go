package rose

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/rose/odometer"
	"github.com/gogpu/rose/plot"
	"github.com/gogpu/rose/steel"
	"github.com/gogpu/rose/tween"
)

// Plotter draws a radial chart into the plot buffer. It is configured
// with string keys and drawn once.
type Plotter interface {
	Set(key string, value any) error
	Draw() error
}

// PlotterFunc creates a Plotter for values drawing into dc.
type PlotterFunc func(dc *gg.Context, values []float64) Plotter

// Readout renders the odometer into its buffer. New readouts size the
// buffer they are given; SetValue repaints it.
type Readout interface {
	SetValue(v float64) error
	Width() int
	Height() int
}

// ReadoutFunc creates a Readout drawing into dc.
type ReadoutFunc func(dc *gg.Context, p odometer.Params) (Readout, error)

// Option configures a Gauge during creation.
//
// Example:
//
//	g, err := rose.New(canvas,
//	    rose.WithSize(240),
//	    rose.WithBackgroundColor(steel.BackgroundBeige),
//	    rose.WithOdometer(true),
//	)
type Option func(*options)

type options struct {
	size              int
	titleString       string
	unitString        string
	pointSymbols      []string
	value             []float64
	frameDesign       steel.FrameDesign
	frameVisible      bool
	backgroundColor   steel.BackgroundColor
	backgroundVisible bool
	foregroundType    steel.ForegroundType
	foregroundVisible bool
	useOdometer       bool
	odometerParams    odometer.Params

	renderer   steel.Renderer
	newPlotter PlotterFunc
	newReadout ReadoutFunc
	scheduler  tween.Scheduler
	font       *text.FontSource
}

// DefaultPointSymbols are the compass labels used when none are given.
var DefaultPointSymbols = []string{"N", "E", "S", "W"}

func defaultOptions() options {
	return options{
		size:              0, // resolved from the canvas in New
		pointSymbols:      DefaultPointSymbols,
		frameDesign:       steel.FrameMetal,
		frameVisible:      true,
		backgroundColor:   steel.BackgroundDarkGray,
		backgroundVisible: true,
		foregroundType:    steel.ForegroundType1,
		foregroundVisible: true,
		renderer:          steel.Painter{},
		newPlotter:        defaultPlotter,
		newReadout:        defaultReadout,
		scheduler:         tween.TimerScheduler{},
	}
}

func defaultPlotter(dc *gg.Context, values []float64) Plotter {
	return plot.New(dc, values)
}

func defaultReadout(dc *gg.Context, p odometer.Params) (Readout, error) {
	return odometer.New(dc, p)
}

// WithSize sets the gauge size in pixels. The default is the smaller of
// the canvas width and height.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithTitleString sets the title drawn above the rose plot.
func WithTitleString(s string) Option {
	return func(o *options) {
		o.titleString = s
	}
}

// WithUnitString sets the lower title, drawn above the odometer.
func WithUnitString(s string) Option {
	return func(o *options) {
		o.unitString = s
	}
}

// WithPointSymbols sets the compass labels. Four or eight labels are
// drawn; any other count disables the labels. Nil keeps N, E, S, W.
func WithPointSymbols(symbols []string) Option {
	return func(o *options) {
		if symbols != nil {
			o.pointSymbols = symbols
		}
	}
}

// WithValue sets the initial plot magnitudes.
func WithValue(values []float64) Option {
	return func(o *options) {
		o.value = values
	}
}

// WithFrameDesign sets the frame design. The default is steel.FrameMetal.
func WithFrameDesign(d steel.FrameDesign) Option {
	return func(o *options) {
		o.frameDesign = d
	}
}

// WithFrameVisible toggles the frame layer.
func WithFrameVisible(visible bool) Option {
	return func(o *options) {
		o.frameVisible = visible
	}
}

// WithBackgroundColor sets the dial background. The default is
// steel.BackgroundDarkGray.
func WithBackgroundColor(c steel.BackgroundColor) Option {
	return func(o *options) {
		o.backgroundColor = c
	}
}

// WithBackgroundVisible toggles the background layer.
func WithBackgroundVisible(visible bool) Option {
	return func(o *options) {
		o.backgroundVisible = visible
	}
}

// WithForegroundType sets the glass highlight. The default is
// steel.ForegroundType1.
func WithForegroundType(t steel.ForegroundType) Option {
	return func(o *options) {
		o.foregroundType = t
	}
}

// WithForegroundVisible toggles the foreground layer.
func WithForegroundVisible(visible bool) Option {
	return func(o *options) {
		o.foregroundVisible = visible
	}
}

// WithOdometer enables the odometer readout. It is off by default.
func WithOdometer(enabled bool) Option {
	return func(o *options) {
		o.useOdometer = enabled
	}
}

// WithOdometerParams configures the odometer. Height and Value are set
// by the gauge; every other zero field takes the odometer default.
func WithOdometerParams(p odometer.Params) Option {
	return func(o *options) {
		o.odometerParams = p
	}
}

// WithRenderer replaces the frame, background and foreground renderer.
func WithRenderer(r steel.Renderer) Option {
	return func(o *options) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithPlotter replaces the rose plot renderer.
func WithPlotter(fn PlotterFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.newPlotter = fn
		}
	}
}

// WithReadout replaces the odometer renderer.
func WithReadout(fn ReadoutFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.newReadout = fn
		}
	}
}

// WithScheduler sets the frame scheduler for odometer animation.
// The default is a tween.TimerScheduler; hosts with a render loop should
// pass a *tween.FrameQueue and flush it once per frame.
func WithScheduler(s tween.Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithFontSource sets the font for compass labels, titles and the unit
// string. The default is Go Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(o *options) {
		o.font = src
	}
}
