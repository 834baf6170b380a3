package rose

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/rose/odometer"
	"github.com/gogpu/rose/steel"
	"github.com/gogpu/rose/surface"
	"github.com/gogpu/rose/tween"
)

var errBoom = errors.New("boom")

// fakeRenderer counts calls and paints each layer with a flat color.
type fakeRenderer struct {
	frames, backgrounds, foregrounds int
	failFrame                        bool
	paint                            bool
}

func (f *fakeRenderer) DrawFrame(dc *gg.Context, _ steel.FrameDesign, _, _ float64, _, _ int) error {
	f.frames++
	if f.failFrame {
		return errBoom
	}
	if f.paint {
		dc.ClearWithColor(gg.Red)
	}
	return nil
}

func (f *fakeRenderer) DrawBackground(dc *gg.Context, _ steel.BackgroundColor, _, _ float64, _, _ int) error {
	f.backgrounds++
	if f.paint {
		dc.ClearWithColor(gg.Green)
	}
	return nil
}

func (f *fakeRenderer) DrawForeground(_ *gg.Context, _ steel.ForegroundType, _, _ int, _ bool) error {
	f.foregrounds++
	return nil
}

// fakePlotter records configuration and fills the plot buffer blue.
type fakePlotter struct {
	rec    *recorder
	dc     *gg.Context
	values []float64
}

func (p *fakePlotter) Set(key string, value any) error {
	p.rec.plotSettings[key] = value
	return nil
}

func (p *fakePlotter) Draw() error {
	p.rec.plots++
	p.dc.ClearWithColor(gg.Blue)
	return nil
}

// fakeReadout counts value updates and paints its buffer yellow.
type fakeReadout struct {
	rec *recorder
	dc  *gg.Context
}

func (r *fakeReadout) SetValue(v float64) error {
	r.rec.readoutValues = append(r.rec.readoutValues, v)
	r.dc.ClearWithColor(gg.Yellow)
	return nil
}

func (r *fakeReadout) Width() int  { return r.dc.Width() }
func (r *fakeReadout) Height() int { return r.dc.Height() }

// dirtyCanvas counts MarkDirty calls.
type dirtyCanvas struct {
	*surface.ImageCanvas
	dirty int
}

func (c *dirtyCanvas) MarkDirty() { c.dirty++ }

type recorder struct {
	renderer      *fakeRenderer
	canvas        *dirtyCanvas
	queue         *tween.FrameQueue
	plots         int
	plotSettings  map[string]any
	readoutParams []odometer.Params
	readoutValues []float64
}

// newTestGauge builds a 100px gauge with fake collaborators and a
// FrameQueue scheduler.
func newTestGauge(t *testing.T, opts ...Option) (*Gauge, *recorder) {
	t.Helper()

	rec := &recorder{
		renderer:     &fakeRenderer{},
		canvas:       &dirtyCanvas{ImageCanvas: surface.NewImageCanvas(100, 100)},
		queue:        &tween.FrameQueue{},
		plotSettings: make(map[string]any),
	}
	base := []Option{
		WithRenderer(rec.renderer),
		WithPlotter(func(dc *gg.Context, values []float64) Plotter {
			return &fakePlotter{rec: rec, dc: dc, values: values}
		}),
		WithReadout(func(dc *gg.Context, p odometer.Params) (Readout, error) {
			rec.readoutParams = append(rec.readoutParams, p)
			if err := dc.Resize(20, 8); err != nil {
				return nil, err
			}
			return &fakeReadout{rec: rec, dc: dc}, nil
		}),
		WithScheduler(rec.queue),
	}

	g, err := New(rec.canvas, append(base, opts...)...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, rec
}

// drive flushes the frame queue until it drains, 100ms per frame.
func drive(t *testing.T, q *tween.FrameQueue) {
	t.Helper()
	now := time.Unix(1000, 0)
	for i := 0; q.Pending() > 0; i++ {
		if i > 1000 {
			t.Fatal("frame queue did not drain")
		}
		q.Flush(now)
		now = now.Add(100 * time.Millisecond)
	}
}

func pixel(c *surface.ImageCanvas, x, y int) gg.RGBA {
	return gg.FromColor(c.Snapshot().At(x, y))
}
