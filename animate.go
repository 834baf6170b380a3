package rose

import (
	"errors"
	"time"

	"github.com/gogpu/rose/tween"
)

// AnimationDuration is the nominal length of an odometer animation.
const AnimationDuration = 2 * time.Second

// SetOdoValueAnimated moves the odometer to v with a decelerating
// animation. Negative targets are clamped to zero and a target equal to
// the current value does nothing.
//
// A running animation is stopped first; its done callback never fires.
// done, if non-nil, is called once when this animation completes.
func (g *Gauge) SetOdoValueAnimated(v float64, done func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	v = clampOdo(v)
	if g.closed || g.odoValue == v {
		return
	}

	if g.tween != nil && g.tween.Playing() {
		g.tween.Stop()
		Logger().Debug("rose: animation superseded", "target", g.tween.End())
	}

	tw := tween.New(g.odoValue, v, tween.StrongEaseOut, AnimationDuration, g.scheduler)
	tw.OnMotionChanged = func(pos float64) { g.tick(tw, pos) }
	tw.OnMotionFinished = func() { g.finish(tw, done) }
	g.tween = tw

	Logger().Debug("rose: animation started", "from", g.odoValue, "to", v)
	tw.Start()
}

// Animating reports whether an odometer animation is running.
func (g *Gauge) Animating() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.tween != nil && g.tween.Playing()
}

// tick stores an interpolated odometer value and schedules at most one
// repaint per frame. The final tick of the current tween marks it
// completed, so its done callback fires even if another animation starts
// before finish runs.
func (g *Gauge) tick(tw *tween.Tween, pos float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tween != tw {
		return
	}
	g.odoValue = pos
	if !tw.Playing() {
		g.completed = tw
	}
	if !g.repainting {
		g.repainting = true
		g.scheduler.RequestFrame(g.frame)
	}
}

// frame runs the repaint requested by tick. Other repaints leave the
// repainting flag alone so ticks keep coalescing until this one runs.
func (g *Gauge) frame(time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.repainting = false
	if err := g.repaint(); err != nil && !errors.Is(err, ErrClosed) {
		Logger().Warn("rose: animation repaint failed", "err", err)
	}
}

func (g *Gauge) finish(tw *tween.Tween, done func()) {
	g.mu.Lock()
	current := g.completed == tw
	if current {
		g.completed = nil
	}
	g.mu.Unlock()

	if !current {
		return
	}
	Logger().Debug("rose: animation finished", "value", tw.End())
	if done != nil {
		done()
	}
}
