package rose

import (
	"testing"
	"time"
)

func TestSetOdoValueAnimated(t *testing.T) {
	g, rec := newTestGauge(t, WithOdometer(true))

	calls := 0
	g.SetOdoValueAnimated(55, func() { calls++ })
	if !g.Animating() {
		t.Fatal("Animating = false after start")
	}
	drive(t, rec.queue)

	if g.OdoValue() != 55 {
		t.Errorf("OdoValue = %v, want 55", g.OdoValue())
	}
	if calls != 1 {
		t.Errorf("done called %d times, want 1", calls)
	}
	if g.Animating() {
		t.Error("Animating = true after completion")
	}

	// Intermediate frames reach the readout in increasing order.
	vals := rec.readoutValues
	if len(vals) < 3 {
		t.Fatalf("readout updated %d times, want several frames", len(vals))
	}
	for i := 1; i < len(vals); i++ {
		if vals[i] < vals[i-1] {
			t.Errorf("readout went backwards: %v after %v", vals[i], vals[i-1])
		}
	}
	if vals[len(vals)-1] != 55 {
		t.Errorf("last readout value = %v, want 55", vals[len(vals)-1])
	}
}

func TestSetOdoValueAnimatedSameValue(t *testing.T) {
	g, rec := newTestGauge(t)
	if err := g.SetOdoValue(12); err != nil {
		t.Fatal(err)
	}

	called := false
	g.SetOdoValueAnimated(12, func() { called = true })
	if rec.queue.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", rec.queue.Pending())
	}
	if g.Animating() {
		t.Error("Animating = true for an unchanged target")
	}
	drive(t, rec.queue)
	if called {
		t.Error("done called for an unchanged target")
	}
}

func TestSetOdoValueAnimatedNegative(t *testing.T) {
	g, rec := newTestGauge(t)
	if err := g.SetOdoValue(5); err != nil {
		t.Fatal(err)
	}
	g.SetOdoValueAnimated(-20, nil)
	drive(t, rec.queue)
	if g.OdoValue() != 0 {
		t.Errorf("OdoValue = %v, want 0", g.OdoValue())
	}
}

func TestSetOdoValueAnimatedSupersede(t *testing.T) {
	g, rec := newTestGauge(t)

	first, second := 0, 0
	g.SetOdoValueAnimated(55, func() { first++ })
	now := time.Unix(1, 0)
	for i := 0; i < 3; i++ {
		rec.queue.Flush(now)
		now = now.Add(100 * time.Millisecond)
	}
	if v := g.OdoValue(); v <= 0 || v >= 55 {
		t.Fatalf("OdoValue mid-animation = %v, want strictly between 0 and 55", v)
	}

	g.SetOdoValueAnimated(10, func() { second++ })
	drive(t, rec.queue)

	if first != 0 {
		t.Errorf("superseded done called %d times, want 0", first)
	}
	if second != 1 {
		t.Errorf("done called %d times, want 1", second)
	}
	if g.OdoValue() != 10 {
		t.Errorf("OdoValue = %v, want 10", g.OdoValue())
	}
}

func TestAnimationRepaintCoalesced(t *testing.T) {
	g, rec := newTestGauge(t)

	g.SetOdoValueAnimated(30, nil)
	if got := rec.queue.Pending(); got != 1 {
		t.Fatalf("Pending after start = %d, want 1", got)
	}

	rec.queue.Flush(time.Unix(1, 0))
	// One tween frame and one repaint.
	if got := rec.queue.Pending(); got != 2 {
		t.Fatalf("Pending after first frame = %d, want 2", got)
	}

	g.tick(g.tween, 3)
	g.tick(g.tween, 4)
	if got := rec.queue.Pending(); got != 2 {
		t.Errorf("Pending after extra ticks = %d, want 2", got)
	}
	if g.OdoValue() != 4 {
		t.Errorf("OdoValue = %v, want latest tick 4", g.OdoValue())
	}

	dirty := rec.canvas.dirty
	rec.queue.Flush(time.Unix(1, int64(100*time.Millisecond)))
	if rec.canvas.dirty != dirty+1 {
		t.Errorf("repaints = %d, want 1", rec.canvas.dirty-dirty)
	}
	drive(t, rec.queue)
}

func TestCloseStopsAnimation(t *testing.T) {
	g, rec := newTestGauge(t)

	called := false
	g.SetOdoValueAnimated(40, func() { called = true })
	rec.queue.Flush(time.Unix(1, 0))

	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	if g.Animating() {
		t.Error("Animating = true after Close")
	}
	drive(t, rec.queue)
	if called {
		t.Error("done called after Close")
	}

	g.SetOdoValueAnimated(80, nil)
	if rec.queue.Pending() != 0 {
		t.Error("closed gauge should not start animations")
	}
}

func TestAnimationFractionalStart(t *testing.T) {
	g, rec := newTestGauge(t)
	if err := g.SetOdoValue(12345.6); err != nil {
		t.Fatal(err)
	}

	g.SetOdoValueAnimated(12400, nil)
	rec.queue.Flush(time.Unix(1, 0))
	if got := g.OdoValue(); got != 12345.6 {
		t.Fatalf("first tick OdoValue = %.10f, want 12345.6", got)
	}

	prev := g.OdoValue()
	now := time.Unix(1, 0)
	for i := 0; rec.queue.Pending() > 0; i++ {
		if i > 1000 {
			t.Fatal("frame queue did not drain")
		}
		now = now.Add(50 * time.Millisecond)
		rec.queue.Flush(now)
		if v := g.OdoValue(); v < prev {
			t.Fatalf("OdoValue went backwards: %.10f after %.10f", v, prev)
		}
		prev = g.OdoValue()
	}
	if g.OdoValue() != 12400 {
		t.Errorf("OdoValue = %v, want 12400", g.OdoValue())
	}
}

func TestAnimationCoalescedAcrossSetters(t *testing.T) {
	g, rec := newTestGauge(t)

	g.SetOdoValueAnimated(30, nil)
	rec.queue.Flush(time.Unix(1, 0))
	if got := rec.queue.Pending(); got != 2 {
		t.Fatalf("Pending after first frame = %d, want 2", got)
	}

	// A setter repaints immediately; the queued animation repaint stays
	// the only one.
	if err := g.SetUnitString("kn"); err != nil {
		t.Fatal(err)
	}
	g.tick(g.tween, 5)
	if got := rec.queue.Pending(); got != 2 {
		t.Errorf("Pending after setter and tick = %d, want 2", got)
	}
	drive(t, rec.queue)
}

func TestCompletedAnimationRestartedBeforeFinish(t *testing.T) {
	g, rec := newTestGauge(t)

	first, second := 0, 0
	g.SetOdoValueAnimated(20, func() { first++ })

	// Start a new animation between the final tick and the finish
	// callback of the first one.
	tw := g.tween
	changed := tw.OnMotionChanged
	tw.OnMotionChanged = func(pos float64) {
		changed(pos)
		if !tw.Playing() {
			g.SetOdoValueAnimated(40, func() { second++ })
		}
	}
	drive(t, rec.queue)

	if first != 1 {
		t.Errorf("completed animation done called %d times, want 1", first)
	}
	if second != 1 {
		t.Errorf("second done called %d times, want 1", second)
	}
	if g.OdoValue() != 40 {
		t.Errorf("OdoValue = %v, want 40", g.OdoValue())
	}
}
