package tween

import (
	"sync"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Easing maps elapsed time t, begin b, change c and duration d to a position.
type Easing = ease.TweenFunc

// StrongEaseOut decelerates sharply toward the end value.
var StrongEaseOut Easing = ease.OutQuint

// Tween interpolates between two values, advancing once per frame.
//
// The first frame after Start establishes the time base and reports the
// begin value; each later frame advances by the wall time elapsed since
// the previous one. gween eases the progress from 0 to 1 and the position
// is computed from it in float64, so the first and last frames report
// begin and end exactly.
type Tween struct {
	mu       sync.Mutex
	begin    float64
	end      float64
	duration time.Duration
	easing   Easing
	sched    Scheduler

	tw      *gween.Tween // progress, 0 to 1
	playing bool
	gen     uint64
	last    time.Time

	// OnMotionChanged is called with the interpolated position every frame.
	OnMotionChanged func(pos float64)

	// OnMotionFinished is called once when the end value is reached.
	// It is not called for a stopped tween.
	OnMotionFinished func()
}

// New creates a stopped tween. A nil easing selects StrongEaseOut and a
// nil scheduler selects a TimerScheduler.
func New(begin, end float64, easing Easing, duration time.Duration, sched Scheduler) *Tween {
	if easing == nil {
		easing = StrongEaseOut
	}
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &Tween{
		begin:    begin,
		end:      end,
		duration: duration,
		easing:   easing,
		sched:    sched,
	}
}

// Begin returns the start value.
func (t *Tween) Begin() float64 { return t.begin }

// End returns the target value.
func (t *Tween) End() float64 { return t.end }

// Start rewinds the tween and requests its first frame.
// Starting a playing tween restarts it.
func (t *Tween) Start() {
	t.mu.Lock()
	t.tw = gween.New(0, 1, float32(t.duration.Seconds()), t.easing)
	t.playing = true
	t.gen++
	t.last = time.Time{}
	gen := t.gen
	t.mu.Unlock()

	t.sched.RequestFrame(t.frame(gen))
}

// Stop halts the tween. Frames already requested become no-ops and
// OnMotionFinished is not called.
func (t *Tween) Stop() {
	t.mu.Lock()
	t.playing = false
	t.gen++
	t.mu.Unlock()
}

// Playing reports whether the tween is running.
func (t *Tween) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

func (t *Tween) frame(gen uint64) func(time.Time) {
	return func(now time.Time) {
		t.mu.Lock()
		if !t.playing || t.gen != gen {
			t.mu.Unlock()
			return
		}

		var dt time.Duration
		if !t.last.IsZero() {
			dt = now.Sub(t.last)
			if dt < 0 {
				dt = 0
			}
		}
		t.last = now

		p, done := t.tw.Update(float32(dt.Seconds()))
		pos := t.begin + (t.end-t.begin)*float64(p)
		if done {
			pos = t.end
			t.playing = false
		}
		changed, finished := t.OnMotionChanged, t.OnMotionFinished
		t.mu.Unlock()

		if changed != nil {
			changed(pos)
		}
		if done {
			if finished != nil {
				finished()
			}
			return
		}
		t.sched.RequestFrame(t.frame(gen))
	}
}
