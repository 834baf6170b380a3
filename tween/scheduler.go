package tween

import (
	"sync"
	"time"
)

// Scheduler delivers frame callbacks.
type Scheduler interface {
	// RequestFrame arranges for fn to be called once on the next frame.
	RequestFrame(fn func(now time.Time))
}

// FrameQueue is a Scheduler driven by the host's render loop.
// The zero value is ready to use.
type FrameQueue struct {
	mu      sync.Mutex
	pending []func(time.Time)
}

var _ Scheduler = (*FrameQueue)(nil)

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func(now time.Time)) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Flush runs every callback queued before the call and returns how many
// ran. Callbacks requested while flushing wait for the next Flush.
func (q *FrameQueue) Flush(now time.Time) int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range batch {
		fn(now)
	}
	return len(batch)
}

// Pending returns the number of queued callbacks.
func (q *FrameQueue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// DefaultInterval is the TimerScheduler frame interval (16 frames/s).
const DefaultInterval = time.Second / 16

// TimerScheduler delivers frames from a fixed interval timer.
// Callbacks run on timer goroutines.
type TimerScheduler struct {
	// Interval between frames; DefaultInterval when zero.
	Interval time.Duration
}

var _ Scheduler = TimerScheduler{}

// RequestFrame calls fn after one interval.
func (s TimerScheduler) RequestFrame(fn func(now time.Time)) {
	if fn == nil {
		return
	}
	d := s.Interval
	if d <= 0 {
		d = DefaultInterval
	}
	time.AfterFunc(d, func() { fn(time.Now()) })
}
