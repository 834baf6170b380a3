// Package tween animates a number between two values over time.
//
// A Tween is advanced one step per display frame. Frames are requested
// from a Scheduler: FrameQueue lets the host's render loop deliver frames
// (call Flush once per vsync), TimerScheduler falls back to a fixed
// interval timer when no render loop is available.
//
//	q := &tween.FrameQueue{}
//	tw := tween.New(0, 55, tween.StrongEaseOut, 2*time.Second, q)
//	tw.OnMotionChanged = func(pos float64) { fmt.Println(pos) }
//	tw.Start()
//	for q.Pending() > 0 {
//	    q.Flush(time.Now())
//	}
//
// Interpolation and easing are provided by github.com/tanema/gween.
package tween
