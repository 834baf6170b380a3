// Package rose provides a round wind rose gauge rendered with gg.
//
// # Overview
//
// A Gauge draws a rose chart of directional magnitudes inside a steel
// style dial: a metal frame, a colored background with compass labels,
// the plot, an optional rolling odometer with a unit title, and a glass
// foreground. Each of these is kept in its own offscreen buffer and only
// the buffers affected by a change are redrawn.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/rose"
//		"github.com/gogpu/rose/surface"
//	)
//
//	c := surface.NewImageCanvas(300, 300)
//	g, err := rose.New(c,
//		rose.WithValue([]float64{3, 5, 2, 8, 6, 1, 4, 7}),
//		rose.WithTitleString("Wind"),
//		rose.WithOdometer(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	g.SetOdoValueAnimated(42, nil)
//
// # Canvases
//
// Any surface.Canvas can host a gauge. surface.ImageCanvas is an in-memory
// canvas; cmd/roseview shows a window-backed one. Canvases registered with
// surface.Register can be looked up by NewByID.
//
// # Collaborators
//
// Frame, background and foreground drawing is delegated to a
// steel.Renderer, the chart to a Plotter and the odometer to a Readout.
// The defaults are steel.Painter, plot.Rose and odometer.Odometer; options
// replace any of them.
//
// # Animation
//
// SetOdoValueAnimated drives the odometer through a tween.Tween. Frames
// come from a tween.Scheduler: the default fires on timers, while a
// tween.FrameQueue lets a render loop (or a test) decide when frames run.
//
// # Logging
//
// The package logs through log/slog and is silent by default. See
// SetLogger.
package rose
