// Command roseview shows a wind rose gauge in a window.
//
// Press Space to load a new random set of magnitudes, move the odometer
// and switch to the next frame, background and foreground style.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/rose"
	"github.com/gogpu/rose/steel"
	"github.com/gogpu/rose/tween"
)

// windowCanvas adapts a ggcanvas.Canvas to the gauge surface. ggcanvas
// skips same-size resizes, but the gauge expects every resize to clear.
type windowCanvas struct {
	*ggcanvas.Canvas
}

func (c windowCanvas) Resize(w, h int) error {
	if cw, ch := c.Size(); cw == w && ch == h {
		return c.Draw(func(dc *gg.Context) { dc.Clear() })
	}
	return c.Canvas.Resize(w, h)
}

type viewer struct {
	app   *gogpu.App
	queue *tween.FrameQueue
	gauge *rose.Gauge
	anim  *gogpu.AnimationToken
	step  int

	frames      []steel.FrameDesign
	backgrounds []steel.BackgroundColor
	foregrounds []steel.ForegroundType
}

func main() {
	var (
		size       = flag.Int("size", 480, "window size in pixels")
		title      = flag.String("title", "Wind direction", "plot title")
		unit       = flag.String("unit", "km/h", "odometer unit")
		frame      = flag.String("frame", "metal", "frame design")
		background = flag.String("background", "dark-gray", "background color")
		foreground = flag.String("foreground", "type1", "foreground type")
		eight      = flag.Bool("eight", false, "use eight compass symbols")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		rose.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fd, err := steel.ParseFrameDesign(*frame)
	if err != nil {
		log.Fatal(err)
	}
	bc, err := steel.ParseBackgroundColor(*background)
	if err != nil {
		log.Fatal(err)
	}
	ft, err := steel.ParseForegroundType(*foreground)
	if err != nil {
		log.Fatal(err)
	}

	symbols := rose.DefaultPointSymbols
	if *eight {
		symbols = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("roseview").
		WithSize(*size, *size).
		WithContinuousRender(false))

	v := &viewer{
		app:         app,
		queue:       &tween.FrameQueue{},
		frames:      steel.FrameDesigns(),
		backgrounds: steel.BackgroundColors(),
		foregrounds: steel.ForegroundTypes(),
	}

	opts := []rose.Option{
		rose.WithTitleString(*title),
		rose.WithUnitString(*unit),
		rose.WithPointSymbols(symbols),
		rose.WithFrameDesign(fd),
		rose.WithBackgroundColor(bc),
		rose.WithForegroundType(ft),
		rose.WithOdometer(true),
		rose.WithValue(randomValues()),
		rose.WithScheduler(v.queue),
	}

	var canvas *ggcanvas.Canvas
	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			canvas, err = ggcanvas.New(provider, w, h)
			if err != nil {
				log.Fatalf("Failed to create canvas: %v", err)
			}
			v.gauge, err = rose.New(windowCanvas{canvas}, opts...)
			if err != nil {
				log.Fatalf("Failed to create gauge: %v", err)
			}
			log.Printf("Gauge created: %dpx (Space for next step)", v.gauge.Size())
		}

		v.queue.Flush(time.Now())

		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Printf("Render error: %v", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key != gpucontext.KeySpace || v.gauge == nil {
			return
		}
		v.next()
	})

	app.OnClose(func() {
		if v.gauge != nil {
			_ = v.gauge.Close()
		}
		v.stopAnimation()
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}

// next advances the demo one step.
func (v *viewer) next() {
	v.step++
	g := v.gauge

	steps := []struct {
		what string
		err  error
	}{
		{"value", g.SetValue(randomValues())},
		{"frame", g.SetFrameDesign(v.frames[v.step%len(v.frames)])},
		{"background", g.SetBackgroundColor(v.backgrounds[v.step%len(v.backgrounds)])},
		{"foreground", g.SetForegroundType(v.foregrounds[v.step%len(v.foregrounds)])},
	}
	for _, s := range steps {
		if s.err != nil {
			log.Printf("Set %s: %v", s.what, s.err)
		}
	}

	if v.anim == nil {
		v.anim = v.app.StartAnimation()
	}
	target := g.OdoValue() + 1 + rand.Float64()*50
	g.SetOdoValueAnimated(target, v.stopAnimation)
	log.Printf("Step %d: %s, %s, %s, odometer -> %.1f",
		v.step, g.FrameDesign(), g.BackgroundColor(), g.ForegroundType(), target)
}

func (v *viewer) stopAnimation() {
	if v.anim != nil {
		v.anim.Stop()
		v.anim = nil
	}
}

func randomValues() []float64 {
	values := make([]float64, 8+rand.IntN(9))
	for i := range values {
		values[i] = rand.Float64() * 20
	}
	return values
}
