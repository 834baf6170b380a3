package plot

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

// Fill is one segment paint: a solid color or a radial gradient running
// from the centre outward.
type Fill []gg.RGBA

var namedColors = map[string]gg.RGBA{
	"black":       gg.Black,
	"white":       gg.White,
	"red":         gg.Red,
	"green":       gg.RGB(0, 128.0/255, 0),
	"blue":        gg.Blue,
	"yellow":      gg.Yellow,
	"gray":        gg.RGB(128.0/255, 128.0/255, 128.0/255),
	"grey":        gg.RGB(128.0/255, 128.0/255, 128.0/255),
	"transparent": gg.Transparent,
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or a basic color name.
func ParseColor(s string) (gg.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		switch len(s) {
		case 4, 5, 7, 9:
			return gg.Hex(s), nil
		}
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %q", ErrBadColor, s)
}

// ParseFill parses a color or a "Gradient(a:b:c)" expression.
func ParseFill(s string) (Fill, error) {
	t := strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(t, "Gradient("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		parts := strings.Split(inner, ":")
		f := make(Fill, 0, len(parts))
		for _, p := range parts {
			c, err := ParseColor(p)
			if err != nil {
				return nil, err
			}
			f = append(f, c)
		}
		return f, nil
	}
	c, err := ParseColor(t)
	if err != nil {
		return nil, err
	}
	return Fill{c}, nil
}

func toColor(v any) (gg.RGBA, error) {
	switch c := v.(type) {
	case gg.RGBA:
		return c, nil
	case string:
		return ParseColor(c)
	case color.Color:
		return gg.FromColor(c), nil
	}
	return gg.RGBA{}, fmt.Errorf("%w: %T", ErrBadColor, v)
}

func toFills(v any) ([]Fill, error) {
	switch c := v.(type) {
	case []Fill:
		return c, nil
	case Fill:
		return []Fill{c}, nil
	case string:
		f, err := ParseFill(c)
		if err != nil {
			return nil, err
		}
		return []Fill{f}, nil
	case []string:
		out := make([]Fill, 0, len(c))
		for _, s := range c {
			f, err := ParseFill(s)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
		return out, nil
	case []color.Color:
		out := make([]Fill, 0, len(c))
		for _, col := range c {
			out = append(out, Fill{gg.FromColor(col)})
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrBadColor, v)
}
