package steel

import (
	"fmt"
	"strings"
)

// FrameDesign selects the metal look of the outer frame ring.
type FrameDesign int

// Frame designs.
const (
	FrameMetal FrameDesign = iota
	FrameShinyMetal
	FrameBlackMetal
	FrameBrass
	FrameSteel
	FrameChrome
	FrameGold
	FrameAnthracite
	FrameTiltedGray
	FrameTiltedBlack
	FrameGlossyMetal
	frameDesignCount
)

var frameDesignNames = [...]string{
	"metal", "shiny-metal", "black-metal", "brass", "steel", "chrome",
	"gold", "anthracite", "tilted-gray", "tilted-black", "glossy-metal",
}

func (d FrameDesign) String() string {
	if d < 0 || d >= frameDesignCount {
		return "unknown"
	}
	return frameDesignNames[d]
}

// FrameDesigns returns every frame design in declaration order.
func FrameDesigns() []FrameDesign {
	out := make([]FrameDesign, frameDesignCount)
	for i := range out {
		out[i] = FrameDesign(i)
	}
	return out
}

// ParseFrameDesign parses the String form of a frame design.
func ParseFrameDesign(s string) (FrameDesign, error) {
	i, err := parseToken(s, frameDesignNames[:])
	return FrameDesign(i), err
}

// ForegroundType selects the shape of the glass highlight.
type ForegroundType int

// Foreground types.
const (
	ForegroundType1 ForegroundType = iota
	ForegroundType2
	ForegroundType3
	ForegroundType4
	ForegroundType5
	foregroundTypeCount
)

var foregroundTypeNames = [...]string{"type1", "type2", "type3", "type4", "type5"}

func (f ForegroundType) String() string {
	if f < 0 || f >= foregroundTypeCount {
		return "unknown"
	}
	return foregroundTypeNames[f]
}

// ForegroundTypes returns every foreground type in declaration order.
func ForegroundTypes() []ForegroundType {
	out := make([]ForegroundType, foregroundTypeCount)
	for i := range out {
		out[i] = ForegroundType(i)
	}
	return out
}

// ParseForegroundType parses the String form of a foreground type.
func ParseForegroundType(s string) (ForegroundType, error) {
	i, err := parseToken(s, foregroundTypeNames[:])
	return ForegroundType(i), err
}

// BackgroundColor selects the dial background palette.
type BackgroundColor int

// Background colors.
const (
	BackgroundDarkGray BackgroundColor = iota
	BackgroundSatinGray
	BackgroundLightGray
	BackgroundWhite
	BackgroundBlack
	BackgroundBeige
	BackgroundBrown
	BackgroundRed
	BackgroundGreen
	BackgroundBlue
	BackgroundAnthracite
	BackgroundMud
	backgroundColorCount
)

// backgroundPalette holds the vertical gradient and text colors of a dial.
type backgroundPalette struct {
	name                string
	start, middle, stop Color
	label               Color
}

var backgroundPalettes = [...]backgroundPalette{
	{"dark-gray", rgb(0, 0, 0), rgb(51, 51, 51), rgb(153, 153, 153), rgb(255, 255, 255)},
	{"satin-gray", rgb(45, 57, 57), rgb(45, 57, 57), rgb(45, 57, 57), rgb(167, 184, 180)},
	{"light-gray", rgb(130, 130, 130), rgb(181, 181, 181), rgb(253, 253, 253), rgb(0, 0, 0)},
	{"white", rgb(0, 0, 0), rgb(222, 222, 222), rgb(255, 255, 255), rgb(0, 0, 0)},
	{"black", rgb(0, 0, 0), rgb(0, 0, 0), rgb(0, 0, 0), rgb(255, 255, 255)},
	{"beige", rgb(178, 172, 150), rgb(204, 205, 184), rgb(231, 231, 214), rgb(0, 0, 0)},
	{"brown", rgb(245, 225, 193), rgb(245, 225, 193), rgb(255, 250, 240), rgb(109, 73, 47)},
	{"red", rgb(198, 93, 95), rgb(212, 132, 134), rgb(242, 218, 218), rgb(0, 0, 0)},
	{"green", rgb(65, 120, 40), rgb(129, 171, 95), rgb(218, 237, 202), rgb(0, 0, 0)},
	{"blue", rgb(45, 83, 122), rgb(115, 144, 170), rgb(227, 234, 238), rgb(0, 0, 0)},
	{"anthracite", rgb(50, 51, 56), rgb(38, 38, 44), rgb(97, 97, 108), rgb(255, 255, 255)},
	{"mud", rgb(80, 86, 82), rgb(70, 76, 72), rgb(57, 62, 58), rgb(255, 255, 240)},
}

func (b BackgroundColor) palette() backgroundPalette {
	if b < 0 || b >= backgroundColorCount {
		return backgroundPalettes[BackgroundDarkGray]
	}
	return backgroundPalettes[b]
}

func (b BackgroundColor) String() string {
	if b < 0 || b >= backgroundColorCount {
		return "unknown"
	}
	return backgroundPalettes[b].name
}

// LabelColor returns the color used for text drawn over this background.
// Unknown values fall back to the dark gray palette.
func (b BackgroundColor) LabelColor() Color {
	return b.palette().label
}

// BackgroundColors returns every background color in declaration order.
func BackgroundColors() []BackgroundColor {
	out := make([]BackgroundColor, backgroundColorCount)
	for i := range out {
		out[i] = BackgroundColor(i)
	}
	return out
}

// ParseBackgroundColor parses the String form of a background color.
func ParseBackgroundColor(s string) (BackgroundColor, error) {
	names := make([]string, len(backgroundPalettes))
	for i, p := range backgroundPalettes {
		names[i] = p.name
	}
	i, err := parseToken(s, names)
	return BackgroundColor(i), err
}

func parseToken(s string, names []string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "-")
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("steel: unknown style %q", s)
}
