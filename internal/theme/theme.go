// Package theme holds the cueline color palette and the semantic color
// roles the timeline paints with.
//
// The palette is gruvbox. Components never pick raw palette entries for
// chrome; they use the role constants (Background, Outline, Text, ...) so
// the whole UI can be retuned in one place. Scene colors come from the
// show configuration and are arbitrary hex values.
package theme

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex color string in "#rrggbb" form.
type Color string

// Gruvbox palette.
const (
	Dark0Hard Color = "#1d2021"
	Dark0     Color = "#282828"
	Dark0Soft Color = "#32302f"
	Dark1     Color = "#3c3836"
	Dark2     Color = "#504945"
	Dark3     Color = "#665c54"
	Dark4     Color = "#7c6f64"

	Gray245 Color = "#928374"

	Light0Hard Color = "#f9f5d7"
	Light0     Color = "#fbf1c7"
	Light0Soft Color = "#f2e5bc"
	Light1     Color = "#ebdbb2"
	Light2     Color = "#d5c4a1"
	Light3     Color = "#bdae93"
	Light4     Color = "#a89984"

	BrightRed    Color = "#fb4934"
	BrightGreen  Color = "#b8bb26"
	BrightYellow Color = "#fabd2f"
	BrightBlue   Color = "#83a598"
	BrightPurple Color = "#d3869b"
	BrightAqua   Color = "#8ec07c"
	BrightOrange Color = "#fe8019"

	NeutralRed    Color = "#cc241d"
	NeutralGreen  Color = "#98971a"
	NeutralYellow Color = "#d79921"
	NeutralBlue   Color = "#458588"
	NeutralPurple Color = "#b16286"
	NeutralAqua   Color = "#689d6a"
	NeutralOrange Color = "#d65d0e"

	FadedRed    Color = "#9d0006"
	FadedGreen  Color = "#79740e"
	FadedYellow Color = "#b57614"
	FadedBlue   Color = "#076678"
	FadedPurple Color = "#8f3f71"
	FadedAqua   Color = "#427b58"
	FadedOrange Color = "#af3a03"
)

// Semantic roles.
const (
	Background      = Dark0Hard
	Outline         = Dark2
	SelectedOutline = Light4
	Text            = Light0Hard
	TimeBackground  = Dark0Soft
	Ruler           = Dark0Soft
	Playhead        = BrightRed
	LabelBackground = Dark1
	LightingCueFill = FadedYellow
	Gutter          = Dark1
)

// Darken returns the color with its lightness divided by factor.
// Darken(c, 1.2) matches Qt's QColor.darker(120) used by the cue painters
// for the hover state.
func Darken(c Color, factor float64) Color {
	if factor <= 0 {
		return c
	}
	return scaleLightness(c, 1/factor)
}

// Lighten returns the color with its lightness multiplied by factor.
// Lighten(c, 1.2) matches Qt's QColor.lighter(120) used for selection.
func Lighten(c Color, factor float64) Color {
	if factor <= 0 {
		return c
	}
	return scaleLightness(c, factor)
}

// Valid reports whether c parses as a hex color.
func Valid(c Color) bool {
	_, err := colorful.Hex(normalizeHex(c))
	return err == nil
}

func scaleLightness(c Color, factor float64) Color {
	col, err := colorful.Hex(normalizeHex(c))
	if err != nil {
		return c
	}
	h, s, l := col.Hsl()
	l *= factor
	if l > 1 {
		l = 1
	}
	if l < 0 {
		l = 0
	}
	return Color(colorful.Hsl(h, s, l).Clamped().Hex())
}

func normalizeHex(c Color) string {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return s
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return strings.ToLower(s)
}
