package screen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme derives per-widget border colors from a two-color ramp.
type Theme struct {
	Start colorful.Color
	End   colorful.Color
}

// DefaultTheme blends from teal to violet across the widget list.
var DefaultTheme = Theme{
	Start: colorful.Color{R: 0.20, G: 0.75, B: 0.70},
	End:   colorful.Color{R: 0.65, G: 0.45, B: 0.95},
}

// BorderColor returns the ramp color for widget i of n.
func (t Theme) BorderColor(i, n int) tcell.Color {
	pos := 0.0
	if n > 1 {
		pos = float64(i) / float64(n-1)
	}
	c := t.Start.BlendHcl(t.End, pos).Clamped()
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ParseColor converts a hex color string ("#rrggbb") to a tcell color.
func ParseColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
