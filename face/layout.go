package face

import (
	"fmt"
	"image/color"
)

// Metrics reports glyph widths. fonts.Face satisfies it.
type Metrics interface {
	Advance(r rune) int
}

// Alignment selects how the glyph row is placed horizontally.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
)

func (a Alignment) String() string {
	if a == AlignCenter {
		return "center"
	}
	return "left"
}

// ParseAlignment accepts "left" and "center".
func ParseAlignment(s string) (Alignment, error) {
	switch s {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("face: unknown alignment %q", s)
}

// DefaultMargin is the left-anchored x of the first glyph.
const DefaultMargin = 2

// LayoutOptions describes the surface the row is placed on.
type LayoutOptions struct {
	Width  int
	Height int
	Align  Alignment
	// Margin is the first glyph's x when left aligned.
	Margin int
	Hours  HourDigits
}

// Glyph is one positioned, colored character. Y is the vertical center line
// of the row.
type Glyph struct {
	Char  rune
	Color color.RGBA
	X, Y  int
	Width int
}

// Colors is the color of each glyph role.
type Colors struct {
	HourTens   color.RGBA
	HourOnes   color.RGBA
	Colon      color.RGBA
	MinuteTens color.RGBA
	MinuteOnes color.RGBA
}

// Frame is everything a surface needs to draw one clock face.
type Frame struct {
	Background color.RGBA
	Glyphs     []Glyph
}

// Layout positions the glyphs of r. Widths are measured from m on every call
// and glyphs touch: each starts where the previous one's advance ends.
func Layout(r Reading, c Colors, m Metrics, opt LayoutOptions) []Glyph {
	runes := r.Runes(opt.Hours)
	colors := make([]color.RGBA, 0, len(runes))
	if len(runes) == 5 {
		colors = append(colors, c.HourTens)
	}
	colors = append(colors, c.HourOnes, c.Colon, c.MinuteTens, c.MinuteOnes)

	y := opt.Height / 2
	glyphs := make([]Glyph, len(runes))
	colon := 0
	for i, ch := range runes {
		glyphs[i] = Glyph{Char: ch, Color: colors[i], Y: y, Width: m.Advance(ch)}
		if ch == ':' {
			colon = i
		}
	}

	switch opt.Align {
	case AlignCenter:
		// Half-up rounding of width/2 - colonWidth/2.
		glyphs[colon].X = floorDiv(opt.Width-glyphs[colon].Width+1, 2)
		for i := colon - 1; i >= 0; i-- {
			glyphs[i].X = glyphs[i+1].X - glyphs[i].Width
		}
		for i := colon + 1; i < len(glyphs); i++ {
			glyphs[i].X = glyphs[i-1].X + glyphs[i-1].Width
		}
	default:
		x := opt.Margin
		for i := range glyphs {
			glyphs[i].X = x
			x += glyphs[i].Width
		}
	}
	return glyphs
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
