package face

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/hsluv/hsluv-go"
)

// Palette is a fixed-size color table.
//
// Index 0 is the background and never rotates. The last index is scratch
// space for Rotate. Indices 1..Len()-2 form the rotating range.
type Palette struct {
	colors []color.RGBA
}

// MinPaletteLen is a background, one glyph color and the scratch slot.
const MinPaletteLen = 3

// NewPalette copies colors into a palette.
func NewPalette(colors []color.RGBA) (*Palette, error) {
	if len(colors) < MinPaletteLen {
		return nil, fmt.Errorf("palette: need at least %d entries, got %d", MinPaletteLen, len(colors))
	}
	p := &Palette{colors: make([]color.RGBA, len(colors))}
	copy(p.colors, colors)
	return p, nil
}

// Rainbow is the default nine-entry palette: black background, red, orange,
// yellow, green, blue, purple, pink, and pink again in the scratch slot.
func Rainbow() *Palette {
	p, _ := NewPalette([]color.RGBA{
		Hex(0x000000),
		Hex(0xCC0000),
		Hex(0xFF6F00),
		Hex(0xFFFF00),
		Hex(0x00FF00),
		Hex(0x0000FF),
		Hex(0x6600CD),
		Hex(0xE80064),
		Hex(0xE80064),
	})
	return p
}

// HSLuvRainbow builds a palette of n evenly spaced hues at full saturation,
// with a black background and a scratch copy of the last hue.
func HSLuvRainbow(n int) (*Palette, error) {
	if n < 1 {
		return nil, fmt.Errorf("palette: hsluv needs at least 1 hue, got %d", n)
	}
	colors := make([]color.RGBA, 0, n+2)
	colors = append(colors, Hex(0x000000))
	for i := 0; i < n; i++ {
		r, g, b := hsluv.HsluvToRGB(360*float64(i)/float64(n), 100, 55)
		colors = append(colors, color.RGBA{R: unit8(r), G: unit8(g), B: unit8(b), A: 0xFF})
	}
	colors = append(colors, colors[len(colors)-1])
	return NewPalette(colors)
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xFF
	default:
		return uint8(v*255 + 0.5)
	}
}

// Hex converts 0xRRGGBB to an opaque color.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xFF}
}

// ParseHex parses "#rrggbb", "rrggbb" or "0xrrggbb".
func ParseHex(s string) (color.RGBA, error) {
	v := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(v) != 6 {
		return color.RGBA{}, fmt.Errorf("palette: bad color %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("palette: bad color %q: %w", s, err)
	}
	return Hex(uint32(n)), nil
}

// Len is the number of entries including background and scratch.
func (p *Palette) Len() int { return len(p.colors) }

// RotatingLen is the size of the rotating range.
func (p *Palette) RotatingLen() int {
	if n := len(p.colors) - 2; n > 0 {
		return n
	}
	return 0
}

// At returns entry i.
func (p *Palette) At(i int) color.RGBA { return p.colors[i] }

// Background returns entry 0.
func (p *Palette) Background() color.RGBA { return p.colors[0] }

// Colors returns a copy of the table.
func (p *Palette) Colors() []color.RGBA {
	out := make([]color.RGBA, len(p.colors))
	copy(out, p.colors)
	return out
}

// Rotate shifts the rotating range left by one: entry i+1 moves to i and
// entry 1 wraps round to the top of the range through the scratch slot.
// Ranges shorter than two entries are left alone.
func (p *Palette) Rotate() {
	n := p.RotatingLen()
	if n < 2 {
		return
	}
	scratch := len(p.colors) - 1
	p.colors[scratch] = p.colors[1]
	for i := 1; i < n; i++ {
		p.colors[i] = p.colors[i+1]
	}
	p.colors[n] = p.colors[scratch]
}

// Slot reduces a configured slot index into the rotating range, so a slot
// mapping written for a large palette still works on a small one.
func (p *Palette) Slot(i int) int {
	n := p.RotatingLen()
	if i >= 1 && i <= n {
		return i
	}
	if i < 1 {
		i = 1
	}
	return 1 + (i-1)%n
}
