// Package fonts provides the clock's glyph metrics and rasterizers.
package fonts

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"matrixclock/fonts/font6x8"
	"matrixclock/fonts/segment"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Font names accepted by ByName.
const (
	Segment = "segment"
	Small   = "6x8"
	Proggy  = "proggy"
	Basic   = "basic"
)

var (
	ErrUnknownFont  = errors.New("unknown font")
	ErrMissingGlyph = errors.New("missing glyph")
)

// clockRunes must all have a non-zero advance in a usable face.
const clockRunes = "0123456789:"

// Canvas is a pixel surface glyphs are drawn onto.
type Canvas interface {
	drivers.Displayer
	draw.Image
}

// Face measures and draws single glyphs.
type Face interface {
	Name() string
	// Advance is the horizontal pixel width r occupies, bearings included.
	Advance(r rune) int
	// Ascent is the height of digits above the baseline.
	Ascent() int
	// DrawGlyph draws r with its origin on the baseline at (x, y).
	DrawGlyph(dst Canvas, x, y int, r rune, c color.RGBA)
}

// ByName returns the named face after checking it covers every clock glyph.
// An empty name selects the segment font.
func ByName(name string) (Face, error) {
	var f Face
	switch name {
	case "", Segment:
		f = NewTinyfont(Segment, segment.Default)
	case Small:
		f = NewTinyfont(Small, font6x8.Font)
	case Proggy:
		f = NewTinyfont(Proggy, &proggy.TinySZ8pt7b)
	case Basic:
		f = NewImageFace(Basic, basicfont.Face7x13)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFont, name)
	}
	if err := Check(f); err != nil {
		return nil, err
	}
	return f, nil
}

// Check reports ErrMissingGlyph when f cannot render a clock glyph.
func Check(f Face) error {
	for _, r := range clockRunes {
		if f.Advance(r) <= 0 {
			return fmt.Errorf("font %s: %w: %q", f.Name(), ErrMissingGlyph, r)
		}
	}
	return nil
}

type tinyfontFace struct {
	name   string
	font   tinyfont.Fonter
	ascent int
}

// NewTinyfont wraps a tinyfont.Fonter.
func NewTinyfont(name string, f tinyfont.Fonter) Face {
	ascent := 0
	for _, r := range clockRunes {
		if a := -int(f.GetGlyph(r).Info().YOffset); a > ascent {
			ascent = a
		}
	}
	return &tinyfontFace{name: name, font: f, ascent: ascent}
}

func (f *tinyfontFace) Name() string { return f.name }
func (f *tinyfontFace) Ascent() int  { return f.ascent }

func (f *tinyfontFace) Advance(r rune) int {
	_, outbox := tinyfont.LineWidth(f.font, string(r))
	return int(outbox)
}

func (f *tinyfontFace) DrawGlyph(dst Canvas, x, y int, r rune, c color.RGBA) {
	tinyfont.DrawChar(dst, f.font, int16(x), int16(y), r, c)
}

type imageFace struct {
	name string
	face font.Face
}

// NewImageFace wraps an x/image font.Face.
func NewImageFace(name string, f font.Face) Face {
	return &imageFace{name: name, face: f}
}

func (f *imageFace) Name() string { return f.name }

func (f *imageFace) Ascent() int {
	m := f.face.Metrics()
	if m.CapHeight > 0 {
		return m.CapHeight.Ceil()
	}
	return m.Ascent.Ceil()
}

func (f *imageFace) Advance(r rune) int {
	adv, ok := f.face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return adv.Round()
}

func (f *imageFace) DrawGlyph(dst Canvas, x, y int, r rune, c color.RGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(string(r))
}
