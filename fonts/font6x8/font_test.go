package font6x8

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

func TestCharsetMatchesArt(t *testing.T) {
	if got, want := len(art), len([]rune(charset)); got != want {
		t.Fatalf("art has %d glyphs, charset has %d", got, want)
	}
	for i, rows := range art {
		for _, line := range rows {
			if len(line) != 5 {
				t.Fatalf("glyph %q: row %q is not 5 wide", charset[i], line)
			}
		}
	}
}

func TestGlyphIndexFallbacks(t *testing.T) {
	if glyphIndex('a') != glyphIndex('A') {
		t.Error("lower case should map to upper case")
	}
	if glyphIndex('~') != glyphIndex('?') {
		t.Error("unknown rune should map to '?'")
	}
}

type pixels map[[2]int16]bool

func (p pixels) Size() (int16, int16)                { return 16, 16 }
func (p pixels) SetPixel(x, y int16, _ color.RGBA) { p[[2]int16{x, y}] = true }
func (p pixels) Display() error                      { return nil }

func TestDrawOne(t *testing.T) {
	p := pixels{}
	tinyfont.DrawChar(p, Font, 0, 7, '1', color.RGBA{R: 255, A: 255})

	// Top row of '1' is a single pixel in the middle column.
	if !p[[2]int16{2, 0}] || p[[2]int16{1, 0}] {
		t.Fatalf("unexpected top row: %v", p)
	}
	// Base serif spans columns 1-3 on row 6.
	for x := int16(1); x <= 3; x++ {
		if !p[[2]int16{x, 6}] {
			t.Fatalf("missing base pixel at x=%d", x)
		}
	}
	if _, w := tinyfont.LineWidth(Font, "12:34"); w != 30 {
		t.Fatalf("LineWidth = %d, want 30", w)
	}
}
