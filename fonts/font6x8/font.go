// Package font6x8 is a small monospace 6x8 bitmap font.
//
// It covers digits, upper-case ASCII letters and a little punctuation, which
// is enough for layout debugging and fault messages. Lower-case letters are
// drawn upper-case; anything else falls back to '?'.
package font6x8

import (
	"image/color"
	"strings"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font implements tinyfont.Fonter.
// Concurrent access is not safe due to internal glyph reuse.
var Font tinyfont.Fonter = &font6x8{}

type font6x8 struct {
	g glyph
}

type glyph struct {
	r rune
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	base := glyphIndex(g.r) * 8
	for row := 0; row < 8; row++ {
		b := glyphData[base+row]
		// Bits are stored as 0b00xxxxxx (bit5 = leftmost pixel).
		for col := 0; col < 6; col++ {
			if b&(0x20>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(7-row), c)
		}
	}
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    6,
		Height:   8,
		XAdvance: 6,
		XOffset:  0,
		YOffset:  -7,
	}
}

func (f *font6x8) GetYAdvance() uint8 { return 8 }

func (f *font6x8) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

const charset = " 0123456789:-.,?!/=ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func glyphIndex(r rune) int {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if i := strings.IndexRune(charset, r); i >= 0 {
		return i
	}
	return strings.IndexByte(charset, '?')
}

// art holds 5x7 glyphs, one string per row, in charset order.
var art = [...][7]string{
	{".....", ".....", ".....", ".....", ".....", ".....", "....."},
	{".###.", "#...#", "#..##", "#.#.#", "##..#", "#...#", ".###."},
	{"..#..", ".##..", "..#..", "..#..", "..#..", "..#..", ".###."},
	{".###.", "#...#", "....#", "...#.", "..#..", ".#...", "#####"},
	{"#####", "...#.", "..#..", "...#.", "....#", "#...#", ".###."},
	{"...#.", "..##.", ".#.#.", "#..#.", "#####", "...#.", "...#."},
	{"#####", "#....", "####.", "....#", "....#", "#...#", ".###."},
	{"..##.", ".#...", "#....", "####.", "#...#", "#...#", ".###."},
	{"#####", "....#", "...#.", "..#..", ".#...", ".#...", ".#..."},
	{".###.", "#...#", "#...#", ".###.", "#...#", "#...#", ".###."},
	{".###.", "#...#", "#...#", ".####", "....#", "...#.", ".##.."},
	{".....", ".##..", ".##..", ".....", ".##..", ".##..", "....."},
	{".....", ".....", ".....", "#####", ".....", ".....", "....."},
	{".....", ".....", ".....", ".....", ".....", ".##..", ".##.."},
	{".....", ".....", ".....", ".....", ".##..", "..#..", ".#..."},
	{".###.", "#...#", "....#", "...#.", "..#..", ".....", "..#.."},
	{"..#..", "..#..", "..#..", "..#..", "..#..", ".....", "..#.."},
	{".....", "....#", "...#.", "..#..", ".#...", "#....", "....."},
	{".....", ".....", "#####", ".....", "#####", ".....", "....."},
	{".###.", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	{"####.", "#...#", "#...#", "####.", "#...#", "#...#", "####."},
	{".###.", "#...#", "#....", "#....", "#....", "#...#", ".###."},
	{"###..", "#..#.", "#...#", "#...#", "#...#", "#..#.", "###.."},
	{"#####", "#....", "#....", "####.", "#....", "#....", "#####"},
	{"#####", "#....", "#....", "####.", "#....", "#....", "#...."},
	{".###.", "#...#", "#....", "#.###", "#...#", "#...#", ".####"},
	{"#...#", "#...#", "#...#", "#####", "#...#", "#...#", "#...#"},
	{".###.", "..#..", "..#..", "..#..", "..#..", "..#..", ".###."},
	{"..###", "...#.", "...#.", "...#.", "...#.", "#..#.", ".##.."},
	{"#...#", "#..#.", "#.#..", "##...", "#.#..", "#..#.", "#...#"},
	{"#....", "#....", "#....", "#....", "#....", "#....", "#####"},
	{"#...#", "##.##", "#.#.#", "#.#.#", "#...#", "#...#", "#...#"},
	{"#...#", "#...#", "##..#", "#.#.#", "#..##", "#...#", "#...#"},
	{".###.", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	{"####.", "#...#", "#...#", "####.", "#....", "#....", "#...."},
	{".###.", "#...#", "#...#", "#...#", "#.#.#", "#..#.", ".##.#"},
	{"####.", "#...#", "#...#", "####.", "#.#..", "#..#.", "#...#"},
	{".####", "#....", "#....", ".###.", "....#", "....#", "####."},
	{"#####", "..#..", "..#..", "..#..", "..#..", "..#..", "..#.."},
	{"#...#", "#...#", "#...#", "#...#", "#...#", "#...#", ".###."},
	{"#...#", "#...#", "#...#", "#...#", "#...#", ".#.#.", "..#.."},
	{"#...#", "#...#", "#...#", "#.#.#", "#.#.#", "#.#.#", ".#.#."},
	{"#...#", "#...#", ".#.#.", "..#..", ".#.#.", "#...#", "#...#"},
	{"#...#", "#...#", ".#.#.", "..#..", "..#..", "..#..", "..#.."},
	{"#####", "....#", "...#.", "..#..", ".#...", "#....", "#####"},
}

// glyphData is art packed 8 bytes per glyph; row 7 is the blank descender row.
var glyphData = packArt()

func packArt() []byte {
	data := make([]byte, len(art)*8)
	for i, rows := range art {
		for row, line := range rows {
			var b byte
			for col := 0; col < len(line); col++ {
				if line[col] == '#' {
					b |= 0x20 >> col
				}
			}
			data[i*8+row] = b
		}
	}
	return data
}
