// Package segment provides a scalable seven-segment digit font.
//
// It implements tinyfont.Fonter. Digits, ':', '-' and ' ' are drawn; every
// other rune is an empty glyph with zero advance.
package segment

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Default is sized for a 64x32 panel: 10x20 digits, 3px strokes.
var Default tinyfont.Fonter = New(10, 20, 3, 2)

// Font is a seven-segment font. Concurrent access is not safe due to
// internal glyph reuse (matches tinyfont's own fonts).
type Font struct {
	Width     uint8
	Height    uint8
	Thickness uint8
	Spacing   uint8

	g glyph
}

// New returns a font with width x height digit cells, strokes of thickness
// pixels and spacing pixels of right bearing after every glyph.
func New(width, height, thickness, spacing uint8) *Font {
	f := &Font{Width: width, Height: height, Thickness: thickness, Spacing: spacing}
	f.g.f = f
	return f
}

const (
	segA uint8 = 1 << iota // top
	segB                   // upper right
	segC                   // lower right
	segD                   // bottom
	segE                   // lower left
	segF                   // upper left
	segG                   // middle
)

var digitSegments = [10]uint8{
	segA | segB | segC | segD | segE | segF,
	segB | segC,
	segA | segB | segG | segE | segD,
	segA | segB | segG | segC | segD,
	segF | segG | segB | segC,
	segA | segF | segG | segC | segD,
	segA | segF | segG | segE | segD | segC,
	segA | segB | segC,
	segA | segB | segC | segD | segE | segF | segG,
	segA | segB | segC | segD | segF | segG,
}

type glyph struct {
	f *Font
	r rune
}

func (f *Font) GetYAdvance() uint8 { return f.Height + 4 }

func (f *Font) GetGlyph(r rune) tinyfont.Glypher {
	f.g.r = r
	return &f.g
}

func (g *glyph) Info() tinyfont.GlyphInfo {
	f := g.f
	info := tinyfont.GlyphInfo{Rune: g.r, YOffset: -int8(f.Height)}
	switch {
	case g.r >= '0' && g.r <= '9', g.r == '-', g.r == ' ':
		info.Width = f.Width
		info.Height = f.Height
		info.XAdvance = f.Width + f.Spacing
	case g.r == ':':
		info.Width = f.Thickness
		info.Height = f.Height
		info.XAdvance = f.Thickness + f.Spacing
		info.XOffset = int8(f.Spacing / 2)
	default:
		info.YOffset = 0
	}
	return info
}

func (g *glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	f := g.f
	w, h, t := int16(f.Width), int16(f.Height), int16(f.Thickness)
	top := y - h
	mid := (h - t) / 2

	switch {
	case g.r == ':':
		x += int16(f.Spacing / 2)
		fillRect(display, x, top+h/3-t/2, t, t, c)
		fillRect(display, x, top+2*h/3-t/2, t, t, c)
		return
	case g.r == '-':
		fillRect(display, x, top+mid, w, t, c)
		return
	case g.r < '0' || g.r > '9':
		return
	}

	segs := digitSegments[g.r-'0']
	if segs&segA != 0 {
		fillRect(display, x, top, w, t, c)
	}
	if segs&segB != 0 {
		fillRect(display, x+w-t, top, t, mid+t, c)
	}
	if segs&segC != 0 {
		fillRect(display, x+w-t, top+mid, t, h-mid, c)
	}
	if segs&segD != 0 {
		fillRect(display, x, top+h-t, w, t, c)
	}
	if segs&segE != 0 {
		fillRect(display, x, top+mid, t, h-mid, c)
	}
	if segs&segF != 0 {
		fillRect(display, x, top, t, mid+t, c)
	}
	if segs&segG != 0 {
		fillRect(display, x, top+mid, w, t, c)
	}
}

func fillRect(display drivers.Displayer, x, y, w, h int16, c color.RGBA) {
	for j := int16(0); j < h; j++ {
		for i := int16(0); i < w; i++ {
			display.SetPixel(x+i, y+j, c)
		}
	}
}
