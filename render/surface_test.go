package render

import (
	"errors"
	"image/color"
	"testing"

	"matrixclock/face"
	"matrixclock/fonts"
	"matrixclock/hal"
)

type memDisplay struct{ fb *hal.MemFramebuffer }

func (d memDisplay) Framebuffer() hal.Framebuffer {
	if d.fb == nil {
		return nil
	}
	return d.fb
}

// nilPtrDisplay hands out a nil *MemFramebuffer inside a non-nil interface.
type nilPtrDisplay struct{}

func (nilPtrDisplay) Framebuffer() hal.Framebuffer { return (*hal.MemFramebuffer)(nil) }

func newSurface(t *testing.T, font string) (*Surface, *hal.MemFramebuffer) {
	t.Helper()
	f, err := fonts.ByName(font)
	if err != nil {
		t.Fatal(err)
	}
	fb := hal.NewMemFramebuffer(64, 32)
	s, err := NewSurface(memDisplay{fb}, f)
	if err != nil {
		t.Fatal(err)
	}
	return s, fb
}

func litColumns(fb *hal.MemFramebuffer, want color.RGBA) (min, max int) {
	min, max = -1, -1
	for x := 0; x < fb.Width(); x++ {
		for y := 0; y < fb.Height(); y++ {
			if hal.RGB565(fb.PixelRGB(x, y)) == hal.RGB565(want.R, want.G, want.B) {
				if min < 0 {
					min = x
				}
				max = x
				break
			}
		}
	}
	return min, max
}

func TestSurfaceShowDrawsGlyphsInBoxes(t *testing.T) {
	s, fb := newSurface(t, fonts.Segment)
	red := color.RGBA{R: 0xF8, A: 0xFF}
	green := color.RGBA{G: 0xFC, A: 0xFF}

	err := s.Show(face.Frame{
		Background: color.RGBA{A: 0xFF},
		Glyphs: []face.Glyph{
			{Char: '8', Color: red, X: 2, Y: 16, Width: 12},
			{Char: '8', Color: green, X: 14, Y: 16, Width: 12},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if fb.Presents() != 1 {
		t.Fatalf("presents = %d, want 1", fb.Presents())
	}
	if lo, hi := litColumns(fb, red); lo < 2 || hi >= 14 {
		t.Fatalf("red glyph spans x %d..%d, want inside 2..13", lo, hi)
	}
	if lo, hi := litColumns(fb, green); lo < 14 || hi >= 26 {
		t.Fatalf("green glyph spans x %d..%d, want inside 14..25", lo, hi)
	}
}

func TestSurfaceShowClearsAndSkipsHidden(t *testing.T) {
	s, fb := newSurface(t, fonts.Small)
	bg := color.RGBA{R: 0x08, G: 0x04, B: 0x08, A: 0xFF}
	if err := s.Show(face.Frame{Background: color.RGBA{R: 0xF8, A: 0xFF}}); err != nil {
		t.Fatal(err)
	}
	err := s.Show(face.Frame{
		Background: bg,
		Glyphs:     []face.Glyph{{Char: ':', Color: bg, X: 10, Y: 16, Width: 6}},
	})
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if r, g, b := fb.PixelRGB(x, y); r != 0x08 || g != 0x04 || b != 0x08 {
				t.Fatalf("pixel (%d,%d) = %02x%02x%02x, want background", x, y, r, g, b)
			}
		}
	}
}

func TestNewSurfaceWithoutFramebuffer(t *testing.T) {
	f, _ := fonts.ByName(fonts.Small)
	tests := map[string]hal.Display{
		"nil display":     nil,
		"nil framebuffer": memDisplay{},
		"nil pointer":     nilPtrDisplay{},
		"empty":           memDisplay{hal.NewMemFramebuffer(0, 0)},
	}
	for name, d := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := NewSurface(d, f); !errors.Is(err, ErrNoFramebuffer) {
				t.Fatalf("NewSurface = %v, want ErrNoFramebuffer", err)
			}
		})
	}
}

func TestCanvasReadBack(t *testing.T) {
	fb := hal.NewMemFramebuffer(4, 4)
	c := NewCanvas(fb)
	c.Set(1, 2, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	c.SetPixel(9, 9, color.RGBA{R: 0xFF, A: 0xFF})

	if got := c.At(1, 2).(color.RGBA); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Fatalf("At(1,2) = %v", got)
	}
	if got := c.At(9, 9).(color.RGBA); got != (color.RGBA{}) {
		t.Fatalf("At out of bounds = %v", got)
	}
	if w, h := c.Size(); w != 4 || h != 4 {
		t.Fatalf("Size = %d,%d", w, h)
	}
}
