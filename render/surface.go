// Package render draws clock frames onto a hal.Framebuffer.
package render

import (
	"errors"
	"fmt"
	"reflect"

	"matrixclock/face"
	"matrixclock/fonts"
	"matrixclock/hal"
)

var ErrNoFramebuffer = errors.New("render: no framebuffer")

// Surface shows face.Frames with a single font.
type Surface struct {
	fb     hal.Framebuffer
	canvas Canvas
	font   fonts.Face
}

// NewSurface returns a surface over the display's framebuffer.
func NewSurface(d hal.Display, f fonts.Face) (*Surface, error) {
	if d == nil {
		return nil, ErrNoFramebuffer
	}
	fb := d.Framebuffer()
	if isNil(fb) {
		return nil, ErrNoFramebuffer
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("render: unsupported pixel format %d", fb.Format())
	}
	w, h := fb.Width(), fb.Height()
	if w <= 0 || h <= 0 || fb.StrideBytes() < w*2 || len(fb.Buffer()) < fb.StrideBytes()*h {
		return nil, fmt.Errorf("%w: %dx%d with %d bytes", ErrNoFramebuffer, w, h, len(fb.Buffer()))
	}
	return &Surface{fb: fb, canvas: NewCanvas(fb), font: f}, nil
}

// isNil also catches a nil pointer stored in the interface.
func isNil(fb hal.Framebuffer) bool {
	if fb == nil {
		return true
	}
	v := reflect.ValueOf(fb)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Width and Height are the surface size in pixels.
func (s *Surface) Width() int  { return s.fb.Width() }
func (s *Surface) Height() int { return s.fb.Height() }

// Font is the face used for every glyph. It doubles as the layout metrics.
func (s *Surface) Font() fonts.Face { return s.font }

// Show replaces the whole picture with f. Each glyph's Y is the vertical
// center of the text, so the baseline sits half an ascent below it.
func (s *Surface) Show(f face.Frame) error {
	bg := f.Background
	s.fb.ClearRGB(bg.R, bg.G, bg.B)
	half := s.font.Ascent() / 2
	for _, g := range f.Glyphs {
		if g.Color == bg {
			continue
		}
		s.font.DrawGlyph(s.canvas, g.X, g.Y+half, g.Char, g.Color)
	}
	if err := s.fb.Present(); err != nil {
		return fmt.Errorf("render: present: %w", err)
	}
	return nil
}
