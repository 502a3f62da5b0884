package render

import (
	"image"
	"image/color"

	"matrixclock/hal"
)

// Canvas draws into an RGB565 hal.Framebuffer. It satisfies both
// drivers.Displayer and draw.Image so tinyfont and x/image can draw on it.
// Pixels outside the framebuffer are dropped.
type Canvas struct {
	fb hal.Framebuffer
}

// NewCanvas wraps fb. Only RGB565 framebuffers are drawn on.
func NewCanvas(fb hal.Framebuffer) Canvas { return Canvas{fb: fb} }

func (c Canvas) Size() (x, y int16) {
	if c.fb == nil {
		return 0, 0
	}
	return int16(c.fb.Width()), int16(c.fb.Height())
}

func (c Canvas) SetPixel(x, y int16, col color.RGBA) {
	off, ok := c.offset(int(x), int(y))
	if !ok {
		return
	}
	buf := c.fb.Buffer()
	p := hal.RGB565(col.R, col.G, col.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

// Display is a no-op; the surface presents the framebuffer once per frame.
func (c Canvas) Display() error { return nil }

func (c Canvas) ColorModel() color.Model { return color.RGBAModel }

func (c Canvas) Bounds() image.Rectangle {
	if c.fb == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, c.fb.Width(), c.fb.Height())
}

func (c Canvas) At(x, y int) color.Color {
	off, ok := c.offset(x, y)
	if !ok {
		return color.RGBA{}
	}
	buf := c.fb.Buffer()
	r, g, b := hal.RGB888From565(uint16(buf[off]) | uint16(buf[off+1])<<8)
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (c Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(int16(x), int16(y), color.RGBAModel.Convert(col).(color.RGBA))
}

func (c Canvas) offset(x, y int) (int, bool) {
	if c.fb == nil || c.fb.Format() != hal.PixelFormatRGB565 {
		return 0, false
	}
	if x < 0 || x >= c.fb.Width() || y < 0 || y >= c.fb.Height() {
		return 0, false
	}
	off := y*c.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(c.fb.Buffer()) {
		return 0, false
	}
	return off, true
}
