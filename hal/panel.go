package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// PanelFramebuffer forwards presented frames to a TinyGo display driver.
//
// Only pixels that changed since the previous present are written.
type PanelFramebuffer struct {
	*MemFramebuffer
	panel drivers.Displayer
	shown []byte
}

// NewPanelFramebuffer allocates a framebuffer sized to panel.
func NewPanelFramebuffer(panel drivers.Displayer) *PanelFramebuffer {
	w, h := panel.Size()
	return &PanelFramebuffer{MemFramebuffer: NewMemFramebuffer(int(w), int(h)), panel: panel}
}

func (f *PanelFramebuffer) Present() error {
	f.mu.Lock()
	if f.shown == nil {
		f.shown = make([]byte, len(f.buf))
		for i := range f.shown {
			f.shown[i] = ^f.buf[i]
		}
	}
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			off := y*f.stride + x*2
			if f.buf[off] == f.shown[off] && f.buf[off+1] == f.shown[off+1] {
				continue
			}
			f.shown[off], f.shown[off+1] = f.buf[off], f.buf[off+1]
			r, g, b := RGB888From565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
			f.panel.SetPixel(int16(x), int16(y), color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	f.presents++
	f.mu.Unlock()
	return f.panel.Display()
}
