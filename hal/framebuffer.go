package hal

import "sync"

// MemFramebuffer is an in-memory RGB565 framebuffer.
//
// Present only bumps a counter; runners copy the pixels out with Snapshot.
type MemFramebuffer struct {
	mu       sync.Mutex
	width    int
	height   int
	stride   int
	buf      []byte
	presents uint64
}

// NewMemFramebuffer allocates a width x height RGB565 framebuffer.
func NewMemFramebuffer(width, height int) *MemFramebuffer {
	stride := width * 2
	return &MemFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presents++
	return nil
}

// Presents returns how many frames have been presented.
func (f *MemFramebuffer) Presents() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := RGB565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

// PixelRGB returns the color at (x, y), or black when out of range.
func (f *MemFramebuffer) PixelRGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0
	}
	off := y*f.stride + x*2
	return RGB888From565(uint16(f.buf[off]) | uint16(f.buf[off+1])<<8)
}

// Snapshot copies the raw RGB565 bytes into dst.
func (f *MemFramebuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
