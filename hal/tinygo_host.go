//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"runtime"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	status StatusLight
	fb     Framebuffer
	clock  Clock
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU pin mapping.
// The status light is a virtual LED that logs its level.
func New(opt Options) HAL {
	opt = opt.withDefaults()
	l := &tinyGoHostLogger{}
	_, fb := opt.framebuffer()
	var status StatusLight = nullStatus{}
	if st, err := NewPinStatus(newLEDPin("LED", &tinyGoHostLED{logger: l}), l); err == nil {
		status = st
	}
	return &tinyGoHostHAL{
		logger: l,
		status: status,
		fb:     fb,
		clock:  NewClock(nil),
	}
}

func (h *tinyGoHostHAL) Logger() Logger      { return h.logger }
func (h *tinyGoHostHAL) Status() StatusLight { return h.status }
func (h *tinyGoHostHAL) Display() Display    { return tinyGoHostDisplay{fb: h.fb} }
func (h *tinyGoHostHAL) Clock() Clock        { return h.clock }

type tinyGoHostDisplay struct {
	fb Framebuffer
}

func (d tinyGoHostDisplay) Framebuffer() Framebuffer { return d.fb }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() {
	l.on = true
	l.logger.WriteLineString(fmt.Sprintf("led: HIGH (tinygo/%s)", runtime.GOOS))
}

func (l *tinyGoHostLED) Low() {
	l.on = false
	l.logger.WriteLineString(fmt.Sprintf("led: LOW (tinygo/%s)", runtime.GOOS))
}
