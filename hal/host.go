//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	status StatusLight
	fb     *MemFramebuffer
	out    Framebuffer
	clock  Clock
}

// New returns a host HAL implementation.
func New(opt Options) HAL {
	opt = opt.withDefaults()
	logger := &hostLogger{w: os.Stdout}
	fb, out := opt.framebuffer()
	return &hostHAL{
		logger: logger,
		status: newHostStatus(logger, opt),
		fb:     fb,
		out:    out,
		clock:  NewClock(nil),
	}
}

func (h *hostHAL) Logger() Logger      { return h.logger }
func (h *hostHAL) Status() StatusLight { return h.status }
func (h *hostHAL) Display() Display    { return hostDisplay{fb: h.out} }
func (h *hostHAL) Clock() Clock        { return h.clock }

type hostDisplay struct {
	fb Framebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(b)
	_, _ = l.w.Write([]byte{'\n'})
}

// logStatus reports status changes on the log instead of a light.
type logStatus struct {
	mu     sync.Mutex
	logger Logger
	last   Status
	seen   bool
}

func (s *logStatus) SetStatus(st Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seen && s.last == st {
		return
	}
	s.last = st
	s.seen = true
	r, g, b := st.RGB()
	s.logger.WriteLineString(fmt.Sprintf("status: %s (#%02x%02x%02x)", st, r, g, b))
}
