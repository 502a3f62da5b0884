package hal

import (
	"errors"
	"time"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Contents are retained between presents; callers redraw what they need.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Status is the network state shown on the status light.
type Status uint8

const (
	StatusIdle Status = iota
	StatusConnecting
	StatusOK
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusConnecting:
		return "connecting"
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// RGB returns the indicator color for s.
func (s Status) RGB() (r, g, b uint8) {
	switch s {
	case StatusConnecting:
		return 0, 0, 100
	case StatusOK:
		return 0, 100, 0
	case StatusError:
		return 100, 0, 0
	default:
		return 0, 0, 0
	}
}

// StatusLight reflects network state. Writes are best-effort.
type StatusLight interface {
	SetStatus(s Status)
}

// Clock is the local wall clock.
//
// Set adjusts the clock so that Now continues from t; it never touches the
// host system clock.
type Clock interface {
	Now() time.Time
	Set(t time.Time)
}

// HAL provides the only contact point between the clock and the outside world.
type HAL interface {
	Logger() Logger
	Status() StatusLight
	Display() Display
	Clock() Clock
}

type nullStatus struct{}

func (nullStatus) SetStatus(Status) {}
