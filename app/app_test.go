package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"matrixclock/fonts"
	"matrixclock/hal"
	"matrixclock/internal/config"
)

type testHAL struct {
	log   *lineLog
	fb    *hal.MemFramebuffer
	clock hal.Clock
}

type lineLog struct{ lines []string }

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }
func (l *lineLog) String() string           { return strings.Join(l.lines, "\n") }

type testDisplay struct{ fb hal.Framebuffer }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type noStatus struct{}

func (noStatus) SetStatus(hal.Status) {}

func newTestHAL() *testHAL {
	return &testHAL{
		log:   &lineLog{},
		fb:    hal.NewMemFramebuffer(64, 32),
		clock: hal.NewClock(func() time.Time { return time.Date(2024, 5, 1, 22, 45, 1, 0, time.UTC) }),
	}
}

func (h *testHAL) Logger() hal.Logger      { return h.log }
func (h *testHAL) Status() hal.StatusLight { return noStatus{} }
func (h *testHAL) Display() hal.Display    { return testDisplay{h.fb} }
func (h *testHAL) Clock() hal.Clock        { return h.clock }

func TestNewRunsClock(t *testing.T) {
	h := newTestHAL()
	step := New(context.Background(), h, config.Default())
	if err := step(); err != nil {
		t.Fatal(err)
	}
	if h.fb.Presents() != 3 {
		t.Fatalf("presents = %d, want boot, sync and tick frames", h.fb.Presents())
	}
	log := h.log.String()
	for _, want := range []string{"matrix clock ", "sync failed, retrying: timesync: username and key are required"} {
		if !strings.Contains(log, want) {
			t.Fatalf("log missing %q:\n%s", want, log)
		}
	}

	var lit int
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			if r, g, b := h.fb.PixelRGB(x, y); r|g|b != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatal("clock face is blank")
	}
}

func TestNewShowsFault(t *testing.T) {
	h := newTestHAL()
	cfg := config.Default()
	cfg.Font = "comic"

	step := New(context.Background(), h, cfg)
	err := step()
	if !errors.Is(err, fonts.ErrUnknownFont) {
		t.Fatalf("step = %v, want ErrUnknownFont", err)
	}
	if h.fb.Presents() != 1 {
		t.Fatalf("presents = %d, want 1", h.fb.Presents())
	}
	if r, g, b := h.fb.PixelRGB(63, 31); r != 255 || g != 255 || b != 255 {
		t.Fatalf("fault background = %02x%02x%02x, want white", r, g, b)
	}
	var dark int
	for y := 0; y < 8; y++ {
		for x := 0; x < 64; x++ {
			if r, _, _ := h.fb.PixelRGB(x, y); r == 0 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatal("fault text not drawn")
	}
	if !strings.Contains(h.log.String(), "clock: fault:") {
		t.Fatalf("log = %s", h.log)
	}
}

func TestRunReturnsOnCancel(t *testing.T) {
	h := newTestHAL()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := Run(ctx, h, config.Default()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run = %v", err)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in, prefix, rest string
		n                int
	}{
		{"hello world", "hello", " world", 5},
		{"abc", "abc", "", 5},
		{"ääää", "ää", "ää", 2},
		{"", "", "", 3},
	}
	for _, tt := range tests {
		p, r := takeRunes(tt.in, tt.n)
		if p != tt.prefix || r != tt.rest {
			t.Errorf("takeRunes(%q, %d) = %q, %q", tt.in, tt.n, p, r)
		}
	}
}
