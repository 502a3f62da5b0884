//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal draws the framebuffer in the terminal using half-block cells,
// two matrix rows per text row. The last log line is shown underneath.
// It returns when ctx is done or the user presses q, Esc or Ctrl-C.
func RunTerminal(ctx context.Context, opt Options, newApp func(HAL) func() error) error {
	h := New(opt).(*hostHAL)
	tail := &lastLine{}
	h.logger.w = tail

	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			if k, ok := ev.(*tcell.EventKey); ok {
				if k.Key() == tcell.KeyEscape || k.Key() == tcell.KeyCtrlC || k.Rune() == 'q' {
					cancel()
					return
				}
			}
		}
	}()

	step := newApp(h)
	scratch := make([]byte, len(h.fb.buf))

	t := time.NewTicker(100 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.Canceled {
				return nil
			}
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			h.fb.Snapshot(scratch)
			drawHalfBlocks(s, scratch, h.fb.width, h.fb.height)
			drawText(s, 0, (h.fb.height+1)/2+1, tail.String())
			s.Show()
		}
	}
}

// drawHalfBlocks renders RGB565 pixels as '▀' cells: the upper pixel is the
// foreground, the lower one the background.
func drawHalfBlocks(s tcell.Screen, pix []byte, width, height int) {
	at := func(x, y int) tcell.Color {
		if y >= height {
			return tcell.ColorBlack
		}
		off := (y*width + x) * 2
		r, g, b := RGB888From565(uint16(pix[off]) | uint16(pix[off+1])<<8)
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			style := tcell.StyleDefault.Foreground(at(x, y)).Background(at(x, y+1))
			s.SetContent(x, y/2, '▀', nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string) {
	w, _ := s.Size()
	for i := x; i < w; i++ {
		s.SetContent(i, y, ' ', nil, tcell.StyleDefault)
	}
	for _, r := range text {
		if x >= w {
			return
		}
		s.SetContent(x, y, r, nil, tcell.StyleDefault)
		x++
	}
}

// lastLine keeps the most recent complete log line.
type lastLine struct {
	mu   sync.Mutex
	line []byte
	part []byte
}

func (l *lastLine) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.part = append(l.part, p...)
	for {
		i := bytes.IndexByte(l.part, '\n')
		if i < 0 {
			break
		}
		l.line = append(l.line[:0], l.part[:i]...)
		l.part = l.part[i+1:]
	}
	return len(p), nil
}

func (l *lastLine) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return string(l.line)
}
