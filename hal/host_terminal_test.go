//go:build !tinygo

package hal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDrawHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Fini()
	s.SetSize(4, 4)

	fb := NewMemFramebuffer(2, 3)
	fb.ClearRGB(0, 0, 0)
	red := RGB565(0xFF, 0, 0)
	// (1, 2): lower half of text row 1 has no partner pixel.
	off := 2*fb.StrideBytes() + 1*2
	fb.Buffer()[off] = byte(red)
	fb.Buffer()[off+1] = byte(red >> 8)

	drawHalfBlocks(s, fb.Buffer(), 2, 3)

	mainc, _, style, _ := s.GetContent(1, 1)
	if mainc != '▀' {
		t.Fatalf("cell rune = %q, want ▀", mainc)
	}
	fg, bg, _ := style.Decompose()
	if r, _, _ := fg.RGB(); r != 0xFF {
		t.Fatalf("fg red = %d, want 255", r)
	}
	if bg != tcell.ColorBlack {
		t.Fatalf("bg = %v, want black", bg)
	}
}

func TestLastLine(t *testing.T) {
	var l lastLine
	_, _ = l.Write([]byte("first\nsec"))
	if got := l.String(); got != "first" {
		t.Fatalf("got %q, want first", got)
	}
	_, _ = l.Write([]byte("ond\n"))
	if got := l.String(); got != "second" {
		t.Fatalf("got %q, want second", got)
	}
}
