package app

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"matrixclock/fonts/font6x8"
	"matrixclock/hal"
	"matrixclock/render"

	"tinygo.org/x/tinyfont"
)

const (
	faultCellW    = 6
	faultCellH    = 8
	faultBaseline = 7
)

// showFault logs err and paints it in black on white, wrapped to the panel
// width. Text that does not fit is cut off.
func showFault(h hal.HAL, err error) {
	lines := []string{"fault:"}
	for _, l := range strings.Split(err.Error(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if l := h.Logger(); l != nil {
		for _, line := range lines {
			l.WriteLineString("clock: " + line)
		}
	}

	disp := h.Display()
	if disp == nil {
		return
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	c := render.NewCanvas(fb)
	fg := color.RGBA{A: 255}
	cols := fb.Width() / faultCellW
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+faultCellH > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			x := 0
			for _, r := range chunk {
				tinyfont.DrawChar(c, font6x8.Font, int16(x), int16(y+faultBaseline), r, fg)
				x += faultCellW
			}
			y += faultCellH
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
