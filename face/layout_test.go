package face

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// fixedMetrics gives every digit width digit and the colon width colon.
type fixedMetrics struct{ digit, colon int }

func (m fixedMetrics) Advance(r rune) int {
	if r == ':' {
		return m.colon
	}
	return m.digit
}

var (
	red   = Hex(0xCC0000)
	green = Hex(0x00FF00)
	blue  = Hex(0x0000FF)
	pink  = Hex(0xE80064)
	white = Hex(0xFFFFFF)

	testColors = Colors{HourTens: red, HourOnes: green, Colon: blue, MinuteTens: pink, MinuteOnes: white}
)

func TestLayoutLeft(t *testing.T) {
	r := Format(TimeOfDay{Hour: 22, Minute: 45}, true, true)
	got := Layout(r, testColors, fixedMetrics{12, 5}, LayoutOptions{Width: 64, Height: 32, Margin: 2})
	want := []Glyph{
		{Char: '1', Color: red, X: 2, Y: 16, Width: 12},
		{Char: '0', Color: green, X: 14, Y: 16, Width: 12},
		{Char: ':', Color: blue, X: 26, Y: 16, Width: 5},
		{Char: '4', Color: pink, X: 31, Y: 16, Width: 12},
		{Char: '5', Color: white, X: 43, Y: 16, Width: 12},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Layout mismatch (-want +got):\n%s", diff)
	}
}

func TestLayoutLeftSingleHour(t *testing.T) {
	r := Format(TimeOfDay{Hour: 13, Minute: 0}, true, true)
	got := Layout(r, testColors, fixedMetrics{12, 5}, LayoutOptions{Width: 64, Height: 32})
	if len(got) != 4 {
		t.Fatalf("got %d glyphs, want 4", len(got))
	}
	if got[0].Char != '1' || got[0].X != 0 || got[0].Color != green {
		t.Fatalf("first glyph = %+v", got[0])
	}
	if got[1].Char != ':' || got[1].X != 12 {
		t.Fatalf("colon = %+v", got[1])
	}
}

func TestLayoutAdjacent(t *testing.T) {
	m := proportional{}
	for _, align := range []Alignment{AlignLeft, AlignCenter} {
		for h := 0; h < 24; h++ {
			r := Format(TimeOfDay{Hour: h, Minute: 17}, false, true)
			gs := Layout(r, testColors, m, LayoutOptions{Width: 64, Height: 32, Align: align, Margin: 2})
			for i := 1; i < len(gs); i++ {
				if gs[i].X != gs[i-1].X+gs[i-1].Width {
					t.Fatalf("%v hour %d: glyph %d at %d, want %d", align, h, i, gs[i].X, gs[i-1].X+gs[i-1].Width)
				}
			}
			for _, g := range gs {
				if g.Y != 16 {
					t.Fatalf("glyph %q y = %d, want 16", g.Char, g.Y)
				}
				if g.Width != m.Advance(g.Char) {
					t.Fatalf("glyph %q width = %d", g.Char, g.Width)
				}
			}
		}
	}
}

// proportional makes '1' narrower than the other digits.
type proportional struct{}

func (proportional) Advance(r rune) int {
	switch r {
	case ':':
		return 4
	case '1':
		return 7
	}
	return 11
}

func TestLayoutCentered(t *testing.T) {
	tests := []struct {
		width, colon int
		wantX        int
	}{
		{64, 5, 30},
		{64, 4, 30},
		{63, 4, 30},
		{32, 3, 15},
	}
	for _, tt := range tests {
		r := Format(TimeOfDay{Hour: 10, Minute: 10}, false, false)
		gs := Layout(r, testColors, fixedMetrics{6, tt.colon}, LayoutOptions{Width: tt.width, Height: 8, Align: AlignCenter})
		c := gs[2]
		if c.Char != ':' {
			t.Fatalf("glyph 2 = %q, want colon", c.Char)
		}
		if c.X != tt.wantX {
			t.Errorf("width %d colon %d: x = %d, want %d", tt.width, tt.colon, c.X, tt.wantX)
		}
		center := float64(tt.width)/2 - float64(tt.colon)/2
		if d := float64(c.X) - center; d < -1 || d > 1 {
			t.Errorf("width %d: colon x %d is %v from center", tt.width, c.X, d)
		}
		if gs[1].X+gs[1].Width != c.X || gs[3].X != c.X+c.Width {
			t.Errorf("neighbours not touching colon: %+v", gs)
		}
	}
}

func TestLayoutRemeasures(t *testing.T) {
	r := Format(TimeOfDay{Hour: 4, Minute: 4}, false, true)
	a := Layout(r, testColors, fixedMetrics{5, 1}, LayoutOptions{Width: 64, Height: 32})
	b := Layout(r, testColors, fixedMetrics{9, 3}, LayoutOptions{Width: 64, Height: 32})
	if a[len(a)-1].X == b[len(b)-1].X {
		t.Fatalf("last glyph x unchanged after metrics change: %d", a[len(a)-1].X)
	}
}

func TestParseAlignment(t *testing.T) {
	if a, err := ParseAlignment("center"); err != nil || a != AlignCenter {
		t.Fatalf("center = %v, %v", a, err)
	}
	if _, err := ParseAlignment("right"); err == nil {
		t.Fatal("right: want error")
	}
}
