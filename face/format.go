// Package face computes what a clock face shows: the glyphs for a time of
// day, the color each glyph takes from a rotating palette, and where each
// glyph sits on the panel.
package face

import "fmt"

// TimeOfDay is a wall-clock reading. Values are trusted to be in range.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// HourDigits selects how many hour glyphs are emitted.
type HourDigits uint8

const (
	// HoursAuto omits the tens glyph for 1-9.
	HoursAuto HourDigits = iota
	// HoursPadded always emits two hour glyphs, with a leading '0'.
	HoursPadded
)

// Reading is a time of day reduced to the digits a 12-hour face shows.
type Reading struct {
	DisplayHour int // 1-12
	HourTens    int
	HourOnes    int
	// HasTens is true for 10, 11 and 12 only.
	HasTens      bool
	MinuteTens   int
	MinuteOnes   int
	ColonVisible bool
}

// DisplayHour converts a 0-23 hour to the 1-12 range.
func DisplayHour(hour int) int {
	switch {
	case hour > 12:
		return hour - 12
	case hour == 0:
		return 12
	default:
		return hour
	}
}

// Format reduces t to display digits.
//
// With blink enabled the colon shows on odd seconds or when forced. With
// blink disabled it always shows.
func Format(t TimeOfDay, forceColon, blink bool) Reading {
	h := DisplayHour(t.Hour)
	return Reading{
		DisplayHour:  h,
		HourTens:     h / 10,
		HourOnes:     h % 10,
		HasTens:      h >= 10,
		MinuteTens:   t.Minute / 10,
		MinuteOnes:   t.Minute % 10,
		ColonVisible: !blink || forceColon || t.Second%2 == 1,
	}
}

// Runes returns the glyph characters in visual order.
func (r Reading) Runes(mode HourDigits) []rune {
	out := make([]rune, 0, 5)
	if r.HasTens || mode == HoursPadded {
		out = append(out, rune('0'+r.HourTens))
	}
	return append(out,
		rune('0'+r.HourOnes),
		':',
		rune('0'+r.MinuteTens),
		rune('0'+r.MinuteOnes),
	)
}
