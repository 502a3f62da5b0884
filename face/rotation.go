package face

import "fmt"

// RotationPolicy decides when the palette rotates.
type RotationPolicy uint8

const (
	// RotateOnBlinkOn rotates once in each render that shows the colon while
	// blinking, before colors are assigned.
	RotateOnBlinkOn RotationPolicy = iota
	// RotateOnFixedInterval rotates after every N normal renders.
	RotateOnFixedInterval
	RotateNever
)

func (p RotationPolicy) String() string {
	switch p {
	case RotateOnBlinkOn:
		return "blink"
	case RotateOnFixedInterval:
		return "interval"
	case RotateNever:
		return "never"
	}
	return fmt.Sprintf("RotationPolicy(%d)", uint8(p))
}

// ParseRotationPolicy accepts "blink", "interval" and "never".
func ParseRotationPolicy(s string) (RotationPolicy, error) {
	switch s {
	case "", "blink":
		return RotateOnBlinkOn, nil
	case "interval":
		return RotateOnFixedInterval, nil
	case "never":
		return RotateNever, nil
	}
	return RotateNever, fmt.Errorf("face: unknown rotation policy %q", s)
}

// Slots maps glyph roles to palette indices.
type Slots struct {
	HourTens   int `yaml:"hour_tens"`
	HourOnes   int `yaml:"hour_ones"`
	Colon      int `yaml:"colon"`
	MinuteTens int `yaml:"minute_tens"`
	MinuteOnes int `yaml:"minute_ones"`
	// SteadyColon is the colon's slot when blinking is off.
	SteadyColon int `yaml:"steady_colon"`
}

// DefaultSlots is the mapping used with the Rainbow palette.
var DefaultSlots = Slots{HourTens: 5, HourOnes: 6, Colon: 7, MinuteTens: 1, MinuteOnes: 2, SteadyColon: 1}

// Colors resolves s against the current state of p. A hidden colon takes
// the background color.
func (s Slots) Colors(p *Palette, r Reading, blink bool) Colors {
	c := Colors{
		HourTens:   p.At(p.Slot(s.HourTens)),
		HourOnes:   p.At(p.Slot(s.HourOnes)),
		Colon:      p.At(p.Slot(s.Colon)),
		MinuteTens: p.At(p.Slot(s.MinuteTens)),
		MinuteOnes: p.At(p.Slot(s.MinuteOnes)),
	}
	switch {
	case !blink:
		c.Colon = p.At(p.Slot(s.SteadyColon))
	case !r.ColonVisible:
		c.Colon = p.Background()
	}
	return c
}

// Painter owns a palette and applies a rotation policy to it, one render at
// a time.
type Painter struct {
	palette *Palette
	slots   Slots
	policy  RotationPolicy
	every   int
	blink   bool
	renders int
}

// NewPainter returns a Painter. every is only used by RotateOnFixedInterval
// and defaults to 2.
func NewPainter(p *Palette, slots Slots, policy RotationPolicy, every int, blink bool) *Painter {
	if every <= 0 {
		every = 2
	}
	return &Painter{palette: p, slots: slots, policy: policy, every: every, blink: blink}
}

// Palette returns the palette being rotated.
func (pt *Painter) Palette() *Palette { return pt.palette }

// Paint picks the colors for r. Under RotateOnBlinkOn the palette rotates
// first whenever the colon is shown while blinking.
func (pt *Painter) Paint(r Reading) Colors {
	if pt.policy == RotateOnBlinkOn && pt.blink && r.ColonVisible {
		pt.palette.Rotate()
	}
	return pt.slots.Colors(pt.palette, r, pt.blink)
}

// Rendered counts a normal render for RotateOnFixedInterval.
func (pt *Painter) Rendered() {
	if pt.policy != RotateOnFixedInterval {
		return
	}
	pt.renders++
	if pt.renders >= pt.every {
		pt.palette.Rotate()
		pt.renders = 0
	}
}
