package hal

import "tinygo.org/x/drivers"

// Options selects the panel geometry, an optional panel driver and an
// optional status pin.
type Options struct {
	Width  int
	Height int

	// Panel receives every presented frame when set. Its Size overrides
	// Width and Height.
	Panel drivers.Displayer

	// StatusPin is the BCM pin number of a status LED (rpio builds only).
	// Zero disables it.
	StatusPin int
}

func (o Options) withDefaults() Options {
	if o.Panel != nil {
		w, h := o.Panel.Size()
		o.Width, o.Height = int(w), int(h)
	}
	if o.Width <= 0 {
		o.Width = 64
	}
	if o.Height <= 0 {
		o.Height = 32
	}
	return o
}

// framebuffer returns the memory framebuffer runners read from and the
// framebuffer handed to the clock, which may forward to the panel.
func (o Options) framebuffer() (*MemFramebuffer, Framebuffer) {
	mem := NewMemFramebuffer(o.Width, o.Height)
	if o.Panel == nil {
		return mem, mem
	}
	return mem, &PanelFramebuffer{MemFramebuffer: mem, panel: o.Panel}
}
