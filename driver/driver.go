// Package driver runs the clock: boot, a tick every second, and an hourly
// time sync that is retried on every tick until it succeeds.
package driver

import (
	"context"
	"fmt"
	"time"

	"matrixclock/face"
	"matrixclock/hal"
)

// Syncer sets the local clock from a network time service.
type Syncer interface {
	Sync(ctx context.Context) error
}

// Surface displays frames and measures glyphs.
type Surface interface {
	Show(face.Frame) error
	Width() int
	Height() int
}

// State is the driver lifecycle.
type State uint8

const (
	Booting State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "booting"
}

const (
	DefaultTick         = time.Second
	DefaultSyncInterval = time.Hour
)

// Config holds everything the driver needs.
type Config struct {
	Clock   hal.Clock
	Surface Surface
	Metrics face.Metrics
	// Syncer may be nil; the clock then free-runs and never syncs.
	Syncer  Syncer
	Painter *face.Painter
	Logger  hal.Logger

	Layout       face.LayoutOptions
	Blink        bool
	Debug        bool
	Tick         time.Duration
	SyncInterval time.Duration

	// Monotonic is the time base for tick and sync scheduling. It must not
	// follow adjustments made by Syncer. Defaults to time.Now.
	Monotonic func() time.Time
}

// Driver is the clock's state machine. It is not safe for concurrent use.
type Driver struct {
	cfg   Config
	state State

	synced   bool
	lastSync time.Time
	lastTick time.Time
}

// New validates cfg and returns a driver in the Booting state.
func New(cfg Config) (*Driver, error) {
	switch {
	case cfg.Clock == nil:
		return nil, fmt.Errorf("driver: clock is required")
	case cfg.Surface == nil:
		return nil, fmt.Errorf("driver: surface is required")
	case cfg.Metrics == nil:
		return nil, fmt.Errorf("driver: metrics are required")
	case cfg.Painter == nil:
		return nil, fmt.Errorf("driver: painter is required")
	}
	if cfg.Tick <= 0 {
		cfg.Tick = DefaultTick
	}
	if cfg.SyncInterval <= 0 {
		cfg.SyncInterval = DefaultSyncInterval
	}
	if cfg.Monotonic == nil {
		cfg.Monotonic = time.Now
	}
	if cfg.Layout.Width == 0 {
		cfg.Layout.Width = cfg.Surface.Width()
	}
	if cfg.Layout.Height == 0 {
		cfg.Layout.Height = cfg.Surface.Height()
	}
	return &Driver{cfg: cfg}, nil
}

// State reports the lifecycle state.
func (d *Driver) State() State { return d.state }

// Synced reports whether a sync has ever succeeded.
func (d *Driver) Synced() bool { return d.synced }

// Boot shows the local time with the colon forced on and enters Running.
func (d *Driver) Boot() {
	if d.state != Booting {
		return
	}
	d.logf("clock: boot")
	if d.cfg.Syncer == nil {
		d.logf("clock: no time source, free running")
	}
	d.render(true)
	d.state = Running
	d.lastTick = d.cfg.Monotonic()
}

// Tick runs one clock period: a sync when one is due, then a normal render.
// Sync errors are logged and never returned.
func (d *Driver) Tick(ctx context.Context) {
	if d.state == Booting {
		d.Boot()
	}
	if d.syncDue() {
		d.render(true)
		if err := d.cfg.Syncer.Sync(ctx); err != nil {
			d.logf("sync failed, retrying: %v", err)
		} else {
			d.synced = true
			d.lastSync = d.cfg.Monotonic()
		}
	}
	d.render(false)
	d.cfg.Painter.Rendered()
	d.lastTick = d.cfg.Monotonic()
}

// Step is for frame-driven runners that call in far more often than once a
// tick. It boots on the first call and ticks once a tick period has passed.
func (d *Driver) Step(ctx context.Context) error {
	if d.state == Booting {
		d.Boot()
		d.Tick(ctx)
		return nil
	}
	if d.cfg.Monotonic().Sub(d.lastTick) >= d.cfg.Tick {
		d.Tick(ctx)
	}
	return ctx.Err()
}

// Run boots, then ticks on every whole tick boundary of the wall clock until
// ctx is done.
func (d *Driver) Run(ctx context.Context) error {
	d.Boot()
	for {
		d.Tick(ctx)
		wait := d.cfg.Tick - time.Duration(d.cfg.Clock.Now().UnixNano())%d.cfg.Tick
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (d *Driver) syncDue() bool {
	if d.cfg.Syncer == nil {
		return false
	}
	if !d.synced {
		return true
	}
	return d.cfg.Monotonic().Sub(d.lastSync) > d.cfg.SyncInterval
}

func (d *Driver) render(forceColon bool) {
	now := d.cfg.Clock.Now()
	h, m, s := now.Clock()
	r := face.Format(face.TimeOfDay{Hour: h, Minute: m, Second: s}, forceColon, d.cfg.Blink)

	if d.cfg.Debug {
		d.logf("Hours is %d and minutes is %d", r.DisplayHour, m)
	}

	colors := d.cfg.Painter.Paint(r)
	glyphs := face.Layout(r, colors, d.cfg.Metrics, d.cfg.Layout)

	if d.cfg.Debug {
		for _, g := range glyphs {
			d.logf("glyph %q width: %d x: %d y: %d", g.Char, g.Width, g.X, g.Y)
		}
	}

	frame := face.Frame{Background: d.cfg.Painter.Palette().Background(), Glyphs: glyphs}
	if err := d.cfg.Surface.Show(frame); err != nil {
		d.logf("clock: show: %v", err)
	}
}

func (d *Driver) logf(format string, args ...any) {
	if d.cfg.Logger == nil {
		return
	}
	d.cfg.Logger.WriteLineString(fmt.Sprintf(format, args...))
}
