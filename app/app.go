// Package app wires the clock together on top of a hal.HAL.
package app

import (
	"context"
	"fmt"

	"matrixclock/driver"
	"matrixclock/fonts"
	"matrixclock/hal"
	"matrixclock/internal/buildinfo"
	"matrixclock/internal/config"
	"matrixclock/render"
)

// Build assembles a driver from cfg. Any error is a startup fault.
func Build(h hal.HAL, cfg config.Config) (*driver.Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	font, err := fonts.ByName(cfg.FontName())
	if err != nil {
		return nil, err
	}
	surface, err := render.NewSurface(h.Display(), font)
	if err != nil {
		return nil, err
	}
	painter, err := cfg.Painter()
	if err != nil {
		return nil, err
	}

	layout := cfg.Layout()
	layout.Width, layout.Height = surface.Width(), surface.Height()

	return driver.New(driver.Config{
		Clock:        h.Clock(),
		Surface:      surface,
		Metrics:      font,
		Syncer:       newSyncer(h, cfg),
		Painter:      painter,
		Logger:       h.Logger(),
		Layout:       layout,
		Blink:        cfg.Blink,
		Debug:        cfg.Debug,
		Tick:         cfg.Tick,
		SyncInterval: cfg.SyncInterval,
	})
}

// New returns a step function for frame-driven runners. A startup fault is
// painted on the display and returned from every step.
func New(ctx context.Context, h hal.HAL, cfg config.Config) func() error {
	logStart(h, cfg)
	d, err := Build(h, cfg)
	if err != nil {
		showFault(h, err)
		return func() error { return err }
	}
	return func() error { return d.Step(ctx) }
}

// Run drives the clock until ctx is done. On a startup fault it paints the
// fault and blocks, since there is nothing else a device can do.
func Run(ctx context.Context, h hal.HAL, cfg config.Config) error {
	logStart(h, cfg)
	d, err := Build(h, cfg)
	if err != nil {
		showFault(h, err)
		<-ctx.Done()
		return err
	}
	return d.Run(ctx)
}

func logStart(h hal.HAL, cfg config.Config) {
	l := h.Logger()
	if l == nil {
		return
	}
	l.WriteLineString(buildinfo.Banner())
	if tz := cfg.TimeSync.Timezone; tz != "" {
		l.WriteLineString("time will be set for " + tz)
	}
}
