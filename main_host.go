//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"matrixclock/app"
	"matrixclock/hal"
	"matrixclock/internal/config"
)

func main() {
	var (
		configPath string
		headless   hal.HeadlessConfig
		term       bool
		statusPin  int
		blink      bool
		debug      bool
		align      string
		font       string
	)
	flag.StringVar(&configPath, "config", "", "YAML config file.")
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 10, "Step rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.BoolVar(&term, "term", false, "Draw the matrix in the terminal.")
	flag.IntVar(&statusPin, "status-pin", 0, "BCM pin of a status LED (rpio builds only).")
	flag.BoolVar(&blink, "blink", true, "Blink the colon.")
	flag.BoolVar(&debug, "debug", false, "Use the small font and log layout details.")
	flag.StringVar(&align, "align", "", "Glyph alignment: left or center.")
	flag.StringVar(&font, "font", "", "Font: segment, 6x8, proggy or basic.")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fatal(err)
	}
	cfg.ApplyEnv(os.Getenv)
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "blink":
			cfg.Blink = blink
		case "debug":
			cfg.Debug = debug
		case "align":
			cfg.Align = align
		case "font":
			cfg.Font = font
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	opt := hal.Options{Width: cfg.Width, Height: cfg.Height, StatusPin: statusPin}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	newApp := func(h hal.HAL) func() error { return app.New(ctx, h, cfg) }

	switch {
	case headless.Enabled:
		err = hal.RunHeadless(ctx, opt, newApp, headless)
	case term:
		err = hal.RunTerminal(ctx, opt, newApp)
	default:
		err = hal.RunWindow(opt, newApp)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
