//go:build tinygo

package main

import (
	"context"

	"matrixclock/app"
	"matrixclock/hal"
	"matrixclock/internal/config"
)

func main() {
	cfg := config.Default()
	h := hal.New(hal.Options{Width: cfg.Width, Height: cfg.Height})
	_ = app.Run(context.Background(), h, cfg)
}
