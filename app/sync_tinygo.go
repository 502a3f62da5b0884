//go:build tinygo

package app

import (
	"matrixclock/driver"
	"matrixclock/hal"
	"matrixclock/internal/config"
)

// Boards have no network stack here, so the clock free-runs from the
// board's own time.
func newSyncer(_ hal.HAL, _ config.Config) driver.Syncer {
	return nil
}
