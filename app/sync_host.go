//go:build !tinygo

package app

import (
	"matrixclock/driver"
	"matrixclock/hal"
	"matrixclock/internal/config"
	"matrixclock/timesync"
)

func newSyncer(h hal.HAL, cfg config.Config) driver.Syncer {
	ts := cfg.TimeSync
	return timesync.New(timesync.Config{
		BaseURL:  ts.URL,
		Username: ts.Username,
		Key:      ts.Key,
		Timezone: ts.Timezone,
		Timeout:  ts.Timeout,
	}, h.Clock(), h.Status())
}
