//go:build tinygo && baremetal && hub75

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hub75"
)

// HUB75 wiring for a panel whose colour lines are chained onto SPI0 SDO.
const (
	hub75LAT machine.Pin = 11
	hub75OE  machine.Pin = 12
	hub75A   machine.Pin = 6
	hub75B   machine.Pin = 10
	hub75C   machine.Pin = 18
	hub75D   machine.Pin = 20
)

// newBoardPanel configures a 64x32 1/16-scan HUB75 panel and keeps it
// refreshed from its own goroutine.
func newBoardPanel(log Logger) drivers.Displayer {
	machine.SPI0.Configure(machine.SPIConfig{Frequency: 8000000, Mode: 0})

	dev := hub75.New(machine.SPI0, hub75LAT, hub75OE, hub75A, hub75B, hub75C, hub75D)
	panel := &dev
	panel.Configure(hub75.Config{Width: 64, Height: 32, RowPattern: 16, ColorDepth: 6})
	panel.ClearDisplay()
	panel.SetBrightness(100)

	go scanPanel(panel, nil, log)
	log.WriteLineString("panel: hub75 64x32")
	return panel
}
