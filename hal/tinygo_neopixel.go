//go:build tinygo && baremetal && (matrixportal_m4 || metro_m4_airlift || feather_m4 || itsybitsy_m4 || qtpy_rp2040)

package hal

import "machine"

func newBoardStatus(_ Logger) StatusLight {
	return newNeopixelStatus(machine.NEOPIXEL)
}
