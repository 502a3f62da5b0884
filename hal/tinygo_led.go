//go:build tinygo && baremetal && !(matrixportal_m4 || metro_m4_airlift || feather_m4 || itsybitsy_m4 || qtpy_rp2040)

package hal

import "machine"

func newBoardStatus(log Logger) StatusLight {
	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	st, err := NewPinStatus(newLEDPin("LED", &pinLED{pin: ledPin}), log)
	if err != nil {
		return nullStatus{}
	}
	return st
}
