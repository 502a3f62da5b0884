//go:build tinygo && baremetal && !hub75

package hal

import "tinygo.org/x/drivers"

func newBoardPanel(log Logger) drivers.Displayer {
	log.WriteLineString("panel: none, build with -tags hub75 to drive a matrix")
	return nil
}
