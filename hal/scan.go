package hal

import "runtime"

// scanner is a multiplexed panel that only lights while it is refreshed.
type scanner interface {
	Display() error
}

// scanPanel refreshes p until stop is closed. Each pass shows one row group
// and bit plane, so the panel goes dark as soon as passes stop. Only the
// first failure is logged.
func scanPanel(p scanner, stop <-chan struct{}, log Logger) {
	failed := false
	for {
		select {
		case <-stop:
			return
		default:
		}
		if err := p.Display(); err != nil && !failed {
			failed = true
			if log != nil {
				log.WriteLineString("panel: scan: " + err.Error())
			}
		}
		runtime.Gosched()
	}
}
