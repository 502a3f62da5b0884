//go:build !tinygo && !(linux && rpio)

package hal

func newHostStatus(logger Logger, opt Options) StatusLight {
	_ = opt
	return &logStatus{logger: logger}
}
