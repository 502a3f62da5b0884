//go:build !tinygo && linux && rpio

package hal

import (
	"fmt"
	"sync"

	"github.com/stianeikeland/go-rpio/v4"
)

// newHostStatus drives a status LED on a Raspberry Pi header pin.
//
// Falls back to log output when /dev/gpiomem is unavailable.
func newHostStatus(logger Logger, opt Options) StatusLight {
	fallback := &logStatus{logger: logger}
	if opt.StatusPin <= 0 {
		return fallback
	}
	if err := rpio.Open(); err != nil {
		logger.WriteLineString(fmt.Sprintf("status: rpio open: %v", err))
		return fallback
	}
	pin := &rpioPin{pin: rpio.Pin(opt.StatusPin), name: fmt.Sprintf("GPIO%d", opt.StatusPin)}
	st, err := NewPinStatus(pin, logger)
	if err != nil {
		logger.WriteLineString(fmt.Sprintf("status: %v", err))
		return fallback
	}
	return st
}

type rpioPin struct {
	mu   sync.Mutex
	pin  rpio.Pin
	name string
	mode GPIOMode
}

func (p *rpioPin) Name() string { return p.name }
func (p *rpioPin) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p *rpioPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		p.pin.Input()
	case GPIOModeOutput:
		p.pin.Output()
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
		p.pin.PullOff()
	case GPIOPullUp:
		p.pin.PullUp()
	case GPIOPullDown:
		p.pin.PullDown()
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}
	p.mode = mode
	return nil
}

func (p *rpioPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pin.Read() == rpio.High, nil
}

func (p *rpioPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	if level {
		p.pin.High()
	} else {
		p.pin.Low()
	}
	return nil
}
