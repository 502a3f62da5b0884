package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

type ledPin struct {
	mu    sync.Mutex
	led   LED
	name  string
	level bool
}

func newLEDPin(name string, led LED) GPIOPin {
	if led == nil {
		return nil
	}
	return &ledPin{led: led, name: name}
}

func (p *ledPin) Name() string   { return p.name }
func (p *ledPin) Caps() GPIOCaps { return GPIOCapOutput }

func (p *ledPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: only output supported", p.name)
	}
	if pull != GPIOPullNone {
		return fmt.Errorf("gpio: pin %s: pull unsupported", p.name)
	}
	return nil
}

func (p *ledPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level, nil
}

func (p *ledPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.level = level
	if level {
		p.led.High()
	} else {
		p.led.Low()
	}
	return nil
}

// pinStatus drives a single-color status light from an output pin.
//
// The pin is lit while connecting and after an error, dark when idle or ok.
type pinStatus struct {
	pin GPIOPin
	log Logger
}

// NewPinStatus configures pin as an output and returns a StatusLight on it.
func NewPinStatus(pin GPIOPin, log Logger) (StatusLight, error) {
	if pin == nil {
		return nil, fmt.Errorf("gpio: nil status pin")
	}
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
		return nil, err
	}
	return &pinStatus{pin: pin, log: log}, nil
}

func (s *pinStatus) SetStatus(st Status) {
	level := st == StatusConnecting || st == StatusError
	if err := s.pin.Write(level); err != nil && s.log != nil {
		s.log.WriteLineString(fmt.Sprintf("status: pin %s: %v", s.pin.Name(), err))
	}
}
