//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

type tinyGoHAL struct {
	logger *uartLogger
	status StatusLight
	fb     Framebuffer
	clock  Clock
}

// New returns a bare-metal HAL implementation.
//
// UART: UART0 on the board's default pins, 115200 8N1.
// Status: the on-board NEOPIXEL when the board has one, else the on-board LED.
// Panel: opt.Panel, else the HUB75 matrix in hub75 builds.
func New(opt Options) HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{BaudRate: 115200})
	logger := &uartLogger{uart: uart}

	if opt.Panel == nil {
		if p := newBoardPanel(logger); p != nil {
			opt.Panel = p
		}
	}
	opt = opt.withDefaults()

	_, fb := opt.framebuffer()
	return &tinyGoHAL{
		logger: logger,
		status: newBoardStatus(logger),
		fb:     fb,
		clock:  NewClock(nil),
	}
}

func (h *tinyGoHAL) Logger() Logger      { return h.logger }
func (h *tinyGoHAL) Status() StatusLight { return h.status }
func (h *tinyGoHAL) Display() Display    { return tinyGoDisplay{fb: h.fb} }
func (h *tinyGoHAL) Clock() Clock        { return h.clock }

// neopixelStatus shows the status color on a single ws2812 pixel.
type neopixelStatus struct {
	dev ws2812.Device
	buf [1]color.RGBA
}

func newNeopixelStatus(pin machine.Pin) *neopixelStatus {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &neopixelStatus{dev: ws2812.New(pin)}
}

func (s *neopixelStatus) SetStatus(st Status) {
	r, g, b := st.RGB()
	s.buf[0] = color.RGBA{R: r, G: g, B: b, A: 0xFF}
	_ = s.dev.WriteColors(s.buf[:])
}
