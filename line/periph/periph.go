// Package periph reads an IR receiver through a periph.io GPIO pin, which
// covers the Raspberry Pi, Allwinner and BeagleBone families.
package periph

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// Line is an irhid.Line backed by a periph pin.
type Line struct {
	pin gpio.PinIO
}

// Open initialises the host drivers and configures the named pin (for
// example "GPIO17") as a pulled-up input.
func Open(name string) (*Line, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph: init host: %w", err)
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("periph: pin %s not found", name)
	}
	return New(p)
}

// New configures an already resolved pin.
func New(p gpio.PinIO) (*Line, error) {
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("periph: configure %s: %w", p, err)
	}
	return &Line{pin: p}, nil
}

// Get implements irhid.Line.
func (l *Line) Get() bool {
	return l.pin.Read() == gpio.High
}

func (l *Line) Close() error {
	return l.pin.Halt()
}
