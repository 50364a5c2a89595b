//go:build linux

package main

import (
	"fmt"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/internal/cliconfig"
	"github.com/sparques/irhid/line/gpiocdev"
	"github.com/sparques/irhid/line/periph"
)

func openLine(cfg cliconfig.Config) (irhid.Line, func(), error) {
	switch cfg.InputBackend {
	case cliconfig.InputGPIOCDev:
		l, err := gpiocdev.Open(cfg.GPIOChip, cfg.GPIOLine)
		if err != nil {
			return nil, nil, err
		}
		return l, func() { l.Close() }, nil
	case cliconfig.InputPeriph:
		l, err := periph.Open(cfg.GPIOPin)
		if err != nil {
			return nil, nil, err
		}
		return l, func() { l.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown input backend %q", cfg.InputBackend)
}
