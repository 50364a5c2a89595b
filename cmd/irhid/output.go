package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sparques/irhid/hid"
	"github.com/sparques/irhid/hid/modbus"
	"github.com/sparques/irhid/internal/cliconfig"
)

func openOutput(cfg cliconfig.Config, log zerolog.Logger) (hid.Device, func(), error) {
	switch cfg.OutputBackend {
	case cliconfig.OutputGadget:
		g, err := hid.OpenGadget(hid.GadgetConfig{
			Keyboard: cfg.KeyboardDevice,
			Mouse:    cfg.MouseDevice,
			Consumer: cfg.ConsumerDevice,
		})
		if err != nil {
			return nil, nil, err
		}
		return g, closer(log, "gadget", g.Close), nil

	case cliconfig.OutputModbus:
		d, err := modbus.Dial(modbus.Config{
			Endpoint: cfg.ModbusEndpoint,
			UnitID:   uint8(cfg.ModbusUnitID),
			Base:     uint16(cfg.ModbusRegister),
			Timeout:  cfg.ModbusTimeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return d, closer(log, "modbus", d.Close), nil

	case cliconfig.OutputLog:
		return hid.NewLogDevice(log), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown output backend %q", cfg.OutputBackend)
}

func closer(log zerolog.Logger, what string, fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			log.Warn().Err(err).Str("output", what).Msg("close failed")
		}
	}
}
