package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/dispatch"
	"github.com/sparques/irhid/hid/modbus"
	"github.com/sparques/irhid/internal/logging"
)

const (
	InputGPIOCDev = "gpiocdev"
	InputPeriph   = "periph"

	OutputGadget = "gadget"
	OutputLog    = "log"
	OutputModbus = "modbus"
)

// Config holds CLI configuration for irhid.
type Config struct {
	Variant      string
	Address      uint16
	Keymap       string
	WatchKeymap  bool
	PollInterval time.Duration
	MouseSpeed   int

	InputBackend string
	GPIOChip     string
	GPIOLine     int
	GPIOPin      string

	OutputBackend  string
	KeyboardDevice string
	MouseDevice    string
	ConsumerDevice string

	ModbusEndpoint string
	ModbusUnitID   int
	ModbusRegister int
	ModbusTimeout  time.Duration

	LogLevel string
	LogJSON  bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Variant:        dispatch.VariantMedia,
		Address:        dispatch.DefaultAddress,
		PollInterval:   irhid.Tick,
		MouseSpeed:     dispatch.DefaultMouseSpeed,
		InputBackend:   InputGPIOCDev,
		GPIOChip:       "gpiochip0",
		GPIOLine:       17,
		GPIOPin:        "GPIO17",
		OutputBackend:  OutputGadget,
		KeyboardDevice: "/dev/hidg0",
		MouseDevice:    "/dev/hidg1",
		ConsumerDevice: "/dev/hidg2",
		ModbusUnitID:   1,
		ModbusTimeout:  time.Second,
		LogLevel:       "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := dispatch.VariantKeymap(c.Variant, 1); err != nil {
		return err
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll interval must not be negative")
	}
	if c.MouseSpeed < 1 || c.MouseSpeed > 127 {
		return fmt.Errorf("mouse speed must be between 1 and 127")
	}
	if c.WatchKeymap && c.Keymap == "" {
		return fmt.Errorf("watch-keymap needs a keymap file")
	}

	switch c.InputBackend {
	case InputGPIOCDev:
		if c.GPIOChip == "" {
			return fmt.Errorf("gpio-chip is required for the %s input", c.InputBackend)
		}
		if c.GPIOLine < 0 {
			return fmt.Errorf("gpio-line must not be negative")
		}
	case InputPeriph:
		if c.GPIOPin == "" {
			return fmt.Errorf("gpio-pin is required for the %s input", c.InputBackend)
		}
	default:
		return fmt.Errorf("unknown input backend %q", c.InputBackend)
	}

	switch c.OutputBackend {
	case OutputGadget:
		if c.KeyboardDevice == "" && c.MouseDevice == "" && c.ConsumerDevice == "" {
			return fmt.Errorf("the gadget output needs at least one hidg device")
		}
	case OutputLog:
	case OutputModbus:
		if c.ModbusEndpoint == "" {
			return fmt.Errorf("modbus-endpoint is required for the modbus output")
		}
		if c.ModbusUnitID < 0 || c.ModbusUnitID > 247 {
			return fmt.Errorf("modbus unit id must be between 0 and 247")
		}
		if c.ModbusRegister < 0 || c.ModbusRegister+modbus.Registers > 0x10000 {
			return fmt.Errorf("modbus register must be between 0 and %d", 0x10000-modbus.Registers)
		}
		if c.ModbusTimeout <= 0 {
			return fmt.Errorf("modbus timeout must be positive")
		}
	default:
		return fmt.Errorf("unknown output backend %q", c.OutputBackend)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int value from a pointer, so zero can be configured.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setAddress sets a remote address from a pointer after a range check.
func (s *configSetter) setAddress(flag string, value *int, dst *uint16) error {
	if value == nil || s.changed[flag] {
		return nil
	}
	if *value < 0 || *value > 0xFFFF {
		return fmt.Errorf("%s 0x%X out of range", flag, *value)
	}
	*dst = uint16(*value)
	return nil
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a decimal or 0x-prefixed int. Zero is accepted.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.ParseInt(value, 0, 0)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = int(i)
	return nil
}

// setAddressFromString parses a 16-bit remote address such as "0x1A".
func (s *configSetter) setAddressFromString(flag, value string, dst *uint16) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	a, err := strconv.ParseUint(value, 0, 16)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = uint16(a)
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
