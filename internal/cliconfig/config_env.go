package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (IRHID_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("variant", os.Getenv("IRHID_VARIANT"), &cfg.Variant)
	s.setString("keymap", os.Getenv("IRHID_KEYMAP"), &cfg.Keymap)
	s.setString("input", os.Getenv("IRHID_INPUT_BACKEND"), &cfg.InputBackend)
	s.setString("gpio-chip", os.Getenv("IRHID_GPIO_CHIP"), &cfg.GPIOChip)
	s.setString("gpio-pin", os.Getenv("IRHID_GPIO_PIN"), &cfg.GPIOPin)
	s.setString("output", os.Getenv("IRHID_OUTPUT_BACKEND"), &cfg.OutputBackend)
	s.setString("keyboard-device", os.Getenv("IRHID_KEYBOARD_DEVICE"), &cfg.KeyboardDevice)
	s.setString("mouse-device", os.Getenv("IRHID_MOUSE_DEVICE"), &cfg.MouseDevice)
	s.setString("consumer-device", os.Getenv("IRHID_CONSUMER_DEVICE"), &cfg.ConsumerDevice)
	s.setString("modbus-endpoint", os.Getenv("IRHID_MODBUS_ENDPOINT"), &cfg.ModbusEndpoint)
	s.setString("log-level", os.Getenv("IRHID_LOG_LEVEL"), &cfg.LogLevel)

	if err := s.setAddressFromString("address", os.Getenv("IRHID_ADDRESS"), &cfg.Address); err != nil {
		return err
	}

	if err := s.setDuration("poll", os.Getenv("IRHID_POLL_INTERVAL"), &cfg.PollInterval); err != nil {
		return err
	}
	if err := s.setDuration("modbus-timeout", os.Getenv("IRHID_MODBUS_TIMEOUT"), &cfg.ModbusTimeout); err != nil {
		return err
	}

	if err := s.setIntFromString("mouse-speed", os.Getenv("IRHID_MOUSE_SPEED"), &cfg.MouseSpeed); err != nil {
		return err
	}
	if err := s.setIntFromString("gpio-line", os.Getenv("IRHID_GPIO_LINE"), &cfg.GPIOLine); err != nil {
		return err
	}
	if err := s.setIntFromString("modbus-unit", os.Getenv("IRHID_MODBUS_UNIT_ID"), &cfg.ModbusUnitID); err != nil {
		return err
	}
	if err := s.setIntFromString("modbus-register", os.Getenv("IRHID_MODBUS_REGISTER"), &cfg.ModbusRegister); err != nil {
		return err
	}

	s.setBoolFromString("watch-keymap", os.Getenv("IRHID_WATCH_KEYMAP"), &cfg.WatchKeymap)
	s.setBoolFromString("log-json", os.Getenv("IRHID_LOG_JSON"), &cfg.LogJSON)

	return nil
}
