package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
// Pointers mark values where zero is meaningful.
type FileConfig struct {
	Variant      string `toml:"variant"`
	Address      *int   `toml:"address"`
	Keymap       string `toml:"keymap"`
	WatchKeymap  *bool  `toml:"watch_keymap"`
	PollInterval string `toml:"poll_interval"`
	MouseSpeed   int    `toml:"mouse_speed"`

	InputBackend string `toml:"input_backend"`
	GPIOChip     string `toml:"gpio_chip"`
	GPIOLine     *int   `toml:"gpio_line"`
	GPIOPin      string `toml:"gpio_pin"`

	OutputBackend  string `toml:"output_backend"`
	KeyboardDevice string `toml:"keyboard_device"`
	MouseDevice    string `toml:"mouse_device"`
	ConsumerDevice string `toml:"consumer_device"`

	ModbusEndpoint string `toml:"modbus_endpoint"`
	ModbusUnitID   *int   `toml:"modbus_unit_id"`
	ModbusRegister *int   `toml:"modbus_register"`
	ModbusTimeout  string `toml:"modbus_timeout"`

	LogLevel string `toml:"log_level"`
	LogJSON  *bool  `toml:"log_json"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.irhid/config.toml, or "" without a home
// directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".irhid", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("variant", fc.Variant, &cfg.Variant)
	s.setString("keymap", fc.Keymap, &cfg.Keymap)
	s.setString("input", fc.InputBackend, &cfg.InputBackend)
	s.setString("gpio-chip", fc.GPIOChip, &cfg.GPIOChip)
	s.setString("gpio-pin", fc.GPIOPin, &cfg.GPIOPin)
	s.setString("output", fc.OutputBackend, &cfg.OutputBackend)
	s.setString("keyboard-device", fc.KeyboardDevice, &cfg.KeyboardDevice)
	s.setString("mouse-device", fc.MouseDevice, &cfg.MouseDevice)
	s.setString("consumer-device", fc.ConsumerDevice, &cfg.ConsumerDevice)
	s.setString("modbus-endpoint", fc.ModbusEndpoint, &cfg.ModbusEndpoint)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)

	if err := s.setAddress("address", fc.Address, &cfg.Address); err != nil {
		return err
	}
	if err := s.setDuration("poll", fc.PollInterval, &cfg.PollInterval); err != nil {
		return err
	}
	if err := s.setDuration("modbus-timeout", fc.ModbusTimeout, &cfg.ModbusTimeout); err != nil {
		return err
	}

	s.setInt("mouse-speed", fc.MouseSpeed, &cfg.MouseSpeed)
	s.setIntPtr("gpio-line", fc.GPIOLine, &cfg.GPIOLine)
	s.setIntPtr("modbus-unit", fc.ModbusUnitID, &cfg.ModbusUnitID)
	s.setIntPtr("modbus-register", fc.ModbusRegister, &cfg.ModbusRegister)

	s.setBool("watch-keymap", fc.WatchKeymap, &cfg.WatchKeymap)
	s.setBool("log-json", fc.LogJSON, &cfg.LogJSON)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
