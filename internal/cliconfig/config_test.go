package cliconfig

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}
	if cfg.Address != 0x1A {
		t.Errorf("Address = 0x%X, want 0x1A", cfg.Address)
	}
	if cfg.PollInterval != 100*time.Microsecond {
		t.Errorf("PollInterval = %v, want 100µs", cfg.PollInterval)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "presenter on periph with log output",
			modify: func(c *Config) { c.Variant = "presenter"; c.InputBackend = InputPeriph; c.OutputBackend = OutputLog },
		},
		{
			name:    "unknown variant",
			modify:  func(c *Config) { c.Variant = "keyboard" },
			wantErr: `unknown variant "keyboard"`,
		},
		{
			name:    "negative poll interval",
			modify:  func(c *Config) { c.PollInterval = -time.Millisecond },
			wantErr: "poll interval must not be negative",
		},
		{
			name:    "mouse speed too large",
			modify:  func(c *Config) { c.MouseSpeed = 128 },
			wantErr: "mouse speed must be between 1 and 127",
		},
		{
			name:    "watch without keymap",
			modify:  func(c *Config) { c.WatchKeymap = true },
			wantErr: "watch-keymap needs a keymap file",
		},
		{
			name:    "gpiocdev without chip",
			modify:  func(c *Config) { c.GPIOChip = "" },
			wantErr: "gpio-chip is required",
		},
		{
			name:    "periph without pin",
			modify:  func(c *Config) { c.InputBackend = InputPeriph; c.GPIOPin = "" },
			wantErr: "gpio-pin is required",
		},
		{
			name:    "unknown input",
			modify:  func(c *Config) { c.InputBackend = "serial" },
			wantErr: `unknown input backend "serial"`,
		},
		{
			name: "gadget without devices",
			modify: func(c *Config) {
				c.KeyboardDevice, c.MouseDevice, c.ConsumerDevice = "", "", ""
			},
			wantErr: "needs at least one hidg device",
		},
		{
			name:    "modbus without endpoint",
			modify:  func(c *Config) { c.OutputBackend = OutputModbus },
			wantErr: "modbus-endpoint is required",
		},
		{
			name: "modbus register past the end",
			modify: func(c *Config) {
				c.OutputBackend = OutputModbus
				c.ModbusEndpoint = "plc:502"
				c.ModbusRegister = 65530
			},
			wantErr: "modbus register must be between 0 and 65529",
		},
		{
			name:    "unknown output",
			modify:  func(c *Config) { c.OutputBackend = "uinput" },
			wantErr: `unknown output backend "uinput"`,
		},
		{
			name:    "unknown log level",
			modify:  func(c *Config) { c.LogLevel = "chatty" },
			wantErr: `unknown log level "chatty"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigSetterRespectsChanged(t *testing.T) {
	s := newConfigSetter(map[string]bool{"variant": true, "address": true})

	variant := "media"
	s.setString("variant", "mouse", &variant)
	if variant != "media" {
		t.Errorf("variant = %q, want media", variant)
	}

	var addr uint16 = 0x1A
	zero := 0
	if err := s.setAddress("address", &zero, &addr); err != nil {
		t.Fatal(err)
	}
	if addr != 0x1A {
		t.Errorf("address = 0x%X, want 0x1A", addr)
	}

	s = newConfigSetter(map[string]bool{})
	if err := s.setAddress("address", &zero, &addr); err != nil {
		t.Fatal(err)
	}
	if addr != 0 {
		t.Errorf("address = 0x%X, want 0", addr)
	}
	big := 0x10000
	if err := s.setAddress("address", &big, &addr); err == nil {
		t.Error("setAddress(0x10000) expected error")
	}
}
