// Package modbus mirrors HID reports into Modbus holding registers, so a PLC
// or panel can react to a remote the same way a USB host would.
//
// Register layout, relative to the configured base address (two report bytes
// per register, first byte in the high half):
//
//	base+0 .. base+3  keyboard report (8 bytes)
//	base+4 .. base+5  mouse report (4 bytes)
//	base+6            consumer report (2 bytes)
package modbus

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/sparques/irhid/hid"
)

const (
	KeyboardOffset = 0
	MouseOffset    = 4
	ConsumerOffset = 6
	// Registers is the size of the register block.
	Registers = 7
)

// RegisterWriter is the part of modbus.Client the Device uses.
type RegisterWriter interface {
	WriteMultipleRegisters(address, quantity uint16, value []byte) (results []byte, err error)
}

type Config struct {
	Endpoint string
	UnitID   uint8
	Base     uint16
	Timeout  time.Duration
}

// Device implements hid.Device on top of a Modbus TCP connection.
type Device struct {
	mu      sync.Mutex
	client  RegisterWriter
	handler *modbus.TCPClientHandler
	base    uint16
	buf     [hid.KeyboardReportSize]byte
}

// Dial connects to a Modbus TCP server.
func Dial(cfg Config) (*Device, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("hid modbus: endpoint required")
	}
	if uint32(cfg.Base)+Registers > 0x10000 {
		return nil, fmt.Errorf("hid modbus: base %d leaves no room for %d registers", cfg.Base, Registers)
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("hid modbus: connect %s: %w", cfg.Endpoint, err)
	}

	d := NewDevice(modbus.NewClient(h), cfg.Base)
	d.handler = h
	return d, nil
}

// NewDevice wraps an existing client.
func NewDevice(client RegisterWriter, base uint16) *Device {
	return &Device{client: client, base: base}
}

func (d *Device) write(offset uint16, marshal func([]byte) int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := marshal(d.buf[:])
	_, err := d.client.WriteMultipleRegisters(d.base+offset, uint16(n/2), d.buf[:n])
	if err != nil {
		return fmt.Errorf("hid modbus: write register %d: %w", d.base+offset, err)
	}
	return nil
}

func (d *Device) WriteKeyboard(r *hid.KeyboardReport) error {
	return d.write(KeyboardOffset, r.MarshalTo)
}

func (d *Device) WriteMouse(r *hid.MouseReport) error {
	return d.write(MouseOffset, r.MarshalTo)
}

func (d *Device) WriteConsumer(r *hid.ConsumerReport) error {
	return d.write(ConsumerOffset, r.MarshalTo)
}

// Close closes the TCP connection if the Device owns one.
func (d *Device) Close() error {
	if d.handler == nil {
		return nil
	}
	return d.handler.Close()
}
