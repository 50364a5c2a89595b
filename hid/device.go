package hid

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnsupported is returned by devices that cannot deliver a report kind.
var ErrUnsupported = errors.New("hid: report kind not supported by device")

// Device delivers input reports to a host.
type Device interface {
	WriteKeyboard(r *KeyboardReport) error
	WriteMouse(r *MouseReport) error
	WriteConsumer(r *ConsumerReport) error
}

// Sleeper pauses between the press and release halves of an action.
type Sleeper interface {
	Sleep(d time.Duration)
}

// ClickHold is how long Click keeps a mouse button down.
const ClickHold = 10 * time.Millisecond

// Type presses and releases key with the given modifiers.
func Type(dev Device, modifiers, key uint8) error {
	r := KeyboardReport{Modifiers: modifiers}
	r.SetKey(key)
	if err := dev.WriteKeyboard(&r); err != nil {
		return fmt.Errorf("press key 0x%02X: %w", key, err)
	}
	r.Clear()
	if err := dev.WriteKeyboard(&r); err != nil {
		return fmt.Errorf("release key 0x%02X: %w", key, err)
	}
	return nil
}

// Consume presses and releases a consumer control usage.
func Consume(dev Device, usage uint16) error {
	r := ConsumerReport{Usage: usage}
	if err := dev.WriteConsumer(&r); err != nil {
		return fmt.Errorf("press usage 0x%03X: %w", usage, err)
	}
	r.Usage = UsageNone
	if err := dev.WriteConsumer(&r); err != nil {
		return fmt.Errorf("release usage 0x%03X: %w", usage, err)
	}
	return nil
}

// Move moves the pointer by dx, dy.
func Move(dev Device, dx, dy int8) error {
	return dev.WriteMouse(&MouseReport{X: dx, Y: dy})
}

// Scroll turns the wheel by detents; positive is up.
func Scroll(dev Device, detents int8) error {
	return dev.WriteMouse(&MouseReport{Wheel: detents})
}

// Click presses buttons, holds them for ClickHold, then releases them.
func Click(dev Device, s Sleeper, buttons uint8) error {
	if err := dev.WriteMouse(&MouseReport{Buttons: buttons}); err != nil {
		return fmt.Errorf("press buttons 0x%02X: %w", buttons, err)
	}
	s.Sleep(ClickHold)
	if err := dev.WriteMouse(&MouseReport{}); err != nil {
		return fmt.Errorf("release buttons 0x%02X: %w", buttons, err)
	}
	return nil
}
