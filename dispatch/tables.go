package dispatch

import (
	"fmt"

	"github.com/sparques/irhid/hid"
)

// Keymap maps command bytes to actions.
type Keymap map[byte]Action

// Clone returns a copy of m that can be modified freely.
func (m Keymap) Clone() Keymap {
	c := make(Keymap, len(m))
	for cmd, a := range m {
		c[cmd] = a
	}
	return c
}

const (
	VariantMedia     = "media"
	VariantMouse     = "mouse"
	VariantPresenter = "presenter"
)

// DefaultAddress is the remote address the built-in keymaps were laid out for.
const DefaultAddress = 0x1A

// DefaultMouseSpeed is the pointer step per command, in HID counts.
const DefaultMouseSpeed = 10

// MediaKeymap drives the consumer control page. Volume and seek keys repeat
// while held.
func MediaKeymap() Keymap {
	return Keymap{
		0x01: Consumer(hid.UsageVolumeUp, false),
		0x02: Consumer(hid.UsageFastForward, false),
		0x03: Consumer(hid.UsageVolumeDown, false),
		0x04: Consumer(hid.UsageRewind, false),
		0x05: Consumer(hid.UsagePlay, true),
		0x06: Consumer(hid.UsagePause, true),
		0x07: Consumer(hid.UsageStop, true),
		0x08: Consumer(hid.UsageRecord, true),
		0x09: Consumer(hid.UsageNextTrack, true),
		0x0A: Consumer(hid.UsagePrevTrack, true),
		0x0B: Consumer(hid.UsageEject, true),
		0x0C: Consumer(hid.UsageMute, true),
	}
}

// MouseKeymap moves the pointer by speed per command.
func MouseKeymap(speed int8) Keymap {
	return Keymap{
		0x01: Move(0, -speed),
		0x02: Move(speed, 0),
		0x03: Move(0, speed),
		0x04: Move(-speed, 0),
		0x05: Click(hid.MouseButtonLeft),
		0x06: Click(hid.MouseButtonRight),
		0x07: Wheel(1),
		0x08: Wheel(-1),
	}
}

// PresenterKeymap uses the keys presentation software listens to.
func PresenterKeymap() Keymap {
	return Keymap{
		0x01: Key(0, hid.KeyB, true),        // black screen
		0x02: Key(0, hid.KeyPageDown, true), // next slide
		0x03: Key(0, hid.KeyW, true),        // white screen
		0x04: Key(0, hid.KeyPageUp, true),   // previous slide
		0x05: Key(0, hid.KeyF5, true),       // start show
		0x06: Key(0, hid.KeyEscape, true),   // end show
		0x07: Consumer(hid.UsageVolumeUp, false),
		0x08: Consumer(hid.UsageVolumeDown, false),
		0x09: Consumer(hid.UsageMute, true),
	}
}

// VariantKeymap returns the built-in keymap called name.
func VariantKeymap(name string, mouseSpeed int8) (Keymap, error) {
	switch name {
	case VariantMedia:
		return MediaKeymap(), nil
	case VariantMouse:
		return MouseKeymap(mouseSpeed), nil
	case VariantPresenter:
		return PresenterKeymap(), nil
	}
	return nil, fmt.Errorf("unknown variant %q", name)
}
