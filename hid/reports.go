package hid

import "fmt"

// Keyboard modifier bits.
const (
	ModLeftCtrl   = 1 << 0
	ModLeftShift  = 1 << 1
	ModLeftAlt    = 1 << 2
	ModLeftGUI    = 1 << 3
	ModRightCtrl  = 1 << 4
	ModRightShift = 1 << 5
	ModRightAlt   = 1 << 6
	ModRightGUI   = 1 << 7
)

// Keyboard keycodes (USB HID Usage Tables, page 0x07).
const (
	KeyNone      = 0x00
	KeyA         = 0x04
	KeyB         = 0x05
	KeyC         = 0x06
	KeyD         = 0x07
	KeyE         = 0x08
	KeyF         = 0x09
	KeyG         = 0x0A
	KeyH         = 0x0B
	KeyI         = 0x0C
	KeyJ         = 0x0D
	KeyK         = 0x0E
	KeyL         = 0x0F
	KeyM         = 0x10
	KeyN         = 0x11
	KeyO         = 0x12
	KeyP         = 0x13
	KeyQ         = 0x14
	KeyR         = 0x15
	KeyS         = 0x16
	KeyT         = 0x17
	KeyU         = 0x18
	KeyV         = 0x19
	KeyW         = 0x1A
	KeyX         = 0x1B
	KeyY         = 0x1C
	KeyZ         = 0x1D
	KeyEnter     = 0x28
	KeyEscape    = 0x29
	KeyBackspace = 0x2A
	KeyTab       = 0x2B
	KeySpace     = 0x2C
	KeyF1        = 0x3A
	KeyF2        = 0x3B
	KeyF3        = 0x3C
	KeyF4        = 0x3D
	KeyF5        = 0x3E
	KeyF6        = 0x3F
	KeyF7        = 0x40
	KeyF8        = 0x41
	KeyF9        = 0x42
	KeyF10       = 0x43
	KeyF11       = 0x44
	KeyF12       = 0x45
	KeyHome      = 0x4A
	KeyPageUp    = 0x4B
	KeyDelete    = 0x4C
	KeyEnd       = 0x4D
	KeyPageDown  = 0x4E
	KeyRight     = 0x4F
	KeyLeft      = 0x50
	KeyDown      = 0x51
	KeyUp        = 0x52
)

// Consumer control usages (USB HID Usage Tables, page 0x0C).
const (
	UsageNone           = 0x000
	UsagePlay           = 0x0B0
	UsagePause          = 0x0B1
	UsageRecord         = 0x0B2
	UsageFastForward    = 0x0B3
	UsageRewind         = 0x0B4
	UsageNextTrack      = 0x0B5
	UsagePrevTrack      = 0x0B6
	UsageStop           = 0x0B7
	UsageEject          = 0x0B8
	UsagePlayPause      = 0x0CD
	UsageMute           = 0x0E2
	UsageVolumeUp       = 0x0E9
	UsageVolumeDown     = 0x0EA
	UsageBrightnessUp   = 0x06F
	UsageBrightnessDown = 0x070
	UsageCalculator     = 0x192
	UsageBrowserHome    = 0x223
	UsageBrowserBack    = 0x224
)

// Mouse button bits.
const (
	MouseButtonLeft   = 1 << 0
	MouseButtonRight  = 1 << 1
	MouseButtonMiddle = 1 << 2
)

// KeyboardReportDescriptor is a standard 8-byte boot keyboard report descriptor.
// Report format: [modifiers, reserved, key1, key2, key3, key4, key5, key6]
var KeyboardReportDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x06, // Usage (Keyboard)
	0xA1, 0x01, // Collection (Application)
	0x05, 0x07, //   Usage Page (Keyboard/Keypad)
	0x19, 0xE0, //   Usage Minimum (Left Control)
	0x29, 0xE7, //   Usage Maximum (Right GUI)
	0x15, 0x00, //   Logical Minimum (0)
	0x25, 0x01, //   Logical Maximum (1)
	0x75, 0x01, //   Report Size (1)
	0x95, 0x08, //   Report Count (8)
	0x81, 0x02, //   Input (Data, Variable, Absolute) - Modifier byte
	0x95, 0x01, //   Report Count (1)
	0x75, 0x08, //   Report Size (8)
	0x81, 0x01, //   Input (Constant) - Reserved byte
	0x95, 0x06, //   Report Count (6)
	0x75, 0x08, //   Report Size (8)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0xFF, 0x00, // Logical Maximum (255)
	0x05, 0x07, //   Usage Page (Keyboard/Keypad)
	0x19, 0x00, //   Usage Minimum (0)
	0x2A, 0xFF, 0x00, // Usage Maximum (255)
	0x81, 0x00, //   Input (Data, Array) - Key array
	0xC0, // End Collection
}

// MouseReportDescriptor is a standard 4-byte mouse report descriptor.
// Report format: [buttons, X, Y, wheel]
var MouseReportDescriptor = []byte{
	0x05, 0x01, // Usage Page (Generic Desktop)
	0x09, 0x02, // Usage (Mouse)
	0xA1, 0x01, // Collection (Application)
	0x09, 0x01, //   Usage (Pointer)
	0xA1, 0x00, //   Collection (Physical)
	0x05, 0x09, //     Usage Page (Button)
	0x19, 0x01, //     Usage Minimum (Button 1)
	0x29, 0x03, //     Usage Maximum (Button 3)
	0x15, 0x00, //     Logical Minimum (0)
	0x25, 0x01, //     Logical Maximum (1)
	0x95, 0x03, //     Report Count (3)
	0x75, 0x01, //     Report Size (1)
	0x81, 0x02, //     Input (Data, Variable, Absolute) - Button bits
	0x95, 0x01, //     Report Count (1)
	0x75, 0x05, //     Report Size (5)
	0x81, 0x01, //     Input (Constant) - Padding
	0x05, 0x01, //     Usage Page (Generic Desktop)
	0x09, 0x30, //     Usage (X)
	0x09, 0x31, //     Usage (Y)
	0x09, 0x38, //     Usage (Wheel)
	0x15, 0x81, //     Logical Minimum (-127)
	0x25, 0x7F, //     Logical Maximum (127)
	0x75, 0x08, //     Report Size (8)
	0x95, 0x03, //     Report Count (3)
	0x81, 0x06, //     Input (Data, Variable, Relative) - X, Y, Wheel
	0xC0, //   End Collection
	0xC0, // End Collection
}

// ConsumerReportDescriptor describes a 2-byte consumer control report holding
// one 16-bit usage.
var ConsumerReportDescriptor = []byte{
	0x05, 0x0C, // Usage Page (Consumer)
	0x09, 0x01, // Usage (Consumer Control)
	0xA1, 0x01, // Collection (Application)
	0x15, 0x00, //   Logical Minimum (0)
	0x26, 0xFF, 0x03, // Logical Maximum (1023)
	0x19, 0x00, //   Usage Minimum (0)
	0x2A, 0xFF, 0x03, // Usage Maximum (1023)
	0x75, 0x10, //   Report Size (16)
	0x95, 0x01, //   Report Count (1)
	0x81, 0x00, //   Input (Data, Array)
	0xC0, // End Collection
}

// Report kinds, one per gadget function.
const (
	KindKeyboard = "keyboard"
	KindMouse    = "mouse"
	KindConsumer = "consumer"
)

// ReportDescriptor returns the report descriptor for kind, as written to a
// configfs HID function's report_desc.
func ReportDescriptor(kind string) ([]byte, error) {
	switch kind {
	case KindKeyboard:
		return KeyboardReportDescriptor, nil
	case KindMouse:
		return MouseReportDescriptor, nil
	case KindConsumer:
		return ConsumerReportDescriptor, nil
	}
	return nil, fmt.Errorf("unknown report kind %q", kind)
}

// KeyboardReport is an 8-byte keyboard input report.
type KeyboardReport struct {
	Modifiers uint8    // Modifier key state
	Reserved  uint8    // Reserved (always 0)
	Keys      [6]uint8 // Up to 6 simultaneous key codes
}

// KeyboardReportSize is the size of a keyboard report in bytes.
const KeyboardReportSize = 8

// MarshalTo writes the keyboard report to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (r *KeyboardReport) MarshalTo(buf []byte) int {
	if len(buf) < KeyboardReportSize {
		return 0
	}
	buf[0] = r.Modifiers
	buf[1] = r.Reserved
	copy(buf[2:8], r.Keys[:])
	return KeyboardReportSize
}

// Clear resets the keyboard report to all keys released.
func (r *KeyboardReport) Clear() {
	*r = KeyboardReport{}
}

// SetKey sets a key in the key array.
// Returns false if no slot is available.
func (r *KeyboardReport) SetKey(key uint8) bool {
	for i := range r.Keys {
		if r.Keys[i] == 0 {
			r.Keys[i] = key
			return true
		}
		if r.Keys[i] == key {
			return true
		}
	}
	return false
}

// MouseReport is a 4-byte mouse input report.
type MouseReport struct {
	Buttons uint8 // Button state
	X       int8  // X movement (-127 to 127)
	Y       int8  // Y movement (-127 to 127)
	Wheel   int8  // Wheel movement (-127 to 127)
}

// MouseReportSize is the size of a mouse report in bytes.
const MouseReportSize = 4

// MarshalTo writes the mouse report to buf.
func (r *MouseReport) MarshalTo(buf []byte) int {
	if len(buf) < MouseReportSize {
		return 0
	}
	buf[0] = r.Buttons
	buf[1] = byte(r.X)
	buf[2] = byte(r.Y)
	buf[3] = byte(r.Wheel)
	return MouseReportSize
}

// ConsumerReport is a 2-byte consumer control report. A zero Usage releases
// whatever was pressed.
type ConsumerReport struct {
	Usage uint16
}

// ConsumerReportSize is the size of a consumer report in bytes.
const ConsumerReportSize = 2

// MarshalTo writes the consumer report to buf, little endian.
func (r *ConsumerReport) MarshalTo(buf []byte) int {
	if len(buf) < ConsumerReportSize {
		return 0
	}
	buf[0] = byte(r.Usage)
	buf[1] = byte(r.Usage >> 8)
	return ConsumerReportSize
}
