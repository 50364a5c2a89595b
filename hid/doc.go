// Package hid holds the USB HID input reports irhid produces and the devices
// that deliver them.
//
// # Reports
//
// Three report kinds cover every action a remote can trigger:
//
//   - KeyboardReport: standard 8-byte boot keyboard report
//   - MouseReport: 4-byte relative mouse report (3 buttons, X/Y/wheel)
//   - ConsumerReport: 2-byte consumer control report (media keys)
//
// # Devices
//
// A Device accepts reports. Implementations in this module:
//
//   - Gadget: writes reports to Linux USB gadget character devices
//     (/dev/hidgN), turning the host into a USB keyboard/mouse
//   - LogDevice: logs reports, for bench testing and replays
//   - hid/modbus.Device: mirrors reports into Modbus holding registers
//
// The helpers Type, Click, Move and Scroll build the press/release report
// sequences the dispatcher needs on top of any Device.
package hid
