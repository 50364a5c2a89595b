package hid

import (
	"encoding/hex"

	"github.com/rs/zerolog"
)

// LogDevice accepts every report and logs it.
type LogDevice struct {
	logger zerolog.Logger
	buf    [KeyboardReportSize]byte
}

func NewLogDevice(logger zerolog.Logger) *LogDevice {
	return &LogDevice{logger: logger.With().Str("component", "hid").Logger()}
}

func (d *LogDevice) WriteKeyboard(r *KeyboardReport) error {
	n := r.MarshalTo(d.buf[:])
	d.logger.Info().
		Str("report", "keyboard").
		Uint8("modifiers", r.Modifiers).
		Hex("keys", r.Keys[:]).
		Str("raw", hex.EncodeToString(d.buf[:n])).
		Msg("report")
	return nil
}

func (d *LogDevice) WriteMouse(r *MouseReport) error {
	n := r.MarshalTo(d.buf[:])
	d.logger.Info().
		Str("report", "mouse").
		Uint8("buttons", r.Buttons).
		Int8("x", r.X).
		Int8("y", r.Y).
		Int8("wheel", r.Wheel).
		Str("raw", hex.EncodeToString(d.buf[:n])).
		Msg("report")
	return nil
}

func (d *LogDevice) WriteConsumer(r *ConsumerReport) error {
	n := r.MarshalTo(d.buf[:])
	d.logger.Info().
		Str("report", "consumer").
		Uint16("usage", r.Usage).
		Str("raw", hex.EncodeToString(d.buf[:n])).
		Msg("report")
	return nil
}
