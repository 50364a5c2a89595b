//go:build tinygo

package irhid

import (
	. "machine"
)

// MachineLine is a Line backed by a microcontroller pin.
type MachineLine struct {
	pin Pin
}

// NewMachineLine configures pin as an input with the internal pull-up enabled
// and returns it as a Line. Receivers with a built-in pull-up work either way.
func NewMachineLine(pin Pin) *MachineLine {
	pin.Configure(PinConfig{Mode: PinInputPullup})
	return &MachineLine{pin: pin}
}

func (ml *MachineLine) Get() bool {
	return ml.pin.Get()
}
