//go:build tinygo

package irhid

import (
	. "machine"
	"time"

	"github.com/sparques/pwm"
)

// TxConfig tunes a TxDevice. Zero values select the defaults.
type TxConfig struct {
	// Duty is the carrier duty cycle in percent. Default 33.
	Duty uint32
	// Clock times marks and spaces. Default SleepClock, which lets a receiver
	// goroutine run between edges.
	Clock Clock
}

// TxDevice drives an IR LED with a 38kHz carrier, for example to loop a
// transmitter back into the receiver on the bench.
type TxDevice struct {
	pgroup pwm.Group
	ch     uint8
	duty   uint32
	clock  Clock
}

// NewTxDevice sets pin up as a PWM output with the carrier switched off.
func NewTxDevice(pin Pin, cfg TxConfig) (*TxDevice, error) {
	if cfg.Duty == 0 || cfg.Duty > 100 {
		cfg.Duty = 33
	}
	if cfg.Clock == nil {
		cfg.Clock = SleepClock{}
	}

	pin.Configure(PinConfig{Mode: PinPWM})
	pgroup := pwm.Get(pin)
	pgroup.Configure(PWMConfig{Period: uint64(time.Second) / Freq38Khz})
	ch, err := pgroup.Channel(pin)
	if err != nil {
		return nil, err
	}
	pgroup.Set(ch, 0)

	return &TxDevice{
		pgroup: pgroup,
		ch:     ch,
		duty:   pgroup.Top() * cfg.Duty / 100,
		clock:  cfg.Clock,
	}, nil
}

// Send emits pairs and returns the time they occupied on the wire.
func (tx *TxDevice) Send(pairs []TimePair) time.Duration {
	for _, p := range pairs {
		tx.pgroup.Set(tx.ch, tx.duty)
		tx.clock.Sleep(p[0])
		tx.pgroup.Set(tx.ch, 0)
		tx.clock.Sleep(p[1])
	}
	return Span(pairs)
}

// SendFrame transmits one frame.
func (tx *TxDevice) SendFrame(fm FrameMarshaller) time.Duration {
	return tx.Send(fm.MarshalFrame())
}

// SendHold transmits first followed by n repeat codes on period, as a remote
// does while a button is held.
func (tx *TxDevice) SendHold(first, repeat FrameMarshaller, period time.Duration, n int) time.Duration {
	return tx.Send(Hold(first, repeat, period, n))
}
