//go:build tinygo && rp2040

// irloop is bench firmware for an RP2040 board with an IR LED on GPIO15 and a
// demodulating receiver on GPIO16 facing it. It transmits held button presses
// and prints what the receiver decodes, so the decoder can be checked without
// a remote.
package main

import (
	"machine"
	"time"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/nec"
)

const (
	addr    = 0x1A
	repeats = 3
)

func main() {
	tx, err := irhid.NewTxDevice(machine.GPIO15, irhid.TxConfig{})
	if err != nil {
		println("tx:", err.Error())
		return
	}

	// The scheduler is cooperative, so the sampler sleeps between ticks to let
	// the transmitter goroutine run.
	line := irhid.NewMachineLine(machine.GPIO16)
	dec := nec.NewDecoder(irhid.NewSampler(line, irhid.SleepClock{}), addr)

	go func() {
		for cmd := byte(0); ; cmd = (cmd + 1) % byte(nec.ResultRepeat) {
			d := tx.SendHold(nec.Frame{Addr: addr, Cmd: cmd}, nec.Repeat{}, nec.RepeatPeriod, repeats)
			println("sent", cmd, "in", d.String())
			time.Sleep(time.Second)
		}
	}()

	for {
		if !dec.Available() {
			time.Sleep(irhid.Tick)
			continue
		}
		println("decoded", dec.Read().String())
	}
}
