// nec implements the NEC pulse-distance IR protocol: frame encoding, address
// handling and a polled decoder built on irhid.Sampler.
//
// NEC protocol references
// https://www.sbprojects.net/knowledge/ir/nec.php
// https://techdocs.altium.com/display/FPGA/NEC+Infrared+Transmission+Protocol
package nec

import (
	"time"

	"github.com/sparques/irhid"
)

const (
	Unit         = 562500 * time.Nanosecond // 562.5 us
	LeadMark     = Unit * 16                // 9 ms
	LeadSpace    = Unit * 8                 // 4.5 ms
	RepeatSpace  = Unit * 4                 // 2.25 ms
	BitMark      = Unit                     // 562.5 us
	ZeroSpace    = Unit                     // 562.5 us
	OneSpace     = Unit * 3                 // 1.687 ms
	TrailMark    = Unit                     // 562.5 us
	RepeatPeriod = Unit * 192               // 108 ms
)

// Frame is one NEC transmission. Addr is either an 8-bit address, sent with
// its complement, or a 16-bit extended address.
type Frame struct {
	Addr uint16
	Cmd  byte
}

var (
	StartPair  = irhid.TimePair{LeadMark, LeadSpace}
	RepeatPair = irhid.TimePair{LeadMark, RepeatSpace}
	ZeroPair   = irhid.TimePair{BitMark, ZeroSpace}
	OnePair    = irhid.TimePair{BitMark, OneSpace}
	// the space after the trailing mark is the line going idle
	TrailPair = irhid.TimePair{TrailMark, 0}
)

// MarshalFrame implements irhid.FrameMarshaller.
func (f Frame) MarshalFrame() []irhid.TimePair {
	return MarshalRaw(MakeRaw(f.Addr, f.Cmd))
}

// MarshalRaw encodes 32 bits of payload, least significant bit first. Use it
// to send frames MarshalFrame cannot produce, such as ones with a broken
// command complement.
func MarshalRaw(raw uint32) []irhid.TimePair {
	out := make([]irhid.TimePair, 34)

	// start of frame
	out[0] = StartPair

	for bit := 0; bit < 32; bit++ {
		if (raw>>bit)&1 == 1 {
			out[bit+1] = OnePair
		} else {
			out[bit+1] = ZeroPair
		}
	}

	out[33] = TrailPair

	return out
}

// Repeat is the code a remote sends every RepeatPeriod while a button is held.
type Repeat struct{}

// MarshalFrame implements irhid.FrameMarshaller.
func (Repeat) MarshalFrame() []irhid.TimePair {
	return []irhid.TimePair{RepeatPair, TrailPair}
}

// SplitRaw breaks a raw NEC code into its parts. valid is false if the command
// and its inverse do not match.
func SplitRaw(raw uint32) (valid bool, addr uint16, cmd byte) {
	addrLow := byte(raw)
	addrHigh := byte(raw >> 8)
	cmd = byte(raw >> 16)
	invCmd := byte(raw >> 24)
	return cmd == ^invCmd, MakeAddress(addrLow, addrHigh), cmd
}

// MakeRaw assembles a raw NEC code. Bytes go out in the order
// address low, address high, command, inverse command.
func MakeRaw(addr uint16, cmd byte) uint32 {
	addrLow, addrHigh := SplitAddress(addr)
	return uint32(^cmd)<<24 | uint32(cmd)<<16 | uint32(addrHigh)<<8 | uint32(addrLow)
}

// SplitAddress returns the two address bytes to transmit. Addresses that fit in
// 8 bits are sent with their complement as the high byte.
func SplitAddress(addr uint16) (addrLow, addrHigh byte) {
	addrLow = byte(addr)
	addrHigh = byte(addr >> 8)
	if addrHigh == 0 {
		addrHigh = ^addrLow
	}
	return addrLow, addrHigh
}

// MakeAddress is the inverse of SplitAddress.
func MakeAddress(addrLow, addrHigh byte) uint16 {
	if addrLow+addrHigh == 0xFF {
		// a complemented high byte is indistinguishable from the standard
		// 8-bit form, so it can never be an extended address
		return uint16(addrLow)
	}
	return uint16(addrHigh)<<8 | uint16(addrLow)
}
