package nec

import (
	"fmt"
	"time"

	"github.com/sparques/irhid"
)

// Result is the outcome of one Decoder.Read: a command byte, Repeat or Fail.
type Result uint8

const (
	// ResultRepeat means the remote is still holding the previous button.
	ResultRepeat Result = 0xFE
	// ResultFail covers timeouts, malformed frames, broken complements and
	// frames addressed to other devices.
	ResultFail Result = 0xFF
)

// Command returns the command byte and whether r carries one.
func (r Result) Command() (byte, bool) {
	return byte(r), r < ResultRepeat
}

func (r Result) String() string {
	switch r {
	case ResultRepeat:
		return "repeat"
	case ResultFail:
		return "fail"
	}
	return fmt.Sprintf("0x%02X", uint8(r))
}

func ticks(d time.Duration) uint8 {
	return uint8(d / irhid.Tick)
}

// Classification windows, in sampler ticks. Each window leaves room for a
// couple hundred us of receiver jitter around the nominal NEC timings.
var (
	leadTimeout   = ticks(10 * time.Millisecond)   // 100
	pauseTimeout  = ticks(5500 * time.Microsecond) // 55
	pauseMin      = ticks(1900 * time.Microsecond) // 19, below is garbage
	frameMin      = ticks(3500 * time.Microsecond) // 35, below is a repeat code
	markTimeout   = ticks(1100 * time.Microsecond) // 11
	markMin       = ticks(300 * time.Microsecond)  // 3
	bitTimeout    = ticks(2100 * time.Microsecond) // 21
	bitSpaceMin   = ticks(300 * time.Microsecond)  // 3
	oneSpaceAbove = ticks(1100 * time.Microsecond) // 11, longer spaces are ones
)

// Decoder reads NEC frames from a Sampler. It keeps no state between calls.
type Decoder struct {
	sampler *irhid.Sampler
	addr    uint16
}

// NewDecoder returns a Decoder that only accepts frames for addr. For standard
// remotes addr is the 8-bit device address; for extended remotes it is the
// 16-bit address with the second byte in the high half.
func NewDecoder(sampler *irhid.Sampler, addr uint16) *Decoder {
	return &Decoder{
		sampler: sampler,
		addr:    addr,
	}
}

// Address returns the address the Decoder accepts.
func (d *Decoder) Address() uint16 {
	return d.addr
}

// Err returns the underlying line's read error, if any.
func (d *Decoder) Err() error {
	return d.sampler.Err()
}

// Available reports whether the line is active.
func (d *Decoder) Available() bool {
	return d.sampler.Available()
}

// Read decodes one transmission starting at the current line activation. It
// blocks until the transmission completes or one of the timeouts expires.
func (d *Decoder) Read() Result {
	var buf [4]byte

	if !d.sampler.Available() {
		return ResultFail
	}
	if d.sampler.WaitChange(leadTimeout) == 0 {
		return ResultFail
	}

	pause := d.sampler.WaitChange(pauseTimeout)
	if pause < pauseMin {
		return ResultFail
	}
	if pause < frameMin {
		if !d.mark() {
			return ResultFail
		}
		return ResultRepeat
	}

	for i := range buf {
		b, ok := d.readByte()
		if !ok {
			return ResultFail
		}
		buf[i] = b
	}

	if !d.mark() {
		return ResultFail
	}

	return d.check(buf)
}

func (d *Decoder) check(buf [4]byte) Result {
	addrLow, addrHigh, cmd, invCmd := buf[0], buf[1], buf[2], buf[3]
	if cmd != ^invCmd {
		return ResultFail
	}
	if MakeAddress(addrLow, addrHigh) != d.addr {
		return ResultFail
	}
	if cmd >= byte(ResultRepeat) {
		// would be mistaken for a sentinel
		return ResultFail
	}
	return Result(cmd)
}

// mark measures a short burst and reports whether it was long enough.
func (d *Decoder) mark() bool {
	return d.sampler.WaitChange(markTimeout) >= markMin
}

func (d *Decoder) readByte() (byte, bool) {
	var b byte
	for i := 0; i < 8; i++ {
		b >>= 1
		if !d.mark() {
			return 0, false
		}
		space := d.sampler.WaitChange(bitTimeout)
		if space < bitSpaceMin {
			return 0, false
		}
		if space > oneSpaceAbove {
			b |= 0x80
		}
	}
	return b, true
}
