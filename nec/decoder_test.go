package nec

import (
	"fmt"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/sim"
)

const testAddr = 0x1A

func decode(addr uint16, pairs ...irhid.TimePair) Result {
	line := sim.New(pairs...)
	return NewDecoder(irhid.NewSampler(line, line), addr).Read()
}

func us(n int) time.Duration {
	return time.Duration(n) * time.Microsecond
}

// tickFrame builds a frame whose every edge lands on a sampler tick, so
// measured lengths equal the nominal ones exactly.
func tickFrame(pause time.Duration, raw uint32) []irhid.TimePair {
	pairs := []irhid.TimePair{{us(9000), pause}}
	for bit := 0; bit < 32; bit++ {
		if (raw>>bit)&1 == 1 {
			pairs = append(pairs, irhid.TimePair{us(600), us(1700)})
		} else {
			pairs = append(pairs, irhid.TimePair{us(600), us(600)})
		}
	}
	return append(pairs, irhid.TimePair{us(600), 0})
}

func TestDecodeFrame(t *testing.T) {
	c := qt.New(t)

	c.Assert(decode(testAddr, Frame{Addr: testAddr, Cmd: 0x01}.MarshalFrame()...), qt.Equals, Result(0x01))

	for cmd := 0; cmd < int(ResultRepeat); cmd++ {
		f := Frame{Addr: testAddr, Cmd: byte(cmd)}
		c.Run(fmt.Sprintf("Cmd:%02x", cmd), func(c *qt.C) {
			res := decode(testAddr, f.MarshalFrame()...)
			got, ok := res.Command()
			c.Assert(ok, qt.IsTrue)
			c.Assert(got, qt.Equals, byte(cmd))
		})
	}
}

func TestDecodeExtendedAddress(t *testing.T) {
	c := qt.New(t)
	f := Frame{Addr: 0xF00D, Cmd: 0x42}
	c.Assert(decode(0xF00D, f.MarshalFrame()...), qt.Equals, Result(0x42))
	c.Assert(decode(0x0D, f.MarshalFrame()...), qt.Equals, ResultFail)
}

func TestDecodeWrongAddress(t *testing.T) {
	c := qt.New(t)
	for _, addr := range []uint16{0x00, 0x1B, 0xE5, 0x1A00, 0x1A1A} {
		f := Frame{Addr: addr, Cmd: 0x01}
		c.Assert(decode(testAddr, f.MarshalFrame()...), qt.Equals, ResultFail, qt.Commentf("addr %04x", addr))
	}
}

func TestDecodeBrokenComplement(t *testing.T) {
	c := qt.New(t)
	raw := MakeRaw(testAddr, 0x01)
	for bit := 16; bit < 32; bit++ {
		pairs := MarshalRaw(raw ^ 1<<bit)
		c.Assert(decode(testAddr, pairs...), qt.Equals, ResultFail, qt.Commentf("bit %d", bit))
	}
}

func TestDecodeSentinelCommands(t *testing.T) {
	c := qt.New(t)
	// valid complements, but the values collide with Repeat and Fail
	c.Assert(decode(testAddr, Frame{Addr: testAddr, Cmd: 0xFE}.MarshalFrame()...), qt.Equals, ResultFail)
	c.Assert(decode(testAddr, Frame{Addr: testAddr, Cmd: 0xFF}.MarshalFrame()...), qt.Equals, ResultFail)
}

func TestDecodeRepeat(t *testing.T) {
	c := qt.New(t)
	c.Assert(decode(testAddr, Repeat{}.MarshalFrame()...), qt.Equals, ResultRepeat)
	// the address is not part of a repeat code
	c.Assert(decode(0xBEEF, Repeat{}.MarshalFrame()...), qt.Equals, ResultRepeat)

	// repeat end mark too short
	c.Assert(decode(testAddr, RepeatPair, irhid.TimePair{us(200), 0}), qt.Equals, ResultFail)
	// no end mark at all
	c.Assert(decode(testAddr, RepeatPair), qt.Equals, ResultFail)
}

func TestDecodePauseWindows(t *testing.T) {
	c := qt.New(t)
	raw := MakeRaw(testAddr, 0x07)

	tests := []struct {
		pause int
		want  Result
	}{
		{pause: 1000, want: ResultFail},
		{pause: 1800, want: ResultFail},
		{pause: 1900, want: ResultRepeat},
		{pause: 2250, want: ResultRepeat},
		{pause: 3400, want: ResultRepeat},
		{pause: 3500, want: Result(0x07)},
		{pause: 4500, want: Result(0x07)},
		{pause: 5500, want: Result(0x07)},
		// no change before the pause timeout
		{pause: 5600, want: ResultFail},
	}
	for _, test := range tests {
		c.Run(fmt.Sprintf("Pause:%dus", test.pause), func(c *qt.C) {
			c.Assert(decode(testAddr, tickFrame(us(test.pause), raw)...), qt.Equals, test.want)
		})
	}
}

func TestDecodeLeadMark(t *testing.T) {
	c := qt.New(t)

	// idle line: nothing to decode
	c.Assert(decode(testAddr), qt.Equals, ResultFail)

	// a lead burst that outlasts the timeout
	pairs := Frame{Addr: testAddr, Cmd: 0x01}.MarshalFrame()
	pairs[0] = irhid.TimePair{us(12000), LeadSpace}
	c.Assert(decode(testAddr, pairs...), qt.Equals, ResultFail)

	// a short lead burst is accepted; only its end matters
	pairs[0] = irhid.TimePair{us(2000), LeadSpace}
	c.Assert(decode(testAddr, pairs...), qt.Equals, Result(0x01))
}

func TestDecodeNoise(t *testing.T) {
	c := qt.New(t)
	f := Frame{Addr: testAddr, Cmd: 0x01}
	for bit := 1; bit <= 32; bit++ {
		pairs := f.MarshalFrame()
		pairs[bit][1] = us(200)
		c.Assert(decode(testAddr, pairs...), qt.Equals, ResultFail, qt.Commentf("bit %d", bit-1))
	}
}

func TestDecodeShortMark(t *testing.T) {
	c := qt.New(t)
	f := Frame{Addr: testAddr, Cmd: 0x01}
	for bit := 1; bit <= 33; bit++ {
		pairs := f.MarshalFrame()
		pairs[bit][0] = us(200)
		c.Assert(decode(testAddr, pairs...), qt.Equals, ResultFail, qt.Commentf("pair %d", bit))
	}

	// missing trailing mark
	pairs := f.MarshalFrame()
	c.Assert(decode(testAddr, pairs[:33]...), qt.Equals, ResultFail)
}

func TestDecodeIdempotent(t *testing.T) {
	c := qt.New(t)
	pairs := Frame{Addr: testAddr, Cmd: 0x33}.MarshalFrame()

	line := sim.New(pairs...)
	line.Append(40*time.Millisecond, pairs...)
	d := NewDecoder(irhid.NewSampler(line, line), testAddr)

	first := d.Read()
	for !d.Available() && !line.Done() {
		line.Sleep(irhid.Tick)
	}
	second := d.Read()

	c.Assert(first, qt.Equals, Result(0x33))
	c.Assert(second, qt.Equals, first)
	c.Assert(decode(testAddr, pairs...), qt.Equals, first)
}

func TestReadByte(t *testing.T) {
	c := qt.New(t)

	byteLine := func(spaces ...int) *Decoder {
		var pairs []irhid.TimePair
		for _, s := range spaces {
			pairs = append(pairs, irhid.TimePair{us(600), us(s)})
		}
		pairs = append(pairs, irhid.TimePair{us(600), 0})
		line := sim.New(pairs...)
		return NewDecoder(irhid.NewSampler(line, line), testAddr)
	}

	tests := []struct {
		name   string
		spaces []int
		want   byte
		ok     bool
	}{
		{"zeros", []int{600, 600, 600, 600, 600, 600, 600, 600}, 0x00, true},
		{"ones", []int{1700, 1700, 1700, 1700, 1700, 1700, 1700, 1700}, 0xFF, true},
		{"lsb first", []int{1700, 600, 600, 600, 600, 600, 600, 600}, 0x01, true},
		{"msb", []int{600, 600, 600, 600, 600, 600, 600, 1700}, 0x80, true},
		// 11 ticks is still a zero, 12 is a one
		{"one boundary", []int{1100, 1200, 600, 600, 600, 600, 600, 600}, 0x02, true},
		{"longest one", []int{2100, 600, 600, 600, 600, 600, 600, 600}, 0x01, true},
		{"space timeout", []int{2200, 600, 600, 600, 600, 600, 600, 600}, 0, false},
		{"shortest space", []int{300, 600, 600, 600, 600, 600, 600, 600}, 0x00, true},
		{"space too short", []int{600, 600, 600, 200, 600, 600, 600, 600}, 0, false},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			b, ok := byteLine(test.spaces...).readByte()
			c.Assert(ok, qt.Equals, test.ok)
			c.Assert(b, qt.Equals, test.want)
		})
	}
}

func TestResultString(t *testing.T) {
	c := qt.New(t)
	c.Assert(ResultRepeat.String(), qt.Equals, "repeat")
	c.Assert(ResultFail.String(), qt.Equals, "fail")
	c.Assert(Result(0x0A).String(), qt.Equals, "0x0A")
}

func TestDecoderAccessors(t *testing.T) {
	c := qt.New(t)
	line := sim.New()
	d := NewDecoder(irhid.NewSampler(line, line), 0xF00D)
	c.Assert(d.Address(), qt.Equals, uint16(0xF00D))
	c.Assert(d.Err(), qt.IsNil)
}
