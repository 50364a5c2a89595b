package nec

import (
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irhid"
)

type rawTestData struct {
	Code    uint32
	Address uint16
	Command uint8
}

func splitTests(t *testing.T, tests []rawTestData, expectedValid bool) {
	c := qt.New(t)

	for _, data := range tests {
		name := fmt.Sprintf("Split:Code:%08x Addr:%04x Cmd:%02x",
			data.Code, data.Address, data.Command)
		c.Run(name, func(c *qt.C) {
			valid, addr, cmd := SplitRaw(data.Code)
			c.Assert(valid, qt.Equals, expectedValid)
			if valid {
				c.Assert(addr, qt.Equals, data.Address)
				c.Assert(cmd, qt.Equals, data.Command)
			}
		})
	}
}

func makeTests(t *testing.T, tests []rawTestData) {
	c := qt.New(t)

	for _, data := range tests {
		name := fmt.Sprintf("Make:Code:%08x Addr:%04x Cmd:%02x",
			data.Code, data.Address, data.Command)
		c.Run(name, func(c *qt.C) {
			c.Assert(MakeRaw(data.Address, data.Command), qt.Equals, data.Code)
		})
	}
}

func TestRawStandardAddr(t *testing.T) {
	tests := []rawTestData{
		{Code: 0xFF00FF00, Address: 0x0000, Command: 0x00},
		{Code: 0x00FFFF00, Address: 0x0000, Command: 0xFF},
		{Code: 0xFF0000FF, Address: 0x00FF, Command: 0x00},
		{Code: 0x00FF00FF, Address: 0x00FF, Command: 0xFF},
		{Code: 0xFF00DF20, Address: 0x0020, Command: 0x00},
		{Code: 0xFF0020DF, Address: 0x00DF, Command: 0x00},
		{Code: 0xDF20FF00, Address: 0x0000, Command: 0x20},
		{Code: 0x20DFFF00, Address: 0x0000, Command: 0xDF},
		{Code: 0xFE01E51A, Address: 0x001A, Command: 0x01},
	}
	splitTests(t, tests, true)
	makeTests(t, tests)
}

func TestRawExtendedAddr(t *testing.T) {
	tests := []rawTestData{
		{Code: 0xFF000100, Address: 0x0100, Command: 0x00},
		{Code: 0xFF00FE00, Address: 0xFE00, Command: 0x00},
		{Code: 0xFF00F00D, Address: 0xF00D, Command: 0x00},
	}
	splitTests(t, tests, true)
	makeTests(t, tests)
}

func TestSplitRawInvalidCommand(t *testing.T) {
	var tests []rawTestData
	for bit := 16; bit < 32; bit++ {
		// one wrong bit in either the command or its inverse
		tests = append(tests, rawTestData{Code: 0x00FFFF00 ^ uint32(1)<<bit})
	}
	splitTests(t, tests, false)
}

func TestMarshalFrame(t *testing.T) {
	c := qt.New(t)

	pairs := Frame{Addr: 0x1A, Cmd: 0x01}.MarshalFrame()
	c.Assert(pairs, qt.HasLen, 34)
	c.Assert(pairs[0], qt.Equals, StartPair)
	c.Assert(pairs[33], qt.Equals, TrailPair)

	// address low 0x1A, LSB first
	want := []irhid.TimePair{ZeroPair, OnePair, ZeroPair, OnePair, OnePair, ZeroPair, ZeroPair, ZeroPair}
	c.Assert(pairs[1:9], qt.DeepEquals, want)

	// command 0x01 then 0xFE
	c.Assert(pairs[17], qt.Equals, OnePair)
	c.Assert(pairs[25], qt.Equals, ZeroPair)
	for _, p := range pairs[18:25] {
		c.Assert(p, qt.Equals, ZeroPair)
	}
	for _, p := range pairs[26:33] {
		c.Assert(p, qt.Equals, OnePair)
	}
}

func TestMarshalRepeat(t *testing.T) {
	c := qt.New(t)
	pairs := Repeat{}.MarshalFrame()
	c.Assert(pairs, qt.DeepEquals, []irhid.TimePair{RepeatPair, TrailPair})
	c.Assert(irhid.Span(pairs), qt.Equals, LeadMark+RepeatSpace+TrailMark)
}
