package capture

import (
	"bytes"
	"strings"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/nec"
	"github.com/sparques/irhid/sim"
)

func us(n int) time.Duration {
	return time.Duration(n) * time.Microsecond
}

func TestParseMode2(t *testing.T) {
	c := qt.New(t)

	in := `Using driver default on device /dev/lirc0
Trying device: /dev/lirc0
space 16777215
pulse 9024
space 4481
pulse 580
space 552
pulse 300
pulse 280
space 1650
timeout 20000
pulse 590
`
	pairs, err := Parse(strings.NewReader(in))
	c.Assert(err, qt.IsNil)
	c.Assert(pairs, qt.DeepEquals, []irhid.TimePair{
		{us(9024), us(4481)},
		{us(580), us(552)},
		{us(580), us(21650)},
		{us(590), 0},
	})
}

func TestParseIrCtl(t *testing.T) {
	c := qt.New(t)

	pairs, err := Parse(strings.NewReader("+9000 -2250 +560\n# timeout 125000\n"))
	c.Assert(err, qt.IsNil)
	c.Assert(pairs, qt.DeepEquals, []irhid.TimePair{{us(9000), us(2250)}, {us(560), 0}})
}

func TestParseErrors(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		in  string
		err string
	}{
		{"pulse\n", "capture: syntax error: line 1: pulse without duration"},
		{"pulse 10\nblink 3\n", `capture: syntax error: line 2: unexpected "blink"`},
		{"+9000 -x\n", `capture: syntax error: line 1: bad duration "x"`},
		{"space -5\n", `capture: syntax error: line 1: bad duration "-5"`},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.in))
		c.Assert(err, qt.ErrorIs, ErrSyntax)
		c.Assert(err, qt.ErrorMatches, tt.err)
	}
}

func TestFormat(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(Format(&buf, nec.Repeat{}.MarshalFrame()), qt.IsNil)
	c.Assert(buf.String(), qt.Equals, "pulse 9000\nspace 2250\npulse 562\n")
}

func TestFormattedFrameDecodes(t *testing.T) {
	c := qt.New(t)

	var buf bytes.Buffer
	c.Assert(Format(&buf, nec.Frame{Addr: 0x1A, Cmd: 0x0C}.MarshalFrame()), qt.IsNil)
	pairs, err := Parse(&buf)
	c.Assert(err, qt.IsNil)
	c.Assert(pairs, qt.HasLen, 34)

	line := sim.New(pairs...)
	res := nec.NewDecoder(irhid.NewSampler(line, line), 0x1A).Read()
	c.Assert(res, qt.Equals, nec.Result(0x0C))
}
