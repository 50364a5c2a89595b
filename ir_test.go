package irhid

import (
	"errors"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

// stepLine goes high after low ticks of its own clock.
type stepLine struct {
	low   int
	ticks int
	reads int
}

func (l *stepLine) Get() bool {
	l.reads++
	return l.ticks >= l.low
}

func (l *stepLine) Sleep(d time.Duration) {
	l.ticks += int(d / Tick)
}

func TestWaitChange(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		low     int
		timeout uint8
		want    uint8
	}{
		{low: 1, timeout: 10, want: 1},
		{low: 7, timeout: 10, want: 7},
		{low: 10, timeout: 10, want: 10},
		{low: 11, timeout: 10, want: 0},
		{low: 254, timeout: 255, want: 254},
		{low: 300, timeout: 255, want: 0},
	}
	for _, tt := range tests {
		l := &stepLine{low: tt.low}
		s := NewSampler(l, l)
		c.Assert(s.Available(), qt.IsTrue)
		c.Assert(s.WaitChange(tt.timeout), qt.Equals, tt.want, qt.Commentf("low for %d ticks", tt.low))
		if tt.want == 0 {
			c.Assert(l.ticks, qt.Equals, int(tt.timeout))
		}
	}
}

// brokenLine is a stepLine whose reads fail.
type brokenLine struct {
	stepLine
	err error
}

func (l *brokenLine) Err() error { return l.err }

func TestSamplerErr(t *testing.T) {
	c := qt.New(t)
	c.Assert(NewSampler(&stepLine{}, nil).Err(), qt.IsNil)

	l := &brokenLine{}
	s := NewSampler(l, l)
	c.Assert(s.Err(), qt.IsNil)
	l.err = errors.New("no such device")
	c.Assert(s.Err(), qt.ErrorMatches, "no such device")
}

func TestSpan(t *testing.T) {
	c := qt.New(t)
	c.Assert(Span(nil), qt.Equals, time.Duration(0))
	c.Assert(Span([]TimePair{{9 * time.Millisecond, 4500 * time.Microsecond}, {time.Millisecond, 0}}), qt.Equals, 14500*time.Microsecond)
}

func TestClocks(t *testing.T) {
	c := qt.New(t)
	for _, clock := range []Clock{SpinClock{}, SleepClock{}} {
		start := time.Now()
		clock.Sleep(2 * time.Millisecond)
		c.Assert(time.Since(start) >= 2*time.Millisecond, qt.IsTrue)
	}
	c.Assert(NewSampler(&stepLine{}, nil).clock, qt.Equals, Clock(SpinClock{}))
}

type pairsFrame []TimePair

func (f pairsFrame) MarshalFrame() []TimePair {
	return append([]TimePair(nil), f...)
}

func TestHold(t *testing.T) {
	c := qt.New(t)
	ms := time.Millisecond
	first := pairsFrame{{9 * ms, 4 * ms}, {ms, 0}}
	repeat := pairsFrame{{9 * ms, 2 * ms}, {ms, 0}}

	c.Assert(Hold(first, repeat, 100*ms, 0), qt.DeepEquals, []TimePair{{9 * ms, 4 * ms}, {ms, 0}})

	pairs := Hold(first, repeat, 100*ms, 2)
	c.Assert(pairs, qt.DeepEquals, []TimePair{
		{9 * ms, 4 * ms}, {ms, 86 * ms},
		{9 * ms, 2 * ms}, {ms, 88 * ms},
		{9 * ms, 2 * ms}, {ms, 0},
	})
	c.Assert(Span(pairs[:2]), qt.Equals, 100*ms)

	// an overrunning transmission is followed without a gap
	c.Assert(Hold(first, repeat, 10*ms, 1), qt.DeepEquals, []TimePair{
		{9 * ms, 4 * ms}, {ms, 0},
		{9 * ms, 2 * ms}, {ms, 0},
	})
}
