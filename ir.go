// Package irhid turns a demodulating IR receiver on a single input line into
// HID actions. The root package holds the timing primitives everything else
// builds on: the Line and Clock abstractions and the polled Sampler.
package irhid

import (
	"time"
)

const (
	// Freq38Khz is the most commonly used frequency for IR remotes
	Freq38Khz = 38000

	// Tick is the sampling period of the Sampler. All protocol thresholds are
	// expressed as counts of Ticks.
	Tick = 100 * time.Microsecond
)

// TimePair encodes two durations: how long the carrier is on (mark), then how
// long it is off (space). On the receiver side a mark drives the line low.
type TimePair [2]time.Duration

// FrameMarshaller defines an interface for marshalling data to slice of TimePairs
type FrameMarshaller interface {
	MarshalFrame() []TimePair
}

// Line is a single digital input. Get reports true when the line is high.
//
// Demodulating receivers such as the TSOP4838 idle high (pulled up) and pull
// the line low while a carrier is received.
type Line interface {
	Get() bool
}

// Clock blocks the caller for a duration.
type Clock interface {
	Sleep(d time.Duration)
}

// SpinClock busy-waits on the monotonic clock. Sleeps at Tick granularity are
// far below what the scheduler can honour, so the sampler spins instead.
type SpinClock struct{}

func (SpinClock) Sleep(d time.Duration) {
	start := time.Now()
	for time.Since(start) < d {
	}
}

// SleepClock defers to time.Sleep. It is fine for coarse waits such as the
// idle poll interval or the hold time of a mouse click.
type SleepClock struct{}

func (SleepClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// Span returns the total duration covered by pairs.
func Span(pairs []TimePair) (total time.Duration) {
	for _, p := range pairs {
		total += p[0] + p[1]
	}
	return
}

// Hold returns what a remote sends while a button is held: first, then n
// repeat codes. Each transmission starts period after the previous one
// started; one that overruns period is followed immediately.
func Hold(first, repeat FrameMarshaller, period time.Duration, n int) []TimePair {
	pairs := first.MarshalFrame()
	last := Span(pairs)
	for i := 0; i < n; i++ {
		if last < period {
			pairs[len(pairs)-1][1] += period - last
		}
		rep := repeat.MarshalFrame()
		last = Span(rep)
		pairs = append(pairs, rep...)
	}
	return pairs
}
