// Package sim replays mark/space timings as a virtual input line.
//
// A Line is both an irhid.Line and an irhid.Clock: sleeping on it advances
// its virtual time, so a decoder driven by it runs instantly and
// deterministically.
package sim

import (
	"time"

	"github.com/sparques/irhid"
)

type edge struct {
	at  time.Duration
	low bool
}

// Line is an idle-high line whose level is scripted by TimePairs.
type Line struct {
	edges []edge
	next  int
	low   bool
	now   time.Duration
}

// New returns a Line that starts with the first mark of pairs at time zero.
func New(pairs ...irhid.TimePair) *Line {
	return NewDelayed(0, pairs...)
}

// NewDelayed returns a Line that stays idle for delay before playing pairs.
func NewDelayed(delay time.Duration, pairs ...irhid.TimePair) *Line {
	l := &Line{}
	l.Append(delay, pairs...)
	l.advance()
	return l
}

// Append schedules pairs to start gap after the last scheduled edge, or after
// the current time if nothing is pending.
func (l *Line) Append(gap time.Duration, pairs ...irhid.TimePair) {
	t := l.now
	if n := len(l.edges); n > 0 && l.edges[n-1].at > t {
		t = l.edges[n-1].at
	}
	t += gap
	for _, p := range pairs {
		l.edges = append(l.edges, edge{at: t, low: true})
		t += p[0]
		l.edges = append(l.edges, edge{at: t, low: false})
		t += p[1]
	}
	// keep the final space so End covers it
	l.edges = append(l.edges, edge{at: t, low: false})
}

// Get implements irhid.Line.
func (l *Line) Get() bool {
	return !l.low
}

// Sleep implements irhid.Clock by advancing virtual time.
func (l *Line) Sleep(d time.Duration) {
	l.now += d
	l.advance()
}

// Now returns the virtual time.
func (l *Line) Now() time.Duration {
	return l.now
}

// End returns the time after which the line stays idle.
func (l *Line) End() time.Duration {
	if len(l.edges) == 0 {
		return 0
	}
	return l.edges[len(l.edges)-1].at
}

// Done reports whether every scheduled edge has been played.
func (l *Line) Done() bool {
	return l.next >= len(l.edges)
}

func (l *Line) advance() {
	for l.next < len(l.edges) && l.edges[l.next].at <= l.now {
		l.low = l.edges[l.next].low
		l.next++
	}
}
