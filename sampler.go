package irhid

// Sampler measures how long a Line holds its level, in Ticks.
type Sampler struct {
	line  Line
	clock Clock
}

// NewSampler returns a Sampler reading line and waiting on clock. A nil clock
// means SpinClock.
func NewSampler(line Line, clock Clock) *Sampler {
	if clock == nil {
		clock = SpinClock{}
	}
	return &Sampler{
		line:  line,
		clock: clock,
	}
}

// Available reports whether the line is asserted (low), which means a
// transmission may be starting.
func (s *Sampler) Available() bool {
	return !s.line.Get()
}

// WaitChange records the current level and counts Ticks until the level
// differs from it. It returns the count (1..timeout) or 0 if the level held for
// timeout Ticks.
func (s *Sampler) WaitChange(timeout uint8) uint8 {
	level := s.line.Get()
	for dur := uint8(1); ; dur++ {
		s.clock.Sleep(Tick)
		if s.line.Get() != level {
			return dur
		}
		if dur >= timeout {
			return 0
		}
	}
}

// Err returns the line's read error for lines that can fail, such as a
// revoked GPIO request.
func (s *Sampler) Err() error {
	if el, ok := s.line.(interface{ Err() error }); ok {
		return el.Err()
	}
	return nil
}
