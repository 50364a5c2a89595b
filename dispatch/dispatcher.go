// Package dispatch turns decoded NEC results into HID actions.
//
// A Dispatcher owns the last accepted command. Repeat codes resolve to it, so
// holding a volume button keeps adjusting the volume, while one-shot actions
// clear it and only fire once per press.
package dispatch

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/hid"
	"github.com/sparques/irhid/nec"
)

// Source is what a Dispatcher polls. *nec.Decoder implements it.
type Source interface {
	Available() bool
	Read() nec.Result
}

type Dispatcher struct {
	dev    hid.Device
	keymap atomic.Pointer[Keymap]
	last   nec.Result

	logger       zerolog.Logger
	clock        irhid.Clock
	pollInterval time.Duration
}

type Option func(*Dispatcher)

func WithLogger(l zerolog.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithClock sets the clock used for idle polling and click holds.
func WithClock(c irhid.Clock) Option {
	return func(d *Dispatcher) { d.clock = c }
}

// WithPollInterval sets how long Poll waits when the line is idle.
func WithPollInterval(i time.Duration) Option {
	return func(d *Dispatcher) { d.pollInterval = i }
}

// New returns a Dispatcher sending keymap's actions to dev.
func New(dev hid.Device, keymap Keymap, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		dev:          dev,
		last:         nec.ResultFail,
		logger:       zerolog.Nop(),
		clock:        irhid.SleepClock{},
		pollInterval: irhid.Tick,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger = d.logger.With().Str("component", "dispatch").Logger()
	d.SetKeymap(keymap)
	return d
}

// SetKeymap replaces the keymap with a copy of m. It is safe to call while
// Run is active.
func (d *Dispatcher) SetKeymap(m Keymap) {
	c := m.Clone()
	d.keymap.Store(&c)
}

// Keymap returns a copy of the active keymap.
func (d *Dispatcher) Keymap() Keymap {
	return d.keymap.Load().Clone()
}

// Last returns the command a repeat code would resolve to.
func (d *Dispatcher) Last() nec.Result {
	return d.last
}

// Handle applies one decode result.
func (d *Dispatcher) Handle(res nec.Result) error {
	if res == nec.ResultRepeat {
		res = d.last
		d.logger.Debug().Stringer("command", res).Msg("repeat")
	}
	d.last = res

	cmd, ok := res.Command()
	if !ok {
		return nil
	}
	a, ok := (*d.keymap.Load())[cmd]
	if !ok {
		d.logger.Debug().Stringer("command", res).Msg("unmapped command")
		return nil
	}
	if a.OneShot {
		d.last = nec.ResultFail
	}

	d.logger.Debug().
		Stringer("command", res).
		Stringer("action", a.Kind).
		Bool("one_shot", a.OneShot).
		Msg("dispatch")

	if err := a.Perform(d.dev, d.clock); err != nil {
		return fmt.Errorf("command %s: %w", res, err)
	}
	return nil
}

// Poll decodes and handles one transmission if the line is active, otherwise
// it waits one poll interval.
func (d *Dispatcher) Poll(src Source) error {
	if !src.Available() {
		if d.pollInterval > 0 {
			d.clock.Sleep(d.pollInterval)
		}
		return nil
	}
	return d.Handle(src.Read())
}

// Run polls src until ctx is done. Output errors are logged and do not stop
// the loop. If src has an Err method, a non-nil input error ends Run.
func (d *Dispatcher) Run(ctx context.Context, src Source) error {
	d.logger.Info().Int("keymap_entries", len(*d.keymap.Load())).Msg("dispatcher started")
	failing, _ := src.(interface{ Err() error })
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Poll(src); err != nil {
			d.logger.Warn().Err(err).Msg("output failed")
		}
		if failing == nil {
			continue
		}
		if err := failing.Err(); err != nil {
			d.logger.Error().Err(err).Msg("input failed")
			return fmt.Errorf("input: %w", err)
		}
	}
}
