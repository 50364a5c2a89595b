package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/capture"
	"github.com/sparques/irhid/dispatch"
	"github.com/sparques/irhid/hid"
	"github.com/sparques/irhid/internal/cliconfig"
	"github.com/sparques/irhid/nec"
	"github.com/sparques/irhid/sim"
)

// tracingSource logs every decode result with the virtual time it ended at.
type tracingSource struct {
	dec  *nec.Decoder
	line *sim.Line
	log  zerolog.Logger
	n    int
}

func (s *tracingSource) Available() bool { return s.dec.Available() }

func (s *tracingSource) Read() nec.Result {
	res := s.dec.Read()
	s.n++
	s.log.Info().
		Dur("at", s.line.Now()).
		Stringer("result", res).
		Msg("decoded")
	return res
}

func newReplayCmd(a *app) *cobra.Command {
	var send bool

	cmd := &cobra.Command{
		Use:   "replay FILE",
		Short: "Decode and dispatch a mode2 or ir-ctl capture in virtual time",
		Long: `Replay reads a raw capture made with mode2 or ir-ctl, plays it through the
decoder at simulated speed and dispatches the results. Reports are logged
unless --send is given, which writes them to the configured output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			if !send {
				a.cfg.OutputBackend = cliconfig.OutputLog
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open capture: %w", err)
			}
			pairs, err := capture.Parse(f)
			f.Close()
			if err != nil {
				return err
			}

			keymap, err := a.keymap()
			if err != nil {
				return err
			}

			var dev hid.Device
			closeDev := func() {}
			if send {
				if dev, closeDev, err = openOutput(a.cfg, a.log); err != nil {
					return err
				}
			} else {
				dev = hid.NewLogDevice(a.log)
			}
			defer closeDev()

			// idle lead-in so the first mark is seen as a fresh activation
			line := sim.NewDelayed(time.Millisecond, pairs...)
			src := &tracingSource{
				dec:  nec.NewDecoder(irhid.NewSampler(line, line), a.cfg.Address),
				line: line,
				log:  a.log,
			}
			d := dispatch.New(dev, keymap, dispatch.WithLogger(a.log), dispatch.WithClock(line))

			for !line.Done() {
				if err := d.Poll(src); err != nil {
					a.log.Warn().Err(err).Msg("output failed")
				}
			}
			a.log.Info().
				Int("pairs", len(pairs)).
				Int("transmissions", src.n).
				Dur("duration", line.Now()).
				Msg("replay finished")
			return nil
		},
	}
	cmd.Flags().BoolVar(&send, "send", false, "write reports to the configured output instead of logging them")
	return cmd
}
