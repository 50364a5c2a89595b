package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparques/irhid"
	"github.com/sparques/irhid/capture"
	"github.com/sparques/irhid/nec"
)

// encode returns a frame followed by repeats repeat codes, each starting one
// RepeatPeriod after the previous transmission.
func encode(addr uint16, cmd byte, repeats int) []irhid.TimePair {
	return irhid.Hold(nec.Frame{Addr: addr, Cmd: cmd}, nec.Repeat{}, nec.RepeatPeriod, repeats)
}

func newEncodeCmd(a *app) *cobra.Command {
	var (
		command uint8
		repeats int
	)

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the mode2 timings of a frame, for ir-ctl or replay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			if command >= uint8(nec.ResultRepeat) {
				return fmt.Errorf("command 0x%02X is reserved", command)
			}
			if repeats < 0 {
				return fmt.Errorf("repeat must not be negative")
			}
			return capture.Format(cmd.OutOrStdout(), encode(a.cfg.Address, command, repeats))
		},
	}
	cmd.Flags().Uint8Var(&command, "command", 0, "command byte")
	cmd.Flags().IntVar(&repeats, "repeat", 0, "number of repeat codes to append")
	if err := cmd.MarkFlagRequired("command"); err != nil {
		panic(err)
	}
	return cmd
}
