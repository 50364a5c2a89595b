package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sparques/irhid/hid"
)

func newDescriptorCmd() *cobra.Command {
	var (
		kind   string
		asText bool
	)

	cmd := &cobra.Command{
		Use:   "descriptor",
		Short: "Write the HID report descriptor for a gadget function's report_desc",
		Example: "  irhid descriptor --kind keyboard > functions/hid.usb0/report_desc\n" +
			"  irhid descriptor --kind consumer --hex",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := hid.ReportDescriptor(kind)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asText {
				_, err = fmt.Fprintln(out, hex.EncodeToString(desc))
			} else {
				_, err = out.Write(desc)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&kind, "kind", hid.KindKeyboard, "report kind: keyboard, mouse or consumer")
	cmd.Flags().BoolVar(&asText, "hex", false, "print the descriptor as hex")
	return cmd
}
