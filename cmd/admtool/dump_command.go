package main

import (
	"github.com/spf13/cobra"

	"github.com/jacoelho/adm/internal/dump"
)

func newDumpCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Export the element graph of an ADM file as YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := dump.ParseFormat(format)
			if err != nil {
				return err
			}
			doc, err := ctx.parseFile(args[0])
			if err != nil {
				return err
			}
			return dump.Write(cmd.OutOrStdout(), dump.Snapshot(doc), f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}
