package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jacoelho/adm"
	"github.com/jacoelho/adm/internal/logging"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var (
		output    string
		structure string
		defaults  bool
		common    bool
	)

	cmd := &cobra.Command{
		Use:   "convert FILE",
		Short: "Re-serialize an ADM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.parseFile(args[0])
			if err != nil {
				return err
			}

			opts := ctx.writerOptions()
			if cmd.Flags().Changed("structure") {
				s, err := adm.ParseStructure(structure)
				if err != nil {
					return err
				}
				opts = opts.WithStructure(s)
			}
			if cmd.Flags().Changed("defaults") {
				opts = opts.WithDefaultValues(defaults)
			}
			opts = opts.WithCommonDefinitions(common)

			if output == "" || output == "-" {
				return adm.Write(cmd.OutOrStdout(), doc, opts)
			}
			if err := adm.WriteFile(output, doc, opts); err != nil {
				return err
			}
			ctx.logger.Info("converted",
				slog.String(logging.FieldFile, args[0]),
				slog.String("output", output),
				slog.String("structure", opts.Structure().String()),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&structure, "structure", "", "Wrapper structure: ebucore, itu or bare")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "Write default values for unset optional fields")
	cmd.Flags().BoolVar(&common, "include-common-definitions", false, "Also write common definition elements")
	return cmd
}
