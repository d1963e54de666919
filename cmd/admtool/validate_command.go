package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jacoelho/adm/internal/logging"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check that ADM files parse into a complete element graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			errOut := cmd.ErrOrStderr()
			failed := 0
			for _, path := range args {
				doc, err := ctx.parseFile(path)
				if err != nil {
					failed++
					ctx.logger.Debug("validation failed", slog.String(logging.FieldFile, path), slog.Any("error", err))
					fmt.Fprintln(errOut, err)
					fmt.Fprintf(errOut, "%s fails to validate\n", path)
					continue
				}
				ctx.logger.Debug("validated", slog.String(logging.FieldFile, path), slog.Int("elements", doc.Len()))
				fmt.Fprintf(out, "%s validates\n", path)
			}
			if failed > 0 {
				return errReported
			}
			return nil
		},
	}
}
