package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/internal/logging"
)

func newIndexCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "index FILE...",
		Short: "Record the element identifiers of ADM files in the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			out := cmd.OutOrStdout()
			for _, arg := range args {
				path, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("resolve %s: %w", arg, err)
				}
				doc, err := ctx.parseFile(path)
				if err != nil {
					return err
				}
				n, err := cat.Index(cmd.Context(), path, doc)
				if err != nil {
					return err
				}
				ctx.logger.Info("indexed",
					slog.String(logging.FieldFile, path),
					slog.Int("elements", n),
					slog.String("catalog", cat.Path()),
				)
				fmt.Fprintf(out, "%s: %d elements\n", path, n)
			}
			return nil
		},
	}
}

func newFindCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "find ID",
		Short: "List the indexed files that contain an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := ids.ParseAny(args[0])
			if err != nil {
				return err
			}
			cat, err := ctx.openCatalog()
			if err != nil {
				return err
			}
			defer cat.Close()

			entries, err := cat.Find(cmd.Context(), id.String())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintf(out, "No indexed files contain %s\n", id)
				return nil
			}
			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{e.Path, e.Kind, e.ElementID, e.Name})
			}
			fmt.Fprintln(out, renderTable([]string{"Path", "Kind", "ID", "Name"}, rows, nil))
			return nil
		},
	}
}
