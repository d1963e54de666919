package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jacoelho/adm/document"
	"github.com/jacoelho/adm/ids"
	"github.com/jacoelho/adm/model"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var summaryOnly bool

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Show element counts and the element table of an ADM file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := ctx.parseFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderCounts(doc))
			if summaryOnly {
				return nil
			}
			fmt.Fprintln(out, renderElements(doc))
			return nil
		},
	}

	cmd.Flags().BoolVar(&summaryOnly, "summary", false, "Only print element counts")
	return cmd
}

func renderCounts(doc *document.Document) string {
	rows := make([][]string, 0, len(ids.Kinds()))
	for _, kind := range ids.Kinds() {
		if kind == ids.KindBlockFormat {
			continue
		}
		rows = append(rows, []string{kind.Element(), strconv.Itoa(doc.Count(kind))})
	}
	return renderTable([]string{"Kind", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
}

func renderElements(doc *document.Document) string {
	elements := doc.Elements()
	rows := make([][]string, 0, len(elements))
	for _, el := range elements {
		rows = append(rows, []string{
			el.ID().Kind.Element(),
			el.ID().String(),
			el.Name(),
			strconv.Itoa(len(model.Edges(el))),
			strconv.Itoa(blockCount(el)),
		})
	}
	return renderTable(
		[]string{"Kind", "ID", "Name", "References", "Blocks"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight},
	)
}

func blockCount(el model.Element) int {
	if cf, ok := el.(*model.ChannelFormat); ok {
		return len(cf.Blocks())
	}
	return 0
}
