package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/opsboard/internal/render"
)

func newTocCmd() *cobra.Command {
	var lines bool
	cmd := &cobra.Command{
		Use:   "toc [file|-]",
		Short: "List the headings of a document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, h := range render.Headings(doc.Content) {
				indent := strings.Repeat("  ", h.Level-1)
				if lines {
					_, _ = fmt.Fprintf(out, "%4d  %s%s\n", h.Line+1, indent, h.Title)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s%s\n", indent, h.Title)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&lines, "line-numbers", "n", false, "prefix headings with their line number")
	return cmd
}
