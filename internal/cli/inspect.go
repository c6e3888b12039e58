package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/opsboard/internal/ui"
)

func newInspectCmd() *cobra.Command {
	var interactive bool
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect [file|-]",
		Short: "Show how a document is split into plain, table and code regions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			regions := app.Renderer.Inspect(doc.Content)
			lines := strings.Split(strings.ReplaceAll(doc.Content, "\r\n", "\n"), "\n")

			switch {
			case asJSON:
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(regions)
			case interactive:
				return ui.RenderRegionsTable(cmd.Context(), regions, lines)
			default:
				_, err := fmt.Fprint(cmd.OutOrStdout(), ui.FormatRegions(regions, lines))
				return err
			}
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse regions in a table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print regions as JSON")
	return cmd
}
