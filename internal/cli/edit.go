package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mithrel/opsboard/internal/editor"
	"github.com/mithrel/opsboard/internal/render"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit the documentation in $EDITOR and report how it will render",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			path := app.Cfg.GetString("docs.path")
			if len(args) == 1 {
				path = args[0]
			}
			final, changed, err := editor.EditDocument(cmd.Context(), path)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !changed {
				_, _ = fmt.Fprintf(out, "No changes to %s\n", path)
				return nil
			}
			if max := app.Cfg.GetInt64("docs.max_bytes"); int64(len(final)) > max {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s is %d bytes, over docs.max_bytes (%d)\n", path, len(final), max)
			}
			_, _ = fmt.Fprintf(out, "Saved %s: %s\n", path, summarize(app.Renderer, string(final)))
			return nil
		},
	}
}

// summarize counts headings and tables, and flags pipe blocks that will
// stay plain text.
func summarize(r *render.Renderer, content string) string {
	var tables, plainPipes int
	for _, reg := range r.Inspect(content) {
		switch {
		case reg.Table:
			tables++
		case reg.Kind == "candidate":
			plainPipes++
		}
	}
	s := fmt.Sprintf("%d headings, %d tables", len(render.Headings(content)), tables)
	if plainPipes > 0 {
		s += fmt.Sprintf(", %d pipe blocks without a separator row", plainPipes)
	}
	return s
}
