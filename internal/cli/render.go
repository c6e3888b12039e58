package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mithrel/opsboard/internal/config"
	"github.com/mithrel/opsboard/internal/docs"
	"github.com/mithrel/opsboard/internal/present"
)

func newRenderCmd() *cobra.Command {
	var formatFlag string
	var section string
	var indent bool
	var noPager bool

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render documentation to HTML, JSON or the terminal",
		Long: "Render a Markdown document. Without an argument the configured docs.path is used; " +
			"\"-\" reads from stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			mode, ok := present.ParseMode(formatFlag)
			if !ok {
				return fmt.Errorf("unknown format %q (want html, page, json, pretty or tui)", formatFlag)
			}

			doc, err := loadDocument(cmd, args)
			if err != nil {
				return err
			}
			if section != "" {
				sec, err := docs.FindSection(doc.Content, section)
				if err != nil {
					return err
				}
				doc.Content = sec.Markdown
			}

			out := cmd.OutOrStdout()
			opts := present.Options{
				Mode:       mode,
				JSONIndent: indent,
				Render:     config.RenderOptions(app.Cfg),
				Style:      app.Cfg.GetString("preview.style"),
				Width:      previewWidth(out, app.Cfg.GetInt("preview.width")),
			}
			if mode != present.ModePretty || noPager {
				return present.RenderDocument(cmd.Context(), out, doc, opts)
			}
			return withPager(cmd.Context(), out, cmd.ErrOrStderr(), func(w io.Writer) error {
				return present.RenderDocument(cmd.Context(), w, doc, opts)
			})
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "html", "output format: html|page|json|pretty|tui")
	cmd.Flags().StringVarP(&section, "section", "s", "", "render only the section under this heading")
	cmd.Flags().BoolVar(&indent, "indent", false, "indent JSON output")
	cmd.Flags().BoolVar(&noPager, "no-pager", false, "do not page pretty output")

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"html", "page", "json", "pretty", "tui"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("section", completeSections)
	return cmd
}
