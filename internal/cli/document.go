package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mithrel/opsboard/internal/config"
	"github.com/mithrel/opsboard/internal/docs"
	"github.com/mithrel/opsboard/pkg/api"
)

// loadDocument reads the file named by args[0], stdin for "-", or the
// configured docs.path when no argument is given.
func loadDocument(cmd *cobra.Command, args []string) (api.Document, error) {
	app := getApp(cmd)
	src := app.Docs
	if len(args) > 0 {
		max := app.Cfg.GetInt64("docs.max_bytes")
		if args[0] == "-" {
			src = &docs.ReaderSource{Name: "stdin", R: cmd.InOrStdin(), MaxBytes: max}
		} else {
			src = docs.NewFileSource(args[0], max)
		}
	}
	return src.Load(cmd.Context())
}

// completeSections offers heading titles of the configured document.
func completeSections(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	v := viper.New()
	if f := cmd.Flag("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
	}
	if err := config.Load(context.Background(), v); err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	path := v.GetString("docs.path")
	if len(args) > 0 && args[0] != "-" {
		path = args[0]
	}
	doc, err := docs.NewFileSource(path, v.GetInt64("docs.max_bytes")).Load(context.Background())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return docs.MatchTitles(doc.Content, toComplete, 20), cobra.ShellCompDirectiveNoFileComp
}
