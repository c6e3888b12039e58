package cli

import "github.com/spf13/cobra"

func newCompletionCmd() *cobra.Command {
    cmd := &cobra.Command{
        Use:   "completion",
        Short: "Generate shell completion scripts",
    }

    cmd.AddCommand(&cobra.Command{
        Use:   "bash",
        Short: "Generate Bash completions",
        RunE: func(cmd *cobra.Command, args []string) error {
            return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
        },
    })
    cmd.AddCommand(&cobra.Command{
        Use:   "zsh",
        Short: "Generate Zsh completions",
        RunE: func(cmd *cobra.Command, args []string) error {
            return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
        },
    })
    cmd.AddCommand(&cobra.Command{
        Use:   "fish",
        Short: "Generate Fish completions",
        RunE: func(cmd *cobra.Command, args []string) error {
            return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
        },
    })

    return cmd
}

