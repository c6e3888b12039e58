package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mithrel/opsboard/internal/keys"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the API bearer token kept in the system keyring",
	}
	cmd.AddCommand(newTokenSetCmd())
	cmd.AddCommand(newTokenShowCmd())
	cmd.AddCommand(newTokenClearCmd())
	return cmd
}

func newTokenSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set [token]",
		Short: "Store a token (a random one is generated when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if !keys.KeyringAvailable() {
				return errors.New("no system keyring available; set auth.token instead")
			}
			var tok string
			if len(args) == 1 {
				tok = strings.TrimSpace(args[0])
			}
			if tok == "" {
				var err error
				if tok, err = keys.NewToken(); err != nil {
					return err
				}
			}
			if err := app.Tokens.Put(keys.APITokenID, tok); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tok)
			if !app.Cfg.GetBool("auth.keyring") {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "note: set auth.keyring = true for `opsboard serve` to use it")
			}
			return nil
		},
	}
}

func newTokenShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, err := getApp(cmd).Tokens.Get(keys.APITokenID)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}
}

func newTokenClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmAction("Remove the stored API token?",
				"Clients using it will get 401 once the server restarts.", yes); err != nil {
				return err
			}
			return getApp(cmd).Tokens.Delete(keys.APITokenID)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
