package cli

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mithrel/opsboard/internal/server"
)

func newServeCmd() *cobra.Command {
	var listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation endpoints over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if listen != "" {
				app.Cfg.Set("http_addr", listen)
			}
			if err := app.ResolveToken(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			tlsConf, challenge, err := server.TLSConfig(ctx, app.Cfg)
			if err != nil {
				return err
			}
			l, err := net.Listen("tcp", app.Cfg.GetString("http_addr"))
			if err != nil {
				return err
			}
			srv := app.Server()
			if tlsConf == nil {
				return srv.Serve(ctx, l)
			}
			if challenge != nil {
				go func() {
					if err := srv.ServeChallenges(ctx, app.Cfg.GetString("tls.challenge_addr"), challenge); err != nil {
						app.Log.Printf("acme: %v", err)
					}
				}()
			}
			return srv.ServeTLS(ctx, l, tlsConf, app.Cfg.GetBool("tls.http3"))
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides http_addr)")
	return cmd
}
