package wire

import (
    "context"
    "log"
    "os"

    "github.com/spf13/viper"

    "github.com/mithrel/opsboard/internal/config"
    "github.com/mithrel/opsboard/internal/docs"
    "github.com/mithrel/opsboard/internal/keys"
    "github.com/mithrel/opsboard/internal/render"
    "github.com/mithrel/opsboard/internal/server"
)

// App aggregates the major services for easy injection.
type App struct {
    Cfg      *viper.Viper
    Log      *log.Logger
    Docs     docs.Source
    Renderer *render.Renderer
    Tokens   keys.TokenStore
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, cfg *viper.Viper) (*App, error) {
    if err := config.CheckConfigValidity(cfg); err != nil {
        return nil, err
    }
    logger := log.New(os.Stderr, "opsboard ", log.LstdFlags)
    app := &App{
        Cfg:      cfg,
        Log:      logger,
        Docs:     docs.NewFileSource(cfg.GetString("docs.path"), cfg.GetInt64("docs.max_bytes")),
        Renderer: render.New(config.RenderOptions(cfg)),
        Tokens:   &keys.KeyringStore{},
    }
    return app, nil
}

// ResolveToken fills auth.token from the keyring when auth.keyring is set
// and no token is configured.
func (a *App) ResolveToken() error {
    if !a.Cfg.GetBool("auth.keyring") {
        return nil
    }
    tok, err := keys.ResolveToken(a.Cfg.GetString("auth.token"), a.Tokens)
    if err != nil {
        return err
    }
    if tok == "" {
        a.Log.Printf("auth: no token in keyring; endpoints are unauthenticated")
    }
    a.Cfg.Set("auth.token", tok)
    return nil
}

// Server builds the documentation HTTP server over the app's source.
func (a *App) Server() *server.Server {
    return server.New(a.Cfg, a.Docs, a.Renderer, a.Log)
}
