package wire

import (
    "context"
    "testing"

    "github.com/spf13/viper"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/mithrel/opsboard/internal/config"
    "github.com/mithrel/opsboard/internal/keys"
)

func defaults() *viper.Viper {
    v := viper.New()
    for _, o := range config.GetConfigOptions() {
        v.SetDefault(o.Key, o.Default)
    }
    return v
}

func TestBuildAppRejectsInvalidConfig(t *testing.T) {
    v := defaults()
    v.Set("docs.max_bytes", 0)
    _, err := BuildApp(context.Background(), v)
    assert.ErrorContains(t, err, "docs.max_bytes")
}

func TestResolveToken(t *testing.T) {
    app, err := BuildApp(context.Background(), defaults())
    require.NoError(t, err)
    app.Tokens = &keys.ConfigStore{Tokens: map[string]string{keys.APITokenID: "kr"}}

    require.NoError(t, app.ResolveToken())
    assert.Empty(t, app.Cfg.GetString("auth.token"), "keyring is opt-in")

    app.Cfg.Set("auth.keyring", true)
    require.NoError(t, app.ResolveToken())
    assert.Equal(t, "kr", app.Cfg.GetString("auth.token"))

    app.Cfg.Set("auth.token", "configured")
    require.NoError(t, app.ResolveToken())
    assert.Equal(t, "configured", app.Cfg.GetString("auth.token"))
}
