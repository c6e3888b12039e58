package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Chdir(dir)
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	v := viper.New()
	require.NoError(t, Load(context.Background(), v))

	assert.Equal(t, "README.md", v.GetString("docs.path"))
	assert.Equal(t, ":8080", v.GetString("http_addr"))
	assert.True(t, v.GetBool("render.tables"))
	assert.NoError(t, CheckConfigValidity(v))

	opts := RenderOptions(v)
	assert.Equal(t, "markdown-content", opts.ContainerClass)
	assert.True(t, opts.Tables)
	assert.False(t, opts.EscapeHTML)
}

func TestLoadFileThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[docs]\npath = \"docs/guide.md\"\n[render]\ntables = false\n"), 0o600))
	t.Setenv("OPSBOARD_RENDER_TABLES", "true")
	t.Setenv("OPSBOARD_HTTP_ADDR", "127.0.0.1:9000")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, Load(context.Background(), v))

	assert.Equal(t, "docs/guide.md", v.GetString("docs.path"))
	assert.True(t, v.GetBool("render.tables"), "env should override file")
	assert.Equal(t, "127.0.0.1:9000", v.GetString("http_addr"))
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[docs\npath = "), 0o600))

	v := viper.New()
	v.SetConfigFile(path)
	assert.Error(t, Load(context.Background(), v))
}

func TestCheckConfigValidityInvalid(t *testing.T) {
	v := viper.New()
	v.Set("docs.path", " ")
	v.Set("docs.max_bytes", 0)
	v.Set("render.container_class", `x"><script>`)
	v.Set("http_addr", "8080")
	v.Set("preview.width", 0)
	v.Set("preview.style", "neon")
	v.Set("tls.mode", "file")

	err := CheckConfigValidity(v)
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{
		"docs.path is required",
		"docs.max_bytes must be greater than 0",
		"render.container_class contains invalid characters",
		"http_addr is invalid",
		"preview.width must be greater than 0",
		`preview.style "neon" is not a known glamour style`,
		"tls.cert_file and tls.key_file are required when tls.mode = file",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestCheckConfigValidityTLS(t *testing.T) {
	base := func() *viper.Viper {
		v := viper.New()
		applyDefaults(v)
		return v
	}

	v := base()
	v.Set("tls.http3", true)
	assert.ErrorContains(t, CheckConfigValidity(v), "tls.http3 requires")

	v = base()
	v.Set("tls.mode", "acme")
	assert.ErrorContains(t, CheckConfigValidity(v), "tls.domain is required")

	v.Set("tls.domain", "docs.example.com")
	v.Set("tls.http3", true)
	assert.NoError(t, CheckConfigValidity(v))

	v = base()
	v.Set("tls.mode", "magic")
	assert.ErrorContains(t, CheckConfigValidity(v), `tls.mode "magic"`)
}

func TestRenderDefaultTOMLRoundTrips(t *testing.T) {
	out := RenderDefaultTOML()
	assert.True(t, strings.HasPrefix(out, "# opsboard configuration (TOML)\n"))
	assert.Contains(t, out, "[render]\n")
	assert.Contains(t, out, `container_class = "markdown-content"`)

	v := viper.New()
	v.SetConfigType("toml")
	require.NoError(t, v.ReadConfig(strings.NewReader(out)))
	for _, o := range GetConfigOptions() {
		assert.True(t, v.IsSet(o.Key), "missing %s", o.Key)
	}
	assert.Equal(t, 1<<20, v.GetInt("docs.max_bytes"))
}

func TestUpdateTOML(t *testing.T) {
	existing := "http_addr = \":9090\"\nlegacy = 1\n[docs]\npath = \"x.md\"\n"
	out, changed := UpdateTOML(existing)
	require.True(t, changed)

	assert.Contains(t, out, "http_addr = \":9090\"")
	assert.Contains(t, out, "# OUTDATED: option removed from config schema\n# legacy = 1")
	assert.Contains(t, out, "# Added by config update")
	assert.Contains(t, out, "max_bytes = 1048576")
	assert.Equal(t, 1, strings.Count(out, "path = "), "existing keys are not duplicated")

	again, changed := UpdateTOML(RenderDefaultTOML())
	assert.False(t, changed)
	assert.Equal(t, RenderDefaultTOML(), again)
}
