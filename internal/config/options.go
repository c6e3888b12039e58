package config

import (
	"github.com/spf13/viper"

	"github.com/mithrel/opsboard/internal/render"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for default values and generator output.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "http_addr", Default: ":8080", Comment: "HTTP listen address for `opsboard serve`"},

		{Key: "docs.path", Default: "README.md", Comment: "Markdown file served by /api/readme and rendered by /docs"},
		{Key: "docs.max_bytes", Default: 1 << 20, Comment: "Refuse to load documentation larger than this many bytes"},

		{Key: "render.container_class", Default: render.DefaultContainerClass, Comment: "Class of the <div> wrapping rendered HTML"},
		{Key: "render.tables", Default: true, Comment: "Convert pipe tables to <table> markup"},
		{Key: "render.escape_html", Default: false, Comment: "Escape raw HTML in prose (code is always escaped)"},

		{Key: "auth.token", Default: "", Comment: "Bearer token required by the HTTP endpoints; empty disables auth"},
		{Key: "auth.keyring", Default: false, Comment: "Read the token from the system keyring when auth.token is empty (see `opsboard token`)"},

		{Key: "tls.mode", Default: "off", Comment: "TLS for `opsboard serve`: off, file, acme or self-signed"},
		{Key: "tls.cert_file", Default: "", Comment: "PEM certificate used when tls.mode = file"},
		{Key: "tls.key_file", Default: "", Comment: "PEM private key used when tls.mode = file"},
		{Key: "tls.domain", Default: "", Comment: "Domain to obtain a certificate for when tls.mode = acme"},
		{Key: "tls.email", Default: "", Comment: "ACME account email"},
		{Key: "tls.ca", Default: "", Comment: "ACME directory URL; empty uses Let's Encrypt"},
		{Key: "tls.storage_dir", Default: "", Comment: "Certificate cache; empty uses $XDG_CACHE_HOME/opsboard/certmagic"},
		{Key: "tls.challenge_addr", Default: ":80", Comment: "Address answering ACME HTTP-01 challenges"},
		{Key: "tls.http3", Default: false, Comment: "Also serve HTTP/3 over QUIC on the same port (requires TLS)"},

		{Key: "preview.style", Default: "dracula", Comment: "Glamour style for terminal previews (dark, light, dracula, notty)"},
		{Key: "preview.width", Default: 80, Comment: "Word wrap width for terminal previews"},
	}
}

// RenderOptions maps the render.* keys onto renderer options.
func RenderOptions(v *viper.Viper) render.Options {
	return render.Options{
		ContainerClass: v.GetString("render.container_class"),
		Tables:         v.GetBool("render.tables"),
		EscapeHTML:     v.GetBool("render.escape_html"),
	}
}
