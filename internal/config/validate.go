package config

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/viper"
)

var knownTLSModes = map[string]bool{"off": true, "file": true, "acme": true, "self-signed": true}

var knownPreviewStyles = map[string]bool{
	"auto": true, "ascii": true, "dark": true, "dracula": true,
	"light": true, "notty": true, "pink": true, "tokyo-night": true,
}

// CheckConfigValidity reports every problem found in v at once.
func CheckConfigValidity(v *viper.Viper) error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if strings.TrimSpace(v.GetString("docs.path")) == "" {
		add("docs.path is required")
	}
	if v.GetInt64("docs.max_bytes") <= 0 {
		add("docs.max_bytes must be greater than 0")
	}
	if class := v.GetString("render.container_class"); strings.ContainsAny(class, `"<>`) {
		add("render.container_class contains invalid characters: %q", class)
	}
	if addr := strings.TrimSpace(v.GetString("http_addr")); addr == "" {
		add("http_addr is required")
	} else if _, _, err := net.SplitHostPort(addr); err != nil {
		add("http_addr is invalid: %v", err)
	}
	switch mode := v.GetString("tls.mode"); {
	case !knownTLSModes[mode]:
		add("tls.mode %q is not one of off, file, acme, self-signed", mode)
	case mode == "file" && (v.GetString("tls.cert_file") == "" || v.GetString("tls.key_file") == ""):
		add("tls.cert_file and tls.key_file are required when tls.mode = file")
	case mode == "acme" && strings.TrimSpace(v.GetString("tls.domain")) == "":
		add("tls.domain is required when tls.mode = acme")
	case mode == "off" && v.GetBool("tls.http3"):
		add("tls.http3 requires tls.mode other than off")
	}
	if v.GetInt("preview.width") <= 0 {
		add("preview.width must be greater than 0")
	}
	if style := v.GetString("preview.style"); !knownPreviewStyles[style] {
		add("preview.style %q is not a known glamour style", style)
	}
	return errors.Join(errs...)
}
