package server

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/caddyserver/certmagic"
	"github.com/spf13/viper"
)

// TLS modes accepted by tls.mode.
const (
	TLSOff        = "off"
	TLSFile       = "file"
	TLSACME       = "acme"
	TLSSelfSigned = "self-signed"
)

// CertMagicConfig configures automatic certificate management with CertMagic.
type CertMagicConfig struct {
	Domain     string
	Email      string
	StorageDir string // optional; defaults to XDG or ~/.cache/opsboard/certmagic
	CA         string // optional; defaults to Let's Encrypt prod
}

// TLSConfig builds the listener TLS config selected by tls.mode. The
// returned handler answers ACME HTTP-01 challenges and is nil unless the
// acme mode is in use. Both are nil when TLS is off.
func TLSConfig(ctx context.Context, v *viper.Viper) (*tls.Config, http.Handler, error) {
	switch mode := v.GetString("tls.mode"); mode {
	case "", TLSOff:
		return nil, nil, nil
	case TLSFile:
		conf, err := BuildFileTLS(v.GetString("tls.cert_file"), v.GetString("tls.key_file"), time.Now())
		return conf, nil, err
	case TLSSelfSigned:
		conf, err := SelfSignedTLS(time.Now())
		return conf, nil, err
	case TLSACME:
		return BuildCertMagicTLS(ctx, CertMagicConfig{
			Domain:     v.GetString("tls.domain"),
			Email:      v.GetString("tls.email"),
			StorageDir: v.GetString("tls.storage_dir"),
			CA:         v.GetString("tls.ca"),
		})
	default:
		return nil, nil, fmt.Errorf("unknown tls.mode %q", mode)
	}
}

// BuildCertMagicTLS provisions or loads certificates via CertMagic.
func BuildCertMagicTLS(ctx context.Context, cfg CertMagicConfig) (*tls.Config, http.Handler, error) {
	if cfg.Domain == "" {
		return nil, nil, errors.New("tls.domain is required for acme")
	}

	cm := certmagic.NewDefault()
	if cfg.StorageDir == "" {
		if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
			cfg.StorageDir = filepath.Join(xdg, "opsboard", "certmagic")
		} else {
			home, _ := os.UserHomeDir()
			cfg.StorageDir = filepath.Join(home, ".cache", "opsboard", "certmagic")
		}
	}
	if err := os.MkdirAll(cfg.StorageDir, 0o700); err != nil {
		return nil, nil, fmt.Errorf("cert storage: %w", err)
	}
	cm.Storage = &certmagic.FileStorage{Path: cfg.StorageDir}

	issuer := certmagic.NewACMEIssuer(cm, certmagic.ACMEIssuer{
		CA:     ifEmpty(cfg.CA, certmagic.LetsEncryptProductionCA),
		Email:  cfg.Email,
		Agreed: true,
	})
	cm.Issuers = []certmagic.Issuer{issuer}

	if err := cm.ManageSync(ctx, []string{cfg.Domain}); err != nil {
		return nil, nil, err
	}

	conf := cm.TLSConfig()
	conf.MinVersion = tls.VersionTLS12
	return conf, issuer.HTTPChallengeHandler(http.NotFoundHandler()), nil
}

func ifEmpty(s, d string) string {
	if s == "" {
		return d
	}
	return s
}

// BuildFileTLS loads a certificate from PEM files and rejects chains that
// are not valid at now.
func BuildFileTLS(certFile, keyFile string, now time.Time) (*tls.Config, error) {
	if certFile == "" || keyFile == "" {
		return nil, errors.New("tls.cert_file and tls.key_file are required")
	}

	c, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("load keypair: %w", err)
	}

	for i, b := range c.Certificate {
		cert, err := x509.ParseCertificate(b)
		if err != nil {
			return nil, fmt.Errorf("invalid certificate at index %d: %w", i, err)
		}
		if now.Before(cert.NotBefore) {
			return nil, fmt.Errorf("certificate not yet valid (starts %s)", cert.NotBefore)
		}
		if now.After(cert.NotAfter) {
			return nil, fmt.Errorf("certificate expired on %s", cert.NotAfter)
		}
	}

	return &tls.Config{
		Certificates: []tls.Certificate{c},
		NextProtos:   []string{"h2", "http/1.1"},
		MinVersion:   tls.VersionTLS12,
	}, nil
}

// SelfSignedPEM creates a throwaway certificate for localhost, valid for a
// day around now.
func SelfSignedPEM(now time.Time) (certPEM, keyPEM []byte, err error) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, err
	}
	templ := &x509.Certificate{
		SerialNumber:          big.NewInt(now.UnixNano()),
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageKeyEncipherment | x509.KeyUsageDigitalSignature,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
		BasicConstraintsValid: true,
		DNSNames:              []string{"localhost"},
	}
	der, err := x509.CreateCertificate(rand.Reader, templ, templ, &key.PublicKey, key)
	if err != nil {
		return nil, nil, err
	}
	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, nil, err
	}
	certPEM = pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
	keyPEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: pkcs8})
	return certPEM, keyPEM, nil
}

// SelfSignedTLS is for local use only. Prefer trusted certs in production.
func SelfSignedTLS(now time.Time) (*tls.Config, error) {
	certPEM, keyPEM, err := SelfSignedPEM(now)
	if err != nil {
		return nil, err
	}
	c, err := tls.X509KeyPair(certPEM, keyPEM)
	if err != nil {
		return nil, err
	}
	return &tls.Config{
		Certificates: []tls.Certificate{c},
		NextProtos:   []string{"h2", "http/1.1"},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
