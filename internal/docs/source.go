// Package docs loads the Markdown documentation shown by the dashboard and
// answers outline and section queries against it.
package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/mithrel/opsboard/pkg/api"
)

var (
	ErrNotFound  = errors.New("documentation file not found")
	ErrTooLarge  = errors.New("documentation exceeds size limit")
	ErrNoSection = errors.New("no matching section")
)

// Source supplies raw Markdown to the renderer.
type Source interface {
	Load(ctx context.Context) (api.Document, error)
}

// FileSource reads a Markdown file from disk on every Load, so edits show
// up without a restart.
type FileSource struct {
	Path     string
	MaxBytes int64
}

func NewFileSource(path string, maxBytes int64) *FileSource {
	return &FileSource{Path: path, MaxBytes: maxBytes}
}

func (s *FileSource) Load(ctx context.Context) (api.Document, error) {
	if err := ctx.Err(); err != nil {
		return api.Document{}, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return api.Document{}, fmt.Errorf("%w: %s", ErrNotFound, s.Path)
		}
		return api.Document{}, fmt.Errorf("open documentation: %w", err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return api.Document{}, fmt.Errorf("stat documentation: %w", err)
	}
	if st.IsDir() {
		return api.Document{}, fmt.Errorf("%w: %s is a directory", ErrNotFound, s.Path)
	}
	content, err := readLimited(f, s.MaxBytes)
	if err != nil {
		return api.Document{}, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return api.Document{Path: s.Path, Content: content, LastModified: st.ModTime()}, nil
}

// ReaderSource serves a document read once from r, e.g. stdin.
type ReaderSource struct {
	Name     string
	R        io.Reader
	MaxBytes int64
}

func (s *ReaderSource) Load(ctx context.Context) (api.Document, error) {
	if err := ctx.Err(); err != nil {
		return api.Document{}, err
	}
	content, err := readLimited(s.R, s.MaxBytes)
	if err != nil {
		return api.Document{}, fmt.Errorf("read %s: %w", s.Name, err)
	}
	return api.Document{Path: s.Name, Content: content, LastModified: time.Now()}, nil
}

// readLimited reads all of r, failing with ErrTooLarge past max bytes.
// A max of zero or less means no limit.
func readLimited(r io.Reader, max int64) (string, error) {
	if max <= 0 {
		b, err := io.ReadAll(r)
		return string(b), err
	}
	b, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return "", err
	}
	if int64(len(b)) > max {
		return "", fmt.Errorf("%w (%d bytes)", ErrTooLarge, max)
	}
	return string(b), nil
}
