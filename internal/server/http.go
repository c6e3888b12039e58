package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mithrel/opsboard/internal/config"
	"github.com/mithrel/opsboard/internal/docs"
	"github.com/mithrel/opsboard/internal/present/format"
	"github.com/mithrel/opsboard/internal/render"
	"github.com/mithrel/opsboard/pkg/api"
)

// Server serves the documentation endpoints backed by a docs.Source.
type Server struct {
	cfg      *viper.Viper
	src      docs.Source
	renderer *render.Renderer
	log      *log.Logger
	now      func() time.Time
}

// New builds a server rendering with r. A nil r uses the render.* keys of cfg.
func New(cfg *viper.Viper, src docs.Source, r *render.Renderer, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if r == nil {
		r = render.New(config.RenderOptions(cfg))
	}
	return &Server{cfg: cfg, src: src, renderer: r, log: logger, now: time.Now}
}

// Router returns an http.Handler with registered routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/api/readme", s.guard(s.handleReadme))
	mux.HandleFunc("/api/readme/html", s.guard(s.handleReadmeHTML))
	mux.HandleFunc("/docs", s.guard(s.handleDocs))
	return mux
}

// Serve runs the HTTP server on l until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	s.log.Printf("serving docs from %s on http://%s", s.cfg.GetString("docs.path"), l.Addr())
	return serveHTTP(ctx, l, s.Router())
}

func serveHTTP(ctx context.Context, l net.Listener, h http.Handler) error {
	srv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()
	err := srv.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// guard allows only GET and enforces the bearer token when one is configured.
func (s *Server) guard(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		tok := strings.TrimSpace(s.cfg.GetString("auth.token"))
		if tok != "" && !bearerMatches(r.Header.Get("Authorization"), tok) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// bearerMatches compares the presented bearer token in constant time.
func bearerMatches(header, tok string) bool {
	got, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), []byte(tok)) == 1
}

func noCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, resp api.ReadmeResponse) {
	noCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Printf("docs: write response: %v", err)
	}
}

func (s *Server) loadFailed(w http.ResponseWriter, err error) {
	s.log.Printf("docs: load failed: %v", err)
	s.writeJSON(w, http.StatusInternalServerError, api.ReadmeResponse{Error: err.Error()})
}

func (s *Server) handleReadme(w http.ResponseWriter, r *http.Request) {
	doc, err := s.src.Load(r.Context())
	if err != nil {
		s.loadFailed(w, err)
		return
	}
	resp := api.NewReadmeResponse(doc, s.now())
	resp.Content = doc.Content
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReadmeHTML(w http.ResponseWriter, r *http.Request) {
	doc, err := s.src.Load(r.Context())
	if err != nil {
		s.loadFailed(w, err)
		return
	}
	resp := api.NewReadmeResponse(doc, s.now())
	content := doc.Content
	if q := r.URL.Query().Get("section"); q != "" {
		sec, err := docs.FindSection(content, q)
		if err != nil {
			s.writeJSON(w, http.StatusNotFound, api.ReadmeResponse{Error: err.Error()})
			return
		}
		content = sec.Markdown
		resp.Section = sec.Heading.Title
	}
	resp.HTML = s.renderer.Render(content)
	s.writeJSON(w, http.StatusOK, resp)
}

// handleDocs serves a standalone page. A failed load shows an error block
// and never reaches the renderer.
func (s *Server) handleDocs(w http.ResponseWriter, r *http.Request) {
	noCache(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	doc, err := s.src.Load(r.Context())
	if err != nil {
		s.log.Printf("docs: load failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = format.WriteHTMLPage(w, "Documentation",
			fmt.Sprintf(`<div class="error">Error loading documentation: %s</div>`, html.EscapeString(err.Error())))
		return
	}
	if err := format.WriteHTMLPage(w, doc.Path, s.renderer.Render(doc.Content)); err != nil {
		s.log.Printf("docs: write page: %v", err)
	}
}
