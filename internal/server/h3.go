package server

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"

	"github.com/quic-go/quic-go/http3"
)

// ServeTLS runs the server over TLS on l until ctx is cancelled. With
// withHTTP3 set, HTTP/3 is also served on the matching UDP address and
// advertised to TCP clients through Alt-Svc.
func (s *Server) ServeTLS(ctx context.Context, l net.Listener, conf *tls.Config, withHTTP3 bool) error {
	if conf == nil {
		return errors.New("missing TLS configuration")
	}
	handler := s.Router()
	addr := l.Addr().String()

	if withHTTP3 {
		pc, err := net.ListenPacket("udp", addr)
		if err != nil {
			return err
		}
		h3 := &http3.Server{
			Addr:      addr,
			Handler:   handler,
			TLSConfig: http3.ConfigureTLSConfig(conf.Clone()),
		}
		defer h3.Close()
		go func() {
			if err := h3.Serve(pc); err != nil && ctx.Err() == nil && !errors.Is(err, http.ErrServerClosed) {
				s.log.Printf("http3: %v", err)
			}
		}()
		handler = altSvc(h3, handler)
		s.log.Printf("serving docs over HTTP/3 on udp %s", pc.LocalAddr())
	}

	s.log.Printf("serving docs from %s on https://%s", s.cfg.GetString("docs.path"), addr)
	return serveHTTP(ctx, tls.NewListener(l, conf), handler)
}

// ServeChallenges answers ACME HTTP-01 challenges on addr until ctx is
// cancelled.
func (s *Server) ServeChallenges(ctx context.Context, addr string, h http.Handler) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.log.Printf("answering ACME challenges on %s", l.Addr())
	return serveHTTP(ctx, l, h)
}

func altSvc(h3 *http3.Server, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = h3.SetQUICHeaders(w.Header())
		next.ServeHTTP(w, r)
	})
}
