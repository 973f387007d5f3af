// Package httpapi is the out-of-core transport collaborator: it parses
// form-encoded trade/cancel requests, dispatches them to an engine.Registry,
// and renders the reference JSON responses. None of this is part of the
// matching engine itself (see internal/engine); it only consumes the
// engine's public Add/Cancel/Modify/Size/Depth operations.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"fenrir/internal/engine"
	"fenrir/internal/metrics"
)

const defaultDepthReportInterval = 5 * time.Second

// Server hosts the reference HTTP transport in front of a book registry.
// Its lifecycle follows the tomb.Tomb + zerolog idiom used elsewhere in this
// module for graceful shutdown, though the wire protocol here is HTTP rather
// than raw binary TCP framing.
type Server struct {
	address  string
	registry *engine.Registry
	metrics  *metrics.Collector
	reporter *DepthReporter

	httpServer *http.Server
	cancel     context.CancelFunc
}

// New builds a Server listening on address (e.g. "0.0.0.0:6060") and
// dispatching to registry.
func New(address string, registry *engine.Registry) *Server {
	s := &Server{
		address:  address,
		registry: registry,
		metrics:  metrics.Get(),
		reporter: NewDepthReporter(registry, defaultDepthReportInterval),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/trade", s.handleTrade)
	mux.HandleFunc("/cancel", s.handleCancel)
	mux.HandleFunc("/depth", s.handleDepth)
	mux.Handle("/metrics", metrics.Handler())

	s.httpServer = &http.Server{
		Addr:    address,
		Handler: mux,
	}
	return s
}

// Handler returns the server's HTTP handler, primarily for tests that want
// to drive it with httptest without binding a real listener.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Shutdown cancels the server's context, unwinding Run.
func (s *Server) Shutdown() {
	log.Info().Msg("server shutting down")
	if s.cancel != nil {
		s.cancel()
	}
}

// Run blocks serving HTTP and the depth reporter until ctx is cancelled or
// an unrecoverable error occurs.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	defer cancel()

	t, ctx := tomb.WithContext(ctx)

	t.Go(func() error {
		return s.reporter.Run(t)
	})

	t.Go(func() error {
		log.Info().Str("address", s.address).Msg("http server listening")
		err := s.httpServer.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	t.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelShutdown()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return t.Wait()
}
