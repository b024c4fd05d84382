// Package api serves the word-verification HTTP endpoint, grounded on
// the teacher's internal/ui/server.go errgroup/chi wiring.
package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"golang.org/x/sync/errgroup"

	"github.com/darkcollective/relalg/pkg/verify"
	"github.com/darkcollective/relalg/pkg/vocab/vocabulary"
)

const lastVerificationSessionKey = "last_verification_body"

// Config holds everything the server needs to construct its routes.
type Config struct {
	Vocab         *vocabulary.Vocabulary
	Addr          string
	MaxDistance   int
	SessionSecret string
	Logger        *slog.Logger
	// Watch, when non-nil, is started alongside the HTTP listener under
	// the same errgroup and stopped when the server's context is
	// cancelled.
	Watch func(ctx context.Context) error
}

// Server exposes /verify, /verify/last and /healthz.
type Server struct {
	vocab        *vocabulary.Vocabulary
	addr         string
	maxDistance  int
	sessionStore *sessions.CookieStore
	logger       *slog.Logger
	watch        func(ctx context.Context) error
}

// New constructs a Server from cfg.
func New(cfg Config) *Server {
	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.MaxAge(86400 * 30)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	return &Server{
		vocab:        cfg.Vocab,
		addr:         cfg.Addr,
		maxDistance:  cfg.MaxDistance,
		sessionStore: store,
		logger:       cfg.Logger,
		watch:        cfg.Watch,
	}
}

// Serve starts the HTTP listener and, if configured, the vocabulary
// watcher, both under one cancellable errgroup. It blocks until ctx is
// cancelled or either goroutine errors.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting verify server", "addr", s.addr)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.watch != nil {
		eg.Go(func() error {
			return s.watch(egctx)
		})
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Debug("shutting down verify server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Handler returns the server's HTTP handler without starting a listener,
// for use in tests and by callers that want to embed the routes in a
// larger mux.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)
	s.routes(r)
	return r
}

func (s *Server) routes(r chi.Router) {
	r.Get("/healthz", s.handleHealthz)
	r.Post("/verify", s.handleVerify)
	r.Get("/verify/last", s.handleVerifyLast)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	if session, err := s.sessionStore.Get(r, "relalg-verify"); err == nil {
		session.Values[lastVerificationSessionKey] = string(body)
		if err := session.Save(r, w); err != nil {
			s.logger.Warn("failed to save verify session", "error", err)
		}
	} else {
		s.logger.Warn("failed to load verify session", "error", err)
	}

	report := verify.Report(s.vocab, string(body), s.maxDistance)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(report))
}

func (s *Server) handleVerifyLast(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionStore.Get(r, "relalg-verify")
	if err != nil {
		http.Error(w, "no session", http.StatusNotFound)
		return
	}
	last, ok := session.Values[lastVerificationSessionKey].(string)
	if !ok {
		http.Error(w, "no prior verification request", http.StatusNotFound)
		return
	}
	report := verify.Report(s.vocab, last, s.maxDistance)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(report))
}
