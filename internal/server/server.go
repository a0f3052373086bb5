package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"guardian/internal/config"
	"guardian/internal/ingest"
	"guardian/internal/logging"
	"guardian/internal/mediastore"
	"guardian/internal/verifier"
)

// Server exposes the ingestion and verification pipeline over HTTP.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	store    *mediastore.Store
	ingestor *ingest.Service
	verifier *verifier.Engine
	daemon   *Daemon

	listener net.Listener
	server   *http.Server
}

// New wires the HTTP API around the pipeline components.
func New(
	cfg *config.Config,
	store *mediastore.Store,
	ingestor *ingest.Service,
	verifierEngine *verifier.Engine,
	daemon *Daemon,
	logger *slog.Logger,
) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if store == nil || ingestor == nil || verifierEngine == nil {
		return nil, errors.New("store, ingestor, and verifier are required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	srv := &Server{
		cfg:      cfg,
		logger:   logger.With(slog.String(logging.FieldComponent, "api")),
		store:    store,
		ingestor: ingestor,
		verifier: verifierEngine,
		daemon:   daemon,
	}

	token := cfg.Paths.APIToken
	mux := http.NewServeMux()
	mux.HandleFunc("/api/", authMiddleware(token, srv.handleRoot))
	mux.HandleFunc("/api/upload", authMiddleware(token, srv.handleUpload))
	mux.HandleFunc("/api/verify/", authMiddleware(token, srv.handleVerify))
	mux.HandleFunc("/api/media", authMiddleware(token, srv.handleMedia))
	mux.HandleFunc("/api/verifications", authMiddleware(token, srv.handleVerifications))
	mux.HandleFunc("/api/status", authMiddleware(token, srv.handleStatusChecks))
	mux.HandleFunc("/api/daemon", authMiddleware(token, srv.handleDaemon))
	mux.HandleFunc("/health", srv.handleHealth)

	srv.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return srv, nil
}

// Start begins serving on the configured bind address.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Paths.APIBind)
	if err != nil {
		return fmt.Errorf("api listen: %w", err)
	}
	s.listener = listener
	s.server.BaseContext = func(net.Listener) context.Context { return ctx }

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("api server error", slog.String("error", err.Error()))
		}
	}()

	s.logger.Info("api server listening", slog.String("bind", s.Addr()))
	return nil
}

// Addr returns the bound address, useful when the config requested port 0.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.cfg.Paths.APIBind
	}
	return s.listener.Addr().String()
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	timeout := time.Duration(s.cfg.Server.ShutdownTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Warn("encode response", slog.String("error", err.Error()))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
