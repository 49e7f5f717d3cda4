package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"agentoid/internal/application/port/input"
	"agentoid/internal/application/port/output"
	"agentoid/internal/domain/entity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"
)

//go:embed index.html
var indexPage []byte

const (
	shutdownTimeout = 10 * time.Second
	maxRequestBody  = 64 << 10

	DefaultMaxConns = 64

	failurePrefix = "Error processing your request "
)

type askRequest struct {
	Question string `json:"question"`
}

type askResponse struct {
	RequestID  string            `json:"request_id"`
	Answer     string            `json:"answer"`
	Transcript entity.Transcript `json:"transcript"`
}

type Server struct {
	// MaxConns caps concurrent connections; each question can hold one for
	// several completion round trips.
	MaxConns int

	asker     input.Asker
	logger    output.LoggerPort
	accessLog zerolog.Logger
}

func NewServer(asker input.Asker, logger output.LoggerPort, accessLog zerolog.Logger) *Server {
	return &Server{
		MaxConns:  DefaultMaxConns,
		asker:     asker,
		logger:    logger,
		accessLog: accessLog,
	}
}

// NewAccessLogger returns the zerolog logger used for per-request access
// lines.
func NewAccessLogger(level string) zerolog.Logger {
	return httplog.NewLogger("agentoid", httplog.Options{
		JSON:     true,
		Concise:  true,
		LogLevel: level,
	})
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(s.accessLog))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/ask", s.handleAsk)

	return r
}

// Run listens on addr and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts at most MaxConns connections at a time from ln until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Web shell listening", "addr", ln.Addr().String(), "maxConns", s.MaxConns)
		err := srv.Serve(netutil.LimitListener(ln, s.MaxConns))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down web shell")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	body := http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	resp, err := s.asker.Ask(r.Context(), req.Question)
	if err != nil {
		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			l := httplog.LogEntry(r.Context())
			l.Error().Err(err).Msg("ask failed")
		}
		writeJSON(w, status, body)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{
		RequestID:  resp.RequestID,
		Answer:     resp.Output,
		Transcript: resp.Transcript,
	})
}

func errorResponse(err error) (int, map[string]string) {
	var inputErr *entity.UserInputError
	switch {
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, map[string]string{"warning": inputErr.Reason}
	case errors.Is(err, entity.ErrInitialization):
		return http.StatusServiceUnavailable, map[string]string{"error": failurePrefix + err.Error()}
	case errors.Is(err, entity.ErrCompletion):
		return http.StatusBadGateway, map[string]string{"error": failurePrefix + err.Error()}
	default:
		return http.StatusInternalServerError, map[string]string{"error": failurePrefix + err.Error()}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
