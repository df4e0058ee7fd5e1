// Package server exposes the evaluator over HTTP: GET /eval for one
// expression, POST /eval for a batch, /health, /functions and a
// Prometheus /metrics endpoint.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/bignum/internal/config"
	apperrors "github.com/agbru/bignum/internal/errors"
	"github.com/agbru/bignum/internal/logging"
	"github.com/agbru/bignum/internal/metrics"
)

// Server is the HTTP front end of the evaluator.
type Server struct {
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	collector      *metrics.Collector
	rateLimiter    *RateLimiter
	securityConfig SecurityConfig
	timeouts       Timeouts
}

// NewServer returns a server evaluating with the settings of cfg; request
// parameters override the output and float settings per request.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server"),
		securityConfig: DefaultSecurityConfig(),
		timeouts:       DefaultServerTimeouts(cfg.Timeout),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.collector == nil {
		s.collector = metrics.NewCollector(true)
	}
	if s.rateLimiter == nil {
		s.rateLimiter = NewRateLimiter(DefaultRateLimiterConfig())
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/eval", s.wrapWithMiddleware(s.handleEval))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/functions", s.wrapWithMiddleware(s.handleFunctions))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}
	return s
}

// Handler returns the routed handler, middleware included.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// Start listens on the configured port until ctx is done or SIGINT/SIGTERM
// arrives, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		s.rateLimiter.Stop()
		return apperrors.WrapError(err, "server failed to start")
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer s.rateLimiter.Stop()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server",
			logging.String("addr", ln.Addr().String()),
			logging.String("thresholds", s.cfg.Thresholds().String()))
		s.logger.Println("Available endpoints:")
		s.logger.Println("  GET  /eval?expr=<expression>&radix=<2-36>&prec=<digits>&round=<mode>&algo=<strategy>")
		s.logger.Println("  POST /eval {\"exprs\": [...]}")
		s.logger.Println("  GET  /functions")
		s.logger.Println("  GET  /health")
		s.logger.Println("  GET  /metrics")

		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Println("Shutdown signal received, initiating graceful shutdown...")
	case err := <-errCh:
		return apperrors.WrapError(err, "server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return apperrors.WrapError(err, "failed to gracefully shutdown server")
	}
	s.logger.Println("Server stopped gracefully")
	return nil
}
