package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ourshop/shop/internal/metrics"
)

// newHTTPServer applies the timeouts shared by the API and metrics listeners.
func newHTTPServer(host string, port int) *http.Server {
	return &http.Server{
		Addr:              net.JoinHostPort(host, strconv.Itoa(port)),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// listenAndServe blocks until server stops. A graceful shutdown is not an error.
func listenAndServe(server *http.Server, name string, logger *slog.Logger) error {
	logger.Info("starting "+name, slog.String("addr", server.Addr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	return nil
}

// MetricsServer exposes the Prometheus scrape endpoint on its own port so it can
// stay off the public listener.
type MetricsServer struct {
	server *http.Server
	logger *slog.Logger
}

// NewMetricsServer creates a MetricsServer. /metrics is only routed when a
// provider is given.
func NewMetricsServer(
	host string,
	port int,
	logger *slog.Logger,
	metricsProvider *metrics.Provider,
) *MetricsServer {
	router := gin.New()
	router.Use(gin.Recovery())

	if metricsProvider != nil {
		router.GET("/metrics", gin.WrapH(metricsProvider.Handler()))
	}

	server := newHTTPServer(host, port)
	server.Handler = router

	return &MetricsServer{server: server, logger: logger}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *MetricsServer) GetHandler() http.Handler {
	return s.server.Handler
}

// Start blocks serving scrapes until Shutdown.
func (s *MetricsServer) Start(ctx context.Context) error {
	return listenAndServe(s.server, "metrics server", s.logger)
}

// Shutdown gracefully shuts down the metrics HTTP server.
func (s *MetricsServer) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down metrics server")
	return s.server.Shutdown(ctx)
}
