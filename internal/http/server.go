// Package http provides the API server, its router and the shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	adminHTTP "github.com/ourshop/shop/internal/admin/http"
	cryptoHTTP "github.com/ourshop/shop/internal/crypto/http"
	customerHTTP "github.com/ourshop/shop/internal/customer/http"
	"github.com/ourshop/shop/internal/metrics"
	productHTTP "github.com/ourshop/shop/internal/product/http"
	purchaseHTTP "github.com/ourshop/shop/internal/purchase/http"
	supplierHTTP "github.com/ourshop/shop/internal/supplier/http"
	tagHTTP "github.com/ourshop/shop/internal/tag/http"
	userHTTP "github.com/ourshop/shop/internal/user/http"
)

// ReadinessChecker reports whether the credential cipher finished initialization.
type ReadinessChecker interface {
	Ready() bool
}

// RouterConfig holds the handlers and middleware settings used by SetupRouter.
type RouterConfig struct {
	UserHandler        *userHTTP.UserHandler
	CustomerHandler    *customerHTTP.CustomerHandler
	AdminHandler       *adminHTTP.AdminHandler
	KeyExchangeHandler *cryptoHTTP.KeyExchangeHandler
	ProductHandler     *productHTTP.ProductHandler
	SupplierHandler    *supplierHTTP.SupplierHandler
	TagHandler         *tagHTTP.TagHandler
	PurchaseHandler    *purchaseHTTP.PurchaseHandler

	// Cipher is checked by /ready.
	Cipher ReadinessChecker

	GinMode string

	CORSEnabled      bool
	CORSAllowOrigins string

	// MeterProvider enables the HTTP metrics middleware when not nil.
	MeterProvider    metric.MeterProvider
	MetricsNamespace string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int
}

// Server represents the HTTP server
type Server struct {
	db     *sql.DB
	cipher ReadinessChecker
	router *gin.Engine
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server. Call SetupRouter before Start.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: newHTTPServer(host, port),
	}
}

// SetupRouter registers middleware and every route of the API.
func (s *Server) SetupRouter(cfg RouterConfig) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	s.cipher = cfg.Cipher

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if cfg.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(cfg.MeterProvider, cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Sign-in and password reset are unauthenticated and share one per-IP budget.
	credentialGuard := func(c *gin.Context) { c.Next() }
	if cfg.RateLimitEnabled {
		credentialGuard = IPRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, s.logger)
	}

	v1 := router.Group("/v1")

	if h := cfg.KeyExchangeHandler; h != nil {
		keys := v1.Group("/keys")
		keys.GET("/session", h.SessionKeyHandler)
		keys.POST("/session/wrap", h.WrapSessionKeyHandler)
		keys.GET("/public", h.PublicKeyHandler)
	}

	if h := cfg.UserHandler; h != nil {
		users := v1.Group("/users")
		users.POST("", h.CreateHandler)
		users.GET("", h.ListHandler)
		users.POST("/signin", credentialGuard, h.SignInHandler)
		users.GET("/username/:username", h.GetByUsernameHandler)
		users.GET("/active/:active", h.ListByActiveHandler)
		users.GET("/:id", h.GetHandler)
		users.PUT("/:id", h.UpdateHandler)
		users.DELETE("/:id", h.DeleteHandler)
	}

	if h := cfg.CustomerHandler; h != nil {
		customers := v1.Group("/customers")
		customers.POST("", h.CreateHandler)
		customers.POST("/password-reset", credentialGuard, h.PasswordResetHandler)
		customers.GET("/email/:email", h.GetByEmailHandler)
		customers.GET("/:id", h.GetHandler)
		customers.PUT("/:id", h.UpdateHandler)
		customers.PUT("/:id/balance", h.UpdateBalanceHandler)
		customers.DELETE("/:id", h.DeleteHandler)
	}

	if h := cfg.PurchaseHandler; h != nil {
		purchases := v1.Group("/customers/:id/purchases")
		purchases.POST("", h.CreateHandler)
		purchases.GET("", h.ListHandler)
		purchases.PUT("/:product_id", h.UpdateAmountHandler)
	}

	if h := cfg.ProductHandler; h != nil {
		products := v1.Group("/products")
		products.POST("", h.CreateHandler)
		products.GET("", h.ListHandler)
		products.GET("/:id", h.GetHandler)
		products.PUT("/:id", h.UpdateHandler)
		products.DELETE("/:id", h.DeleteHandler)
	}

	if h := cfg.SupplierHandler; h != nil {
		suppliers := v1.Group("/suppliers")
		suppliers.POST("", h.CreateHandler)
		suppliers.GET("", h.ListHandler)
		suppliers.GET("/:id", h.GetHandler)
		suppliers.PUT("/:id", h.UpdateHandler)
		suppliers.DELETE("/:id", h.DeleteHandler)
	}

	if h := cfg.TagHandler; h != nil {
		tags := v1.Group("/tags")
		tags.POST("", h.CreateHandler)
		tags.GET("", h.ListHandler)
		tags.GET("/:id", h.GetHandler)
		tags.PUT("/:id", h.UpdateHandler)
		tags.DELETE("/:id", h.DeleteHandler)
	}

	if h := cfg.AdminHandler; h != nil {
		admins := v1.Group("/admins")
		admins.POST("", h.CreateHandler)
		admins.POST("/signin", credentialGuard, h.SignInHandler)
		admins.GET("/:id", h.GetHandler)
		admins.PUT("/:id", h.UpdateHandler)
		admins.DELETE("/:id", h.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	return listenAndServe(s.server, "http server", s.logger)
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when the database answers a ping and the
// credential cipher holds its keys.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{
		"database": "ok",
		"keys":     "ok",
	}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn("database ping failed", slog.Any("error", err))
			components["database"] = "error"
			ready = false
		}
	}

	if s.cipher == nil || !s.cipher.Ready() {
		components["keys"] = "error"
		ready = false
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}
