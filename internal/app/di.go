// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"

	adminUseCase "github.com/ourshop/shop/internal/admin/usecase"
	"github.com/ourshop/shop/internal/config"
	credentialService "github.com/ourshop/shop/internal/credential/service"
	cryptoService "github.com/ourshop/shop/internal/crypto/service"
	customerUseCase "github.com/ourshop/shop/internal/customer/usecase"
	"github.com/ourshop/shop/internal/database"
	"github.com/ourshop/shop/internal/http"
	"github.com/ourshop/shop/internal/metrics"
	notificationService "github.com/ourshop/shop/internal/notification/service"
	outboxRepository "github.com/ourshop/shop/internal/outbox/repository"
	outboxUseCase "github.com/ourshop/shop/internal/outbox/usecase"
	productUseCase "github.com/ourshop/shop/internal/product/usecase"
	purchaseUseCase "github.com/ourshop/shop/internal/purchase/usecase"
	supplierUseCase "github.com/ourshop/shop/internal/supplier/usecase"
	tagUseCase "github.com/ourshop/shop/internal/tag/usecase"
	userUseCase "github.com/ourshop/shop/internal/user/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	db              *sql.DB
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Managers
	txManager database.TxManager

	// Credential cryptography
	kmsService           cryptoService.KMSService
	hasher               cryptoService.Hasher
	keyPairStore         cryptoService.KeyPairStore
	symmetricKeyProvider cryptoService.SymmetricKeyProvider
	credentialCipher     cryptoService.CredentialCipher
	credentialPipeline   credentialService.Pipeline

	// Notification
	notifier notificationService.Notifier

	// Repositories
	userRepo     userUseCase.UserRepository
	customerRepo customerUseCase.CustomerRepository
	adminRepo    adminUseCase.AdminRepository
	outboxRepo   outboxUseCase.OutboxEventRepository
	productRepo  productUseCase.ProductRepository
	supplierRepo supplierUseCase.SupplierRepository
	tagRepo      tagUseCase.TagRepository
	purchaseRepo purchaseUseCase.PurchaseRepository

	// Use Cases
	userUseCase     userUseCase.UserUseCase
	customerUseCase customerUseCase.CustomerUseCase
	adminUseCase    adminUseCase.AdminUseCase
	outboxUseCase   outboxUseCase.UseCase
	productUseCase  productUseCase.ProductUseCase
	supplierUseCase supplierUseCase.SupplierUseCase
	tagUseCase      tagUseCase.TagUseCase
	purchaseUseCase purchaseUseCase.PurchaseUseCase

	// Servers and Workers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                       sync.Mutex
	loggerInit               sync.Once
	dbInit                   sync.Once
	metricsProviderInit      sync.Once
	businessMetricsInit      sync.Once
	txManagerInit            sync.Once
	kmsServiceInit           sync.Once
	hasherInit               sync.Once
	keyPairStoreInit         sync.Once
	symmetricKeyProviderInit sync.Once
	credentialCipherInit     sync.Once
	credentialPipelineInit   sync.Once
	notifierInit             sync.Once
	userRepoInit             sync.Once
	customerRepoInit         sync.Once
	adminRepoInit            sync.Once
	outboxRepoInit           sync.Once
	userUseCaseInit          sync.Once
	customerUseCaseInit      sync.Once
	adminUseCaseInit         sync.Once
	outboxUseCaseInit        sync.Once
	productRepoInit          sync.Once
	supplierRepoInit         sync.Once
	tagRepoInit              sync.Once
	purchaseRepoInit         sync.Once
	productUseCaseInit       sync.Once
	supplierUseCaseInit      sync.Once
	tagUseCaseInit           sync.Once
	purchaseUseCaseInit      sync.Once
	httpServerInit           sync.Once
	metricsServerInit        sync.Once
	initErrors               map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// DB returns the database connection.
// It creates and configures the database connection on first access.
func (c *Container) DB() (*sql.DB, error) {
	var err error
	c.dbInit.Do(func() {
		c.db, err = c.initDB()
		if err != nil {
			c.initErrors["db"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["db"]; exists {
		return nil, storedErr
	}
	return c.db, nil
}

// TxManager returns the transaction manager.
// It requires a database connection to be initialized first.
func (c *Container) TxManager() (database.TxManager, error) {
	var err error
	c.txManagerInit.Do(func() {
		c.txManager, err = c.initTxManager()
		if err != nil {
			c.initErrors["txManager"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["txManager"]; exists {
		return nil, storedErr
	}
	return c.txManager, nil
}

// MetricsProvider returns the Prometheus backed meter provider, or nil when metrics
// are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. It is a no-op when metrics
// are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// OutboxRepository returns the outbox event repository instance.
func (c *Container) OutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	var err error
	c.outboxRepoInit.Do(func() {
		c.outboxRepo, err = c.initOutboxRepository()
		if err != nil {
			c.initErrors["outboxRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxRepo"]; exists {
		return nil, storedErr
	}
	return c.outboxRepo, nil
}

// OutboxUseCase returns the outbox use case instance.
func (c *Container) OutboxUseCase() (outboxUseCase.UseCase, error) {
	var err error
	c.outboxUseCaseInit.Do(func() {
		c.outboxUseCase, err = c.initOutboxUseCase()
		if err != nil {
			c.initErrors["outboxUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["outboxUseCase"]; exists {
		return nil, storedErr
	}
	return c.outboxUseCase, nil
}

// HTTPServer returns the API server with every route registered. Building it
// initializes the credential cipher, so a key setup failure surfaces here.
func (c *Container) HTTPServer() (*http.Server, error) {
	var err error
	c.httpServerInit.Do(func() {
		c.httpServer, err = c.initHTTPServer()
		if err != nil {
			c.initErrors["httpServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["httpServer"]; exists {
		return nil, storedErr
	}
	return c.httpServer, nil
}

// MetricsServer returns the dedicated /metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	var err error
	c.metricsServerInit.Do(func() {
		c.metricsServer, err = c.initMetricsServer()
		if err != nil {
			c.initErrors["metricsServer"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsServer"]; exists {
		return nil, storedErr
	}
	return c.metricsServer, nil
}

// Shutdown performs cleanup of all initialized resources.
// It should be called when the application is shutting down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.httpServer != nil {
		if err := c.httpServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("http server shutdown: %w", err))
		}
	}

	if c.metricsServer != nil {
		if err := c.metricsServer.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics server shutdown: %w", err))
		}
	}

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if c.db != nil {
		if err := c.db.Close(); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("database close: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates and configures a structured logger based on the log level.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}

// initDB creates and configures the database connection.
func (c *Container) initDB() (*sql.DB, error) {
	db, err := database.Connect(database.Config{
		Driver:             c.config.DBDriver,
		ConnectionString:   c.config.DBConnectionString,
		MaxOpenConnections: c.config.DBMaxOpenConnections,
		MaxIdleConnections: c.config.DBMaxIdleConnections,
		ConnMaxLifetime:    c.config.DBConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// initTxManager creates the transaction manager using the database connection.
func (c *Container) initTxManager() (database.TxManager, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tx manager: %w", err)
	}
	return database.NewTxManager(db), nil
}

func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}
	provider, err := metrics.NewProvider(c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
	if err != nil {
		return nil, fmt.Errorf("failed to create business metrics: %w", err)
	}
	return businessMetrics, nil
}

// initOutboxRepository creates the outbox event repository instance.
func (c *Container) initOutboxRepository() (outboxUseCase.OutboxEventRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for outbox repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return outboxRepository.NewMySQLOutboxEventRepository(db), nil
	case "postgres":
		return outboxRepository.NewPostgreSQLOutboxEventRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOutboxUseCase creates the outbox use case with all its dependencies.
func (c *Container) initOutboxUseCase() (outboxUseCase.UseCase, error) {
	logger := c.Logger()

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for outbox use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for outbox use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for outbox use case: %w", err)
	}

	useCaseConfig := outboxUseCase.Config{
		Interval:   c.config.WorkerInterval,
		BatchSize:  c.config.WorkerBatchSize,
		MaxRetries: c.config.WorkerMaxRetries,
	}

	eventProcessor := outboxUseCase.NewLifecycleEventProcessor(businessMetrics, logger)
	return outboxUseCase.NewOutboxUseCase(useCaseConfig, txManager, outboxRepo, eventProcessor, logger), nil
}

// initHTTPServer creates the HTTP server with all its dependencies.
func (c *Container) initHTTPServer() (*http.Server, error) {
	logger := c.Logger()

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for http server: %w", err)
	}

	cipher, err := c.CredentialCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential cipher for http server: %w", err)
	}

	userHandler, err := c.UserHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get user handler for http server: %w", err)
	}

	customerHandler, err := c.CustomerHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer handler for http server: %w", err)
	}

	adminHandler, err := c.AdminHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin handler for http server: %w", err)
	}

	keyExchangeHandler, err := c.KeyExchangeHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get key exchange handler for http server: %w", err)
	}

	productHandler, err := c.ProductHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get product handler for http server: %w", err)
	}

	supplierHandler, err := c.SupplierHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier handler for http server: %w", err)
	}

	tagHandler, err := c.TagHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag handler for http server: %w", err)
	}

	purchaseHandler, err := c.PurchaseHandler()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase handler for http server: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for http server: %w", err)
	}

	routerConfig := http.RouterConfig{
		UserHandler:        userHandler,
		CustomerHandler:    customerHandler,
		AdminHandler:       adminHandler,
		KeyExchangeHandler: keyExchangeHandler,
		ProductHandler:     productHandler,
		SupplierHandler:    supplierHandler,
		TagHandler:         tagHandler,
		PurchaseHandler:    purchaseHandler,
		Cipher:             cipher,
		GinMode:            c.config.GetGinMode(),
		CORSEnabled:        c.config.CORSEnabled,
		CORSAllowOrigins:   c.config.CORSAllowOrigins,
		MetricsNamespace:   c.config.MetricsNamespace,
		RateLimitEnabled:   c.config.RateLimitSignInEnabled,
		RateLimitRPS:       c.config.RateLimitSignInRequestsPerSec,
		RateLimitBurst:     c.config.RateLimitSignInBurst,
	}
	if provider != nil {
		routerConfig.MeterProvider = provider.MeterProvider()
	}

	server := http.NewServer(db, c.config.ServerHost, c.config.ServerPort, logger)
	server.SetupRouter(routerConfig)

	return server, nil
}

func (c *Container) initMetricsServer() (*http.MetricsServer, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
	}
	if provider == nil {
		return nil, nil
	}

	return http.NewMetricsServer(c.config.ServerHost, c.config.MetricsPort, c.Logger(), provider), nil
}
