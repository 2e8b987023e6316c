package app

import (
	"fmt"

	purchaseHTTP "github.com/ourshop/shop/internal/purchase/http"
	purchaseRepository "github.com/ourshop/shop/internal/purchase/repository"
	purchaseUseCase "github.com/ourshop/shop/internal/purchase/usecase"
)

// PurchaseRepository returns the purchase repository based on database driver.
func (c *Container) PurchaseRepository() (purchaseUseCase.PurchaseRepository, error) {
	var err error
	c.purchaseRepoInit.Do(func() {
		c.purchaseRepo, err = c.initPurchaseRepository()
		if err != nil {
			c.initErrors["purchaseRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["purchaseRepo"]; exists {
		return nil, storedErr
	}
	return c.purchaseRepo, nil
}

// PurchaseUseCase returns the purchase use case.
func (c *Container) PurchaseUseCase() (purchaseUseCase.PurchaseUseCase, error) {
	var err error
	c.purchaseUseCaseInit.Do(func() {
		c.purchaseUseCase, err = c.initPurchaseUseCase()
		if err != nil {
			c.initErrors["purchaseUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["purchaseUseCase"]; exists {
		return nil, storedErr
	}
	return c.purchaseUseCase, nil
}

// PurchaseHandler returns the purchase HTTP handler.
func (c *Container) PurchaseHandler() (*purchaseHTTP.PurchaseHandler, error) {
	useCase, err := c.PurchaseUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase use case for purchase handler: %w", err)
	}
	return purchaseHTTP.NewPurchaseHandler(useCase, c.Logger()), nil
}

func (c *Container) initPurchaseRepository() (purchaseUseCase.PurchaseRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for purchase repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return purchaseRepository.NewMySQLPurchaseRepository(db), nil
	case "postgres":
		return purchaseRepository.NewPostgreSQLPurchaseRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initPurchaseUseCase() (purchaseUseCase.PurchaseUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for purchase use case: %w", err)
	}

	purchaseRepo, err := c.PurchaseRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase repository for purchase use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for purchase use case: %w", err)
	}

	customerRepo, err := c.CustomerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer repository for purchase use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for purchase use case: %w", err)
	}

	baseUseCase := purchaseUseCase.NewPurchaseUseCase(
		txManager,
		purchaseRepo,
		productRepo,
		customerRepo,
		outboxRepo,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for purchase use case: %w", err)
		}
		return purchaseUseCase.NewPurchaseUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
