package app

import (
	"fmt"

	customerHTTP "github.com/ourshop/shop/internal/customer/http"
	customerRepository "github.com/ourshop/shop/internal/customer/repository"
	customerUseCase "github.com/ourshop/shop/internal/customer/usecase"
)

// CustomerRepository returns the customer repository based on database driver.
func (c *Container) CustomerRepository() (customerUseCase.CustomerRepository, error) {
	var err error
	c.customerRepoInit.Do(func() {
		c.customerRepo, err = c.initCustomerRepository()
		if err != nil {
			c.initErrors["customerRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerRepo"]; exists {
		return nil, storedErr
	}
	return c.customerRepo, nil
}

// CustomerUseCase returns the customer use case.
func (c *Container) CustomerUseCase() (customerUseCase.CustomerUseCase, error) {
	var err error
	c.customerUseCaseInit.Do(func() {
		c.customerUseCase, err = c.initCustomerUseCase()
		if err != nil {
			c.initErrors["customerUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["customerUseCase"]; exists {
		return nil, storedErr
	}
	return c.customerUseCase, nil
}

// CustomerHandler returns the customer HTTP handler.
func (c *Container) CustomerHandler() (*customerHTTP.CustomerHandler, error) {
	useCase, err := c.CustomerUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer use case for customer handler: %w", err)
	}
	return customerHTTP.NewCustomerHandler(useCase, c.Logger()), nil
}

func (c *Container) initCustomerRepository() (customerUseCase.CustomerRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for customer repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return customerRepository.NewMySQLCustomerRepository(db), nil
	case "postgres":
		return customerRepository.NewPostgreSQLCustomerRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initCustomerUseCase() (customerUseCase.CustomerUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for customer use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for customer use case: %w", err)
	}

	customerRepo, err := c.CustomerRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get customer repository for customer use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for customer use case: %w", err)
	}

	pipeline, err := c.CredentialPipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential pipeline for customer use case: %w", err)
	}

	notifier, err := c.Notifier()
	if err != nil {
		return nil, fmt.Errorf("failed to get notifier for customer use case: %w", err)
	}

	baseUseCase := customerUseCase.NewCustomerUseCase(
		txManager,
		userRepo,
		customerRepo,
		outboxRepo,
		pipeline,
		notifier,
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for customer use case: %w", err)
		}
		return customerUseCase.NewCustomerUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
