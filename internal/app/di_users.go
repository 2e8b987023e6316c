package app

import (
	"fmt"

	userHTTP "github.com/ourshop/shop/internal/user/http"
	userRepository "github.com/ourshop/shop/internal/user/repository"
	userUseCase "github.com/ourshop/shop/internal/user/usecase"
)

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (userUseCase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (userUseCase.UserUseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// UserHandler returns the user HTTP handler.
func (c *Container) UserHandler() (*userHTTP.UserHandler, error) {
	useCase, err := c.UserUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get user use case for user handler: %w", err)
	}
	return userHTTP.NewUserHandler(useCase, c.Logger()), nil
}

func (c *Container) initUserRepository() (userUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initUserUseCase() (userUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for user use case: %w", err)
	}

	pipeline, err := c.CredentialPipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential pipeline for user use case: %w", err)
	}

	baseUseCase := userUseCase.NewUserUseCase(txManager, userRepo, outboxRepo, pipeline)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for user use case: %w", err)
		}
		return userUseCase.NewUserUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
