package app

import (
	"fmt"

	adminHTTP "github.com/ourshop/shop/internal/admin/http"
	adminRepository "github.com/ourshop/shop/internal/admin/repository"
	adminUseCase "github.com/ourshop/shop/internal/admin/usecase"
)

// AdminRepository returns the admin repository based on database driver.
func (c *Container) AdminRepository() (adminUseCase.AdminRepository, error) {
	var err error
	c.adminRepoInit.Do(func() {
		c.adminRepo, err = c.initAdminRepository()
		if err != nil {
			c.initErrors["adminRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminRepo"]; exists {
		return nil, storedErr
	}
	return c.adminRepo, nil
}

// AdminUseCase returns the admin use case.
func (c *Container) AdminUseCase() (adminUseCase.AdminUseCase, error) {
	var err error
	c.adminUseCaseInit.Do(func() {
		c.adminUseCase, err = c.initAdminUseCase()
		if err != nil {
			c.initErrors["adminUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["adminUseCase"]; exists {
		return nil, storedErr
	}
	return c.adminUseCase, nil
}

// AdminHandler returns the admin HTTP handler.
func (c *Container) AdminHandler() (*adminHTTP.AdminHandler, error) {
	useCase, err := c.AdminUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin use case for admin handler: %w", err)
	}
	return adminHTTP.NewAdminHandler(useCase, c.Logger()), nil
}

func (c *Container) initAdminRepository() (adminUseCase.AdminRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for admin repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return adminRepository.NewMySQLAdminRepository(db), nil
	case "postgres":
		return adminRepository.NewPostgreSQLAdminRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initAdminUseCase() (adminUseCase.AdminUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for admin use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for admin use case: %w", err)
	}

	adminRepo, err := c.AdminRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get admin repository for admin use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for admin use case: %w", err)
	}

	pipeline, err := c.CredentialPipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential pipeline for admin use case: %w", err)
	}

	baseUseCase := adminUseCase.NewAdminUseCase(txManager, userRepo, adminRepo, outboxRepo, pipeline)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for admin use case: %w", err)
		}
		return adminUseCase.NewAdminUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}
