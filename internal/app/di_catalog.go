package app

import (
	"fmt"

	productHTTP "github.com/ourshop/shop/internal/product/http"
	productRepository "github.com/ourshop/shop/internal/product/repository"
	productUseCase "github.com/ourshop/shop/internal/product/usecase"
	supplierHTTP "github.com/ourshop/shop/internal/supplier/http"
	supplierRepository "github.com/ourshop/shop/internal/supplier/repository"
	supplierUseCase "github.com/ourshop/shop/internal/supplier/usecase"
	tagHTTP "github.com/ourshop/shop/internal/tag/http"
	tagRepository "github.com/ourshop/shop/internal/tag/repository"
	tagUseCase "github.com/ourshop/shop/internal/tag/usecase"
)

// ProductRepository returns the product repository based on database driver.
func (c *Container) ProductRepository() (productUseCase.ProductRepository, error) {
	var err error
	c.productRepoInit.Do(func() {
		c.productRepo, err = c.initProductRepository()
		if err != nil {
			c.initErrors["productRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productRepo"]; exists {
		return nil, storedErr
	}
	return c.productRepo, nil
}

// ProductUseCase returns the product use case.
func (c *Container) ProductUseCase() (productUseCase.ProductUseCase, error) {
	var err error
	c.productUseCaseInit.Do(func() {
		c.productUseCase, err = c.initProductUseCase()
		if err != nil {
			c.initErrors["productUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["productUseCase"]; exists {
		return nil, storedErr
	}
	return c.productUseCase, nil
}

// ProductHandler returns the product HTTP handler.
func (c *Container) ProductHandler() (*productHTTP.ProductHandler, error) {
	useCase, err := c.ProductUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get product use case for product handler: %w", err)
	}
	return productHTTP.NewProductHandler(useCase, c.Logger()), nil
}

func (c *Container) initProductRepository() (productUseCase.ProductRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for product repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return productRepository.NewMySQLProductRepository(db), nil
	case "postgres":
		return productRepository.NewPostgreSQLProductRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initProductUseCase() (productUseCase.ProductUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for product use case: %w", err)
	}

	productRepo, err := c.ProductRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get product repository for product use case: %w", err)
	}

	baseUseCase := productUseCase.NewProductUseCase(txManager, productRepo)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for product use case: %w", err)
		}
		return productUseCase.NewProductUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// SupplierRepository returns the supplier repository based on database driver.
func (c *Container) SupplierRepository() (supplierUseCase.SupplierRepository, error) {
	var err error
	c.supplierRepoInit.Do(func() {
		c.supplierRepo, err = c.initSupplierRepository()
		if err != nil {
			c.initErrors["supplierRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["supplierRepo"]; exists {
		return nil, storedErr
	}
	return c.supplierRepo, nil
}

// SupplierUseCase returns the supplier use case.
func (c *Container) SupplierUseCase() (supplierUseCase.SupplierUseCase, error) {
	var err error
	c.supplierUseCaseInit.Do(func() {
		c.supplierUseCase, err = c.initSupplierUseCase()
		if err != nil {
			c.initErrors["supplierUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["supplierUseCase"]; exists {
		return nil, storedErr
	}
	return c.supplierUseCase, nil
}

// SupplierHandler returns the supplier HTTP handler.
func (c *Container) SupplierHandler() (*supplierHTTP.SupplierHandler, error) {
	useCase, err := c.SupplierUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier use case for supplier handler: %w", err)
	}
	return supplierHTTP.NewSupplierHandler(useCase, c.Logger()), nil
}

func (c *Container) initSupplierRepository() (supplierUseCase.SupplierRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for supplier repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return supplierRepository.NewMySQLSupplierRepository(db), nil
	case "postgres":
		return supplierRepository.NewPostgreSQLSupplierRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initSupplierUseCase() (supplierUseCase.SupplierUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for supplier use case: %w", err)
	}

	supplierRepo, err := c.SupplierRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get supplier repository for supplier use case: %w", err)
	}

	return supplierUseCase.NewSupplierUseCase(txManager, supplierRepo), nil
}

// TagRepository returns the tag repository based on database driver.
func (c *Container) TagRepository() (tagUseCase.TagRepository, error) {
	var err error
	c.tagRepoInit.Do(func() {
		c.tagRepo, err = c.initTagRepository()
		if err != nil {
			c.initErrors["tagRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tagRepo"]; exists {
		return nil, storedErr
	}
	return c.tagRepo, nil
}

// TagUseCase returns the tag use case.
func (c *Container) TagUseCase() (tagUseCase.TagUseCase, error) {
	var err error
	c.tagUseCaseInit.Do(func() {
		c.tagUseCase, err = c.initTagUseCase()
		if err != nil {
			c.initErrors["tagUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tagUseCase"]; exists {
		return nil, storedErr
	}
	return c.tagUseCase, nil
}

// TagHandler returns the tag HTTP handler.
func (c *Container) TagHandler() (*tagHTTP.TagHandler, error) {
	useCase, err := c.TagUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag use case for tag handler: %w", err)
	}
	return tagHTTP.NewTagHandler(useCase, c.Logger()), nil
}

func (c *Container) initTagRepository() (tagUseCase.TagRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tag repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return tagRepository.NewMySQLTagRepository(db), nil
	case "postgres":
		return tagRepository.NewPostgreSQLTagRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

func (c *Container) initTagUseCase() (tagUseCase.TagUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for tag use case: %w", err)
	}

	tagRepo, err := c.TagRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag repository for tag use case: %w", err)
	}

	return tagUseCase.NewTagUseCase(txManager, tagRepo), nil
}
