package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CatalogUseCase serves product listing and administration.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns catalog items matching the filter.
func (u *CatalogUseCase) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return u.products.List(ctx, filter)
}

// Get returns a single product by id.
func (u *CatalogUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Categories returns the distinct category names present in the catalog.
func (u *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	return u.products.Categories(ctx)
}

// ListAll returns every product for the admin view.
func (u *CatalogUseCase) ListAll(ctx context.Context) ([]model.Product, error) {
	return u.products.ListAll(ctx)
}

// Create adds a new product to the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", domainErrors.ErrValidation)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: product price must not be negative", domainErrors.ErrValidation)
	}
	if product.Stock < 0 {
		return nil, fmt.Errorf("%w: product stock must not be negative", domainErrors.ErrValidation)
	}
	return u.products.Create(ctx, product)
}

// ListBelowStock returns products at or below the given stock threshold.
func (u *CatalogUseCase) ListBelowStock(ctx context.Context, threshold, limit int) ([]model.Product, error) {
	return u.products.ListBelowStock(ctx, threshold, limit)
}
