package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog items.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	ListBelowStock(ctx context.Context, threshold, limit int) ([]model.Product, error)
}
