package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
	// UpdateStatus commits the status transition together with the per-item
	// stock decrements in a single transaction. A missing product aborts the
	// whole transition.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, rejectInsufficient bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	DailySales(ctx context.Context, from, to time.Time) ([]model.DailySales, error)
}
