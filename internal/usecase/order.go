package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders             repository.OrderRepository
	rejectInsufficient bool
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, rejectInsufficient bool) *OrderUseCase {
	return &OrderUseCase{orders: orders, rejectInsufficient: rejectInsufficient}
}

// Create persists a new order owned by userID with status Processing.
// Amount consistency is caller-supplied and deliberately not checked.
func (u *OrderUseCase) Create(ctx context.Context, order *model.Order, userID int64) (*model.Order, error) {
	if len(order.OrderItems) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
	}
	for _, item := range order.OrderItems {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", domainErrors.ErrValidation)
		}
		if item.Product == uuid.Nil {
			return nil, fmt.Errorf("%w: item must reference a product", domainErrors.ErrValidation)
		}
	}

	order.UserID = userID
	order.Status = model.OrderStatusProcessing
	return u.orders.Create(ctx, order)
}

// Get returns an order with the owner's name/email joined in.
func (u *OrderUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// ListByUser returns all orders owned by userID, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// ListAll returns every order with owner info joined in.
func (u *OrderUseCase) ListAll(ctx context.Context) ([]model.Order, error) {
	return u.orders.ListAll(ctx)
}

// UpdateStatus transitions order status and decrements stock for every item.
// Guards: Shipped may not be re-applied, Delivered is terminal. Any other
// transition is permitted, including Processing straight to Delivered.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown order status %q", domainErrors.ErrValidation, status)
	}

	order, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if order.Status == model.OrderStatusShipped && status == model.OrderStatusShipped {
		return fmt.Errorf("%w: order is already shipped and awaiting delivery", domainErrors.ErrConflict)
	}
	if order.Status == model.OrderStatusDelivered {
		return fmt.Errorf("%w: order is already delivered", domainErrors.ErrConflict)
	}

	return u.orders.UpdateStatus(ctx, id, status, u.rejectInsufficient)
}

// Delete removes the order. Product stock is left untouched.
func (u *OrderUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.orders.Delete(ctx, id)
}
