package test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, *model.Order, int64) (*model.Order, error)
	OrderFn        func(context.Context, uuid.UUID) (*model.Order, error)
	OrdersForFn    func(context.Context, int64) ([]model.Order, error)
	AllOrdersFn    func(context.Context) ([]model.Order, error)
	UpdateStatusFn func(context.Context, uuid.UUID, model.OrderStatus) error
	DeleteFn       func(context.Context, uuid.UUID) error
	DailySalesFn   func(context.Context, time.Time, time.Time) ([]model.DailySales, error)
}

// CreateOrder delegates to provided function or returns the order back.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, order *model.Order, userID int64) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order, userID)
	}
	order.ID = uuid.New()
	order.UserID = userID
	order.Status = model.OrderStatusProcessing
	return order, nil
}

// Order returns predefined order by id.
func (s OrderFacadeStub) Order(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusProcessing}, nil
}

// OrdersForUser returns predefined orders for given user.
func (s OrderFacadeStub) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersForFn != nil {
		return s.OrdersForFn(ctx, userID)
	}
	return []model.Order{{ID: uuid.New(), UserID: userID}}, nil
}

// AllOrders returns predefined orders.
func (s OrderFacadeStub) AllOrders(ctx context.Context) ([]model.Order, error) {
	if s.AllOrdersFn != nil {
		return s.AllOrdersFn(ctx)
	}
	return []model.Order{{ID: uuid.New()}}, nil
}

// UpdateOrderStatus delegates to provided function or succeeds.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, id, status)
	}
	return nil
}

// DeleteOrder delegates to provided function or succeeds.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// DailySales returns predefined aggregation result.
func (s OrderFacadeStub) DailySales(ctx context.Context, start, end time.Time) ([]model.DailySales, error) {
	if s.DailySalesFn != nil {
		return s.DailySalesFn(ctx, start, end)
	}
	return []model.DailySales{}, nil
}

// ProductFacadeStub simulates catalog operations.
type ProductFacadeStub struct {
	ProductsFn    func(context.Context, model.ProductFilter) ([]model.Product, error)
	ProductFn     func(context.Context, uuid.UUID) (*model.Product, error)
	CategoriesFn  func(context.Context) ([]string, error)
	AllProductsFn func(context.Context) ([]model.Product, error)
	CreateFn      func(context.Context, *model.Product) (*model.Product, error)
}

// Products returns predefined products for the filter.
func (s ProductFacadeStub) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: uuid.New(), Name: "product"}}, nil
}

// Product returns predefined product by id.
func (s ProductFacadeStub) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "product"}, nil
}

// Categories returns predefined category list.
func (s ProductFacadeStub) Categories(ctx context.Context) ([]string, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []string{"Electronics"}, nil
}

// AllProducts returns predefined products.
func (s ProductFacadeStub) AllProducts(ctx context.Context) ([]model.Product, error) {
	if s.AllProductsFn != nil {
		return s.AllProductsFn(ctx)
	}
	return []model.Product{{ID: uuid.New(), Name: "product"}}, nil
}

// CreateProduct delegates to provided function or echoes the product.
func (s ProductFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	product.ID = uuid.New()
	return product, nil
}

// CatalogFacadeStub simulates the worker-facing catalog surface.
type CatalogFacadeStub struct {
	LowStockFn func(context.Context, int, int) ([]model.Product, error)
}

// LowStockProducts returns predefined low stock products.
func (s CatalogFacadeStub) LowStockProducts(ctx context.Context, threshold, limit int) ([]model.Product, error) {
	if s.LowStockFn != nil {
		return s.LowStockFn(ctx, threshold, limit)
	}
	return nil, nil
}

// ShopFacadeStub aggregates facade dependencies for HTTP layer tests.
type ShopFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	ProductFacadeStub
}
