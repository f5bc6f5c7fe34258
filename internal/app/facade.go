package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/usecase"
)

// ShopFacade aggregates the full set of operations used across handlers
// and background workers.
type ShopFacade struct {
	auth    *usecase.AuthUseCase
	orders  *usecase.OrderUseCase
	catalog *usecase.CatalogUseCase
	reports *usecase.ReportUseCase
}

func NewShopFacade(auth *usecase.AuthUseCase, orders *usecase.OrderUseCase, catalog *usecase.CatalogUseCase, reports *usecase.ReportUseCase) *ShopFacade {
	return &ShopFacade{auth: auth, orders: orders, catalog: catalog, reports: reports}
}

func (f *ShopFacade) Register(ctx context.Context, name, email, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, name, email, password)
	return token, err
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, email, password)
	return token, err
}

func (f *ShopFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *ShopFacade) CreateOrder(ctx context.Context, order *model.Order, userID int64) (*model.Order, error) {
	return f.orders.Create(ctx, order, userID)
}

func (f *ShopFacade) Order(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *ShopFacade) OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *ShopFacade) AllOrders(ctx context.Context) ([]model.Order, error) {
	return f.orders.ListAll(ctx)
}

func (f *ShopFacade) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, id, status)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	return f.orders.Delete(ctx, id)
}

func (f *ShopFacade) DailySales(ctx context.Context, start, end time.Time) ([]model.DailySales, error) {
	return f.reports.ComputeDailySales(ctx, start, end)
}

func (f *ShopFacade) Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	return f.catalog.List(ctx, filter)
}

func (f *ShopFacade) Product(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *ShopFacade) Categories(ctx context.Context) ([]string, error) {
	return f.catalog.Categories(ctx)
}

func (f *ShopFacade) AllProducts(ctx context.Context) ([]model.Product, error) {
	return f.catalog.ListAll(ctx)
}

func (f *ShopFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *ShopFacade) LowStockProducts(ctx context.Context, threshold, limit int) ([]model.Product, error) {
	return f.catalog.ListBelowStock(ctx, threshold, limit)
}
