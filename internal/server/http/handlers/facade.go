package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, name, email, password string) (string, error)
	Authenticate(ctx context.Context, email, password string) (string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
}

// OrderFacade encapsulates order lifecycle and reporting operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, order *model.Order, userID int64) (*model.Order, error)
	Order(ctx context.Context, id uuid.UUID) (*model.Order, error)
	OrdersForUser(ctx context.Context, userID int64) ([]model.Order, error)
	AllOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
	DeleteOrder(ctx context.Context, id uuid.UUID) error
	DailySales(ctx context.Context, start, end time.Time) ([]model.DailySales, error)
}

// ProductFacade provides catalog operations.
type ProductFacade interface {
	Products(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Product(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	AllProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	OrderFacade
	ProductFacade
}
