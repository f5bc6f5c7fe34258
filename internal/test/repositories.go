package test

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[email]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	if role == "" {
		role = model.RoleUser
	}
	user := &model.User{ID: s.Next, Name: name, Email: email, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}
	s.Next++
	s.Users[email] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByEmail fetches user by email or returns not found.
func (s *UserRepositoryStub) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[email]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by id or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub stores products in-memory for tests.
type ProductRepositoryStub struct {
	Products map[uuid.UUID]*model.Product
	Err      error
}

// NewProductRepositoryStub constructs stub repository with initialized map.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{Products: make(map[uuid.UUID]*model.Product)}
}

// Add seeds the stub with a product.
func (s *ProductRepositoryStub) Add(p *model.Product) {
	if s.Products == nil {
		s.Products = make(map[uuid.UUID]*model.Product)
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	s.Products[p.ID] = p
}

// Create stores a new product.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.CreatedAt = time.Now()
	s.Add(product)
	return product, nil
}

// GetByID fetches product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if product, ok := s.Products[id]; ok {
		return product, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List applies keyword/category/price filters over the stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

// ListAll returns every stored product.
func (s *ProductRepositoryStub) ListAll(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		result = append(result, *p)
	}
	return result, nil
}

// Categories returns distinct categories of stored products.
func (s *ProductRepositoryStub) Categories(ctx context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	seen := make(map[string]struct{})
	var result []string
	for _, p := range s.Products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		result = append(result, p.Category)
	}
	return result, nil
}

// ListBelowStock returns products at or below threshold.
func (s *ProductRepositoryStub) ListBelowStock(ctx context.Context, threshold, limit int) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Product
	for _, p := range s.Products {
		if p.Stock <= threshold {
			result = append(result, *p)
		}
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, nil
}

// StatusUpdate records one UpdateStatus invocation.
type StatusUpdate struct {
	ID                 uuid.UUID
	Status             model.OrderStatus
	RejectInsufficient bool
}

// OrderRepositoryStub stores orders in-memory for tests. When Stock is set,
// UpdateStatus applies per-item decrements against it the way the real
// repository does inside its transaction.
type OrderRepositoryStub struct {
	Orders        map[uuid.UUID]*model.Order
	Stock         *ProductRepositoryStub
	StatusUpdates []StatusUpdate
	Sales         []model.DailySales
	SalesFrom     time.Time
	SalesTo       time.Time
	Err           error
	SalesErr      error
	UpdateErr     error
}

// NewOrderRepositoryStub constructs stub repository with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[uuid.UUID]*model.Order)}
}

// Add seeds the stub with an order.
func (s *OrderRepositoryStub) Add(o *model.Order) {
	if s.Orders == nil {
		s.Orders = make(map[uuid.UUID]*model.Order)
	}
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	s.Orders[o.ID] = o
}

// Create stores a new order.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = model.OrderStatusProcessing
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	s.Add(order)
	return order, nil
}

// GetByID fetches order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		return order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ListByUser returns orders owned by userID.
func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		if o.UserID == userID {
			result = append(result, *o)
		}
	}
	return result, nil
}

// ListAll returns every stored order.
func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, o := range s.Orders {
		result = append(result, *o)
	}
	return result, nil
}

// UpdateStatus records the call and mirrors the transactional semantics of the
// real repository: decrements seeded stock per item, aborts on missing
// products, stamps DeliveredAt unconditionally.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, rejectInsufficient bool) error {
	s.StatusUpdates = append(s.StatusUpdates, StatusUpdate{ID: id, Status: status, RejectInsufficient: rejectInsufficient})
	if s.UpdateErr != nil {
		return s.UpdateErr
	}
	order, ok := s.Orders[id]
	if !ok {
		return domainErrors.ErrNotFound
	}

	if s.Stock != nil {
		for _, item := range order.OrderItems {
			product, ok := s.Stock.Products[item.Product]
			if !ok {
				return fmt.Errorf("product %s: %w", item.Product, domainErrors.ErrNotFound)
			}
			if rejectInsufficient && product.Stock < item.Quantity {
				return fmt.Errorf("product %s: %w", item.Product, domainErrors.ErrInsufficientStock)
			}
			product.Stock -= item.Quantity
		}
	}

	now := time.Now()
	order.Status = status
	order.DeliveredAt = &now
	order.UpdatedAt = now
	return nil
}

// Delete removes the order or returns not found.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Orders[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Orders, id)
	return nil
}

// DailySales returns the configured aggregation result.
func (s *OrderRepositoryStub) DailySales(ctx context.Context, from, to time.Time) ([]model.DailySales, error) {
	s.SalesFrom = from
	s.SalesTo = to
	if s.SalesErr != nil {
		return nil, s.SalesErr
	}
	return s.Sales, nil
}
