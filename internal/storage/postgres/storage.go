package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// pgxPool abstracts the pgxpool surface used by the storage so tests can
// substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
	sb     sq.StatementBuilderType
}

type userRepository struct {
	storage *Storage
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{
		pool:   pool,
		logger: logger,
		sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            category TEXT NOT NULL DEFAULT '',
            seller TEXT NOT NULL DEFAULT '',
            stock INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id UUID PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            order_items JSONB NOT NULL,
            shipping_info JSONB NOT NULL,
            items_price DOUBLE PRECISION NOT NULL,
            tax_amount DOUBLE PRECISION NOT NULL,
            shipping_amount DOUBLE PRECISION NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            payment_method TEXT NOT NULL,
            payment_info JSONB NOT NULL DEFAULT '{}',
            order_status TEXT NOT NULL DEFAULT 'Processing',
            delivered_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user ON orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	if role == "" {
		role = model.RoleUser
	}
	const query = `INSERT INTO users (name, email, password_hash, role) VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, name, email, passwordHash, role).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, name, email, password_hash, role, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	const query = `INSERT INTO products (id, name, description, price, category, seller, stock)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at`
	err := r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Price,
		product.Category, product.Seller, product.Stock,
	).Scan(&product.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23502" || pgErr.Code == "23514") {
			return nil, domainErrors.ErrValidation
		}
		return nil, err
	}
	return product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	const query = `SELECT id, name, description, price, category, seller, stock, created_at FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Seller, &p.Stock, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

const defaultProductsPerPage = 10

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := r.storage.sb.
		Select("id", "name", "description", "price", "category", "seller", "stock", "created_at").
		From("products").
		OrderBy("created_at DESC")

	if filter.Keyword != "" {
		query = query.Where(sq.ILike{"name": "%" + filter.Keyword + "%"})
	}
	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": filter.Category})
	}
	if filter.MinPrice != nil {
		query = query.Where(sq.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		query = query.Where(sq.LtOrEq{"price": *filter.MaxPrice})
	}

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = defaultProductsPerPage
	}
	query = query.Limit(uint64(perPage))
	if filter.Page > 1 {
		query = query.Offset(uint64((filter.Page - 1) * perPage))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build products query: %w", err)
	}

	rows, err := r.storage.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	const query = `SELECT id, name, description, price, category, seller, stock, created_at
                   FROM products ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) ListBelowStock(ctx context.Context, threshold, limit int) ([]model.Product, error) {
	const query = `SELECT id, name, description, price, category, seller, stock, created_at
                   FROM products WHERE stock <= $1 ORDER BY stock LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, threshold, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Seller, &p.Stock, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- OrderRepository implementation ---

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = model.OrderStatusProcessing
	}

	items, err := json.Marshal(order.OrderItems)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	shipping, err := json.Marshal(order.ShippingInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal shipping info: %w", err)
	}
	payment, err := json.Marshal(order.PaymentInfo)
	if err != nil {
		return nil, fmt.Errorf("marshal payment info: %w", err)
	}

	const query = `INSERT INTO orders
                   (id, user_id, order_items, shipping_info, items_price, tax_amount, shipping_amount, total_amount, payment_method, payment_info, order_status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   RETURNING created_at, updated_at`
	err = r.storage.pool.QueryRow(ctx, query,
		order.ID, order.UserID, items, shipping,
		order.ItemsPrice, order.TaxAmount, order.ShippingAmount, order.TotalAmount,
		order.PaymentMethod, payment, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23502" || pgErr.Code == "23503" || pgErr.Code == "23514") {
			return nil, domainErrors.ErrValidation
		}
		return nil, err
	}
	return order, nil
}

const orderColumns = `o.id, o.user_id, o.order_items, o.shipping_info, o.items_price, o.tax_amount,
                      o.shipping_amount, o.total_amount, o.payment_method, o.payment_info,
                      o.order_status, o.delivered_at, o.created_at, o.updated_at`

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + `, u.id, u.name, u.email
              FROM orders o JOIN users u ON u.id = o.user_id
              WHERE o.id=$1`
	row := r.storage.pool.QueryRow(ctx, query, id)

	var (
		o        model.Order
		items    []byte
		shipping []byte
		payment  []byte
		ref      model.UserRef
	)
	err := row.Scan(
		&o.ID, &o.UserID, &items, &shipping, &o.ItemsPrice, &o.TaxAmount,
		&o.ShippingAmount, &o.TotalAmount, &o.PaymentMethod, &payment,
		&o.Status, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
		&ref.ID, &ref.Name, &ref.Email,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if err := unmarshalOrderDocs(&o, items, shipping, payment); err != nil {
		return nil, err
	}
	o.User = &ref
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o WHERE o.user_id=$1 ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			o        model.Order
			items    []byte
			shipping []byte
			payment  []byte
		)
		if err := rows.Scan(
			&o.ID, &o.UserID, &items, &shipping, &o.ItemsPrice, &o.TaxAmount,
			&o.ShippingAmount, &o.TotalAmount, &o.PaymentMethod, &payment,
			&o.Status, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := unmarshalOrderDocs(&o, items, shipping, payment); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `, u.id, u.name, u.email
              FROM orders o JOIN users u ON u.id = o.user_id
              ORDER BY o.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var (
			o        model.Order
			items    []byte
			shipping []byte
			payment  []byte
			ref      model.UserRef
		)
		if err := rows.Scan(
			&o.ID, &o.UserID, &items, &shipping, &o.ItemsPrice, &o.TaxAmount,
			&o.ShippingAmount, &o.TotalAmount, &o.PaymentMethod, &payment,
			&o.Status, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
			&ref.ID, &ref.Name, &ref.Email,
		); err != nil {
			return nil, err
		}
		if err := unmarshalOrderDocs(&o, items, shipping, payment); err != nil {
			return nil, err
		}
		o.User = &ref
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateStatus commits the status transition together with the per-item stock
// decrements. Everything runs inside one transaction: a missing product or, when
// rejectInsufficient is set, a stock level that would go negative aborts the
// whole transition. delivered_at is stamped on every successful update.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, rejectInsufficient bool) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectItems = `SELECT order_items FROM orders WHERE id=$1 FOR UPDATE`
		var raw []byte
		if err := tx.QueryRow(ctx, selectItems, id).Scan(&raw); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		var items []model.OrderItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("unmarshal order items: %w", err)
		}

		const decrement = `UPDATE products SET stock = stock - $1 WHERE id=$2 RETURNING stock`
		for _, item := range items {
			var remaining int
			if err := tx.QueryRow(ctx, decrement, item.Quantity, item.Product).Scan(&remaining); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return fmt.Errorf("product %s: %w", item.Product, domainErrors.ErrNotFound)
				}
				return err
			}
			if rejectInsufficient && remaining < 0 {
				return fmt.Errorf("product %s: %w", item.Product, domainErrors.ErrInsufficientStock)
			}
		}

		const updateOrder = `UPDATE orders SET order_status=$1, delivered_at=NOW(), updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, updateOrder, status, id); err != nil {
			return err
		}
		return nil
	})
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM orders WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *orderRepository) DailySales(ctx context.Context, from, to time.Time) ([]model.DailySales, error) {
	const query = `SELECT to_char(created_at, 'YYYY-MM-DD') AS day,
                          COALESCE(SUM(total_amount), 0),
                          COUNT(*)
                   FROM orders
                   WHERE created_at BETWEEN $1 AND $2
                   GROUP BY day
                   ORDER BY day`
	rows, err := r.storage.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.DailySales
	for rows.Next() {
		var d model.DailySales
		if err := rows.Scan(&d.Date, &d.TotalSales, &d.NumOfOrders); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func unmarshalOrderDocs(o *model.Order, items, shipping, payment []byte) error {
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.OrderItems); err != nil {
			return fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	if len(shipping) > 0 {
		if err := json.Unmarshal(shipping, &o.ShippingInfo); err != nil {
			return fmt.Errorf("unmarshal shipping info: %w", err)
		}
	}
	if len(payment) > 0 {
		if err := json.Unmarshal(payment, &o.PaymentInfo); err != nil {
			return fmt.Errorf("unmarshal payment info: %w", err)
		}
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
