// Package productapi is a typed client for the storefront product endpoints.
// It mirrors the declarative query facade consumed by UI code: read endpoints
// are cached under invalidation tags and the create mutation marks cached
// listings stale so the next read refetches.
package productapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"
)

// ErrNotFound indicates the requested product does not exist.
var ErrNotFound = errors.New("product not found")

// Product mirrors a catalog item returned by the API.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Seller      string    `json:"seller"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateProductRequest describes the create mutation payload.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Seller      string  `json:"seller"`
	Stock       int     `json:"stock"`
}

// ListParams narrows the product listing.
type ListParams struct {
	Page     int
	Keyword  string
	MinPrice *float64
	MaxPrice *float64
	Category string
}

// Client queries the storefront product API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
	token      string
	cache      *tagCache
}

// Option customizes client construction.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token used for admin endpoints.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New creates a product API client with default timeout.
func New(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("base url must be absolute")
	}
	c := &Client{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newTagCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type productsEnvelope struct {
	Products []Product `json:"products"`
}

type productEnvelope struct {
	Product Product `json:"product"`
}

type categoriesEnvelope struct {
	Categories []string `json:"categories"`
}

// Products lists catalog items matching params. Results are cached under the
// Product tag until a mutation invalidates them.
func (c *Client) Products(ctx context.Context, params ListParams) ([]Product, error) {
	values := url.Values{}
	if params.Page > 0 {
		values.Set("page", strconv.Itoa(params.Page))
	}
	if params.Keyword != "" {
		values.Set("keyword", params.Keyword)
	}
	if params.MinPrice != nil {
		values.Set("price[gte]", strconv.FormatFloat(*params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice != nil {
		values.Set("price[lte]", strconv.FormatFloat(*params.MaxPrice, 'f', -1, 64))
	}
	if params.Category != "" {
		values.Set("category", params.Category)
	}
	return c.listProducts(ctx, values)
}

// LatestProducts lists the "Latest" shelf.
func (c *Client) LatestProducts(ctx context.Context) ([]Product, error) {
	values := url.Values{}
	values.Set("categories", "Latest")
	return c.listProducts(ctx, values)
}

// BestSellerProducts lists the "BestSeller" shelf.
func (c *Client) BestSellerProducts(ctx context.Context) ([]Product, error) {
	values := url.Values{}
	values.Set("category", "BestSeller")
	return c.listProducts(ctx, values)
}

func (c *Client) listProducts(ctx context.Context, values url.Values) ([]Product, error) {
	key := "/api/v1/products?" + values.Encode()
	if cached, ok := c.cache.get(key); ok {
		return cached.([]Product), nil
	}

	var envelope productsEnvelope
	if err := c.getJSON(ctx, "/api/v1/products", values, &envelope); err != nil {
		return nil, err
	}
	c.cache.put(key, envelope.Products, tagProduct)
	return envelope.Products, nil
}

// Product fetches a single catalog item by id. Details are not cached.
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	var envelope productEnvelope
	if err := c.getJSON(ctx, "/api/v1/product/"+id, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Product, nil
}

// Categories lists distinct catalog categories.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	const key = "/api/v1/products/categories"
	if cached, ok := c.cache.get(key); ok {
		return cached.([]string), nil
	}

	var envelope categoriesEnvelope
	if err := c.getJSON(ctx, key, nil, &envelope); err != nil {
		return nil, err
	}
	c.cache.put(key, envelope.Categories, tagProduct)
	return envelope.Categories, nil
}

// AdminProducts lists every product. Requires an admin token.
func (c *Client) AdminProducts(ctx context.Context) ([]Product, error) {
	const key = "/api/v1/admin/products"
	if cached, ok := c.cache.get(key); ok {
		return cached.([]Product), nil
	}

	var envelope productsEnvelope
	if err := c.getJSON(ctx, key, nil, &envelope); err != nil {
		return nil, err
	}
	c.cache.put(key, envelope.Products, tagProduct)
	return envelope.Products, nil
}

// CreateProduct adds a catalog item and invalidates cached product listings.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := c.newRequest(ctx, http.MethodPost, "/api/v1/admin/add_products", nil, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var envelope productEnvelope
	if err := c.do(httpReq, &envelope); err != nil {
		return nil, err
	}

	c.cache.invalidate(tagProduct)
	return &envelope.Product, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, values url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, values, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, values url.Values, body io.Reader) (*http.Request, error) {
	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)
	if values != nil {
		target.RawQuery = values.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, out)
	case http.StatusNotFound:
		return ErrNotFound
	default:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("product api request failed",
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(data)),
		)
		return fmt.Errorf("product api error: %s", resp.Status)
	}
}
