package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
	"github.com/polkiloo/storefront/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.RegisterRequest{Name: "Alice", Email: "alice@shop.dev", Password: "secret"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, name, email, password string) (string, error) {
		if name != "Alice" || email != "alice@shop.dev" || password != "secret" {
			t.Fatalf("unexpected credentials passed to facade: %q %q %q", name, email, password)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") != "Bearer session-token" {
		t.Fatalf("unexpected authorization header %q", resp.Header().Get("Authorization"))
	}

	result := resp.Result()
	t.Cleanup(func() {
		_ = result.Body.Close()
	})
	foundCookie := false
	for _, cookie := range result.Cookies() {
		if cookie.Name == "storefront_token" {
			if cookie.Value != "session-token" {
				t.Fatalf("unexpected token stored in cookie: %q", cookie.Value)
			}
			foundCookie = true
			break
		}
	}
	if !foundCookie {
		t.Fatal("expected auth cookie named storefront_token")
	}
}

func TestAuthHandlerRegisterScenarioMatchesE2E(t *testing.T) {
	email := testhelpers.RandomASCIIString(5, 10) + "@shop.dev"
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.RegisterRequest{Name: "Alice", Email: email, Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotName, gotEmail, gotPassword string) (string, error) {
		if gotEmail != email || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotEmail, gotPassword)
		}
		return "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"success":true}` {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestAuthHandlerRegisterFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "invalid credentials", body: []byte(`{"name":"","email":"","password":""}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}}, status: http.StatusBadRequest},
		{name: "already exists", body: []byte(`{"name":"a","email":"a@b.c","password":"d"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
		{name: "internal", body: []byte(`{"name":"a","email":"a@b.c","password":"d"}`), facade: testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
			return "", errors.New("boom")
		}}, status: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(tc.facade).Register, nil, tc.body, map[string]string{"Content-Type": "application/json"})
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
			var body dto.ErrorResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("expected error body, got %q", resp.Body.String())
			}
			if body.Message == "" {
				t.Fatal("expected error message")
			}
		})
	}
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@shop.dev", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatal("expected auth header to be set")
	}

	t.Run("invalid credentials", func(t *testing.T) {
		handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
			return "", domainErrors.ErrInvalidCredentials
		}})
		resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, nil)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", resp.Code)
		}
	})

	t.Run("bad json", func(t *testing.T) {
		resp := performRequest(t, http.MethodPost, "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, nil, []byte("not json"), nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func checkoutBody(t *testing.T, productID string) []byte {
	t.Helper()
	body, err := json.Marshal(dto.CreateOrderRequest{
		OrderItems: []dto.OrderItemRequest{
			{Product: productID, Name: "Keyboard", Quantity: 2, Price: 49.9},
		},
		ShippingInfo:   model.ShippingInfo{Address: "1 Main St", City: "Springfield", Country: "US"},
		ItemsPrice:     99.8,
		TaxAmount:      9.98,
		ShippingAmount: 5,
		TotalAmount:    114.78,
		PaymentMethod:  "Card",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return body
}

func TestOrderHandlerCreate(t *testing.T) {
	productID := uuid.New()
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(ctx context.Context, order *model.Order, userID int64) (*model.Order, error) {
		if userID != 7 {
			t.Fatalf("unexpected user id %d", userID)
		}
		if len(order.OrderItems) != 1 || order.OrderItems[0].Product != productID {
			t.Fatalf("unexpected items: %+v", order.OrderItems)
		}
		order.ID = uuid.New()
		order.UserID = userID
		order.Status = model.OrderStatusProcessing
		return order, nil
	}})

	resp := performRequest(t, http.MethodPost, "/orders/new", handler.Create, asUser(7), checkoutBody(t, productID.String()), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var payload struct {
		NewOrder dto.OrderResponse `json:"newOrder"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body %q: %v", resp.Body.String(), err)
	}
	if payload.NewOrder.OrderStatus != string(model.OrderStatusProcessing) {
		t.Fatalf("expected Processing, got %q", payload.NewOrder.OrderStatus)
	}
}

func TestOrderHandlerCreateFailures(t *testing.T) {
	t.Run("bad json", func(t *testing.T) {
		resp := performRequest(t, http.MethodPost, "/orders/new", NewOrderHandler(testhelpers.OrderFacadeStub{}).Create, asUser(1), []byte("not json"), nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("malformed product id", func(t *testing.T) {
		resp := performRequest(t, http.MethodPost, "/orders/new", NewOrderHandler(testhelpers.OrderFacadeStub{}).Create, asUser(1), checkoutBody(t, "not-a-uuid"), nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(context.Context, *model.Order, int64) (*model.Order, error) {
			return nil, fmt.Errorf("%w: order must contain at least one item", domainErrors.ErrValidation)
		}})
		resp := performRequest(t, http.MethodPost, "/orders/new", handler.Create, asUser(1), checkoutBody(t, uuid.NewString()), nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func TestOrderHandlerDetail(t *testing.T) {
	id := uuid.New()
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(ctx context.Context, got uuid.UUID) (*model.Order, error) {
		if got != id {
			t.Fatalf("unexpected id %s", got)
		}
		return &model.Order{ID: id, Status: model.OrderStatusShipped, User: &model.UserRef{ID: 1, Name: "Alice", Email: "alice@shop.dev"}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders/"+id.String(), func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		handler.Detail(c)
	}, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload struct {
		Order dto.OrderResponse `json:"order"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if payload.Order.User == nil || payload.Order.User.Email != "alice@shop.dev" {
		t.Fatalf("expected embedded owner, got %+v", payload.Order.User)
	}

	t.Run("not found", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(context.Context, uuid.UUID) (*model.Order, error) {
			return nil, domainErrors.ErrNotFound
		}})
		resp := performRequest(t, http.MethodGet, "/orders/"+id.String(), func(c *gin.Context) {
			c.Params = gin.Params{{Key: "id", Value: id.String()}}
			handler.Detail(c)
		}, nil, nil, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.Code)
		}
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := performRequest(t, http.MethodGet, "/orders/bad", func(c *gin.Context) {
			c.Params = gin.Params{{Key: "id", Value: "bad"}}
			NewOrderHandler(testhelpers.OrderFacadeStub{}).Detail(c)
		}, nil, nil, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}

func TestOrderHandlerMyOrders(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersForFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
		if userID != 7 {
			t.Fatalf("unexpected user id %d", userID)
		}
		return []model.Order{{ID: uuid.New(), UserID: 7}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/me/orders", handler.MyOrders, asUser(7), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload struct {
		Orders []dto.OrderResponse `json:"orders"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(payload.Orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(payload.Orders))
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	id := uuid.New()
	body := []byte(`{"status":"Shipped"}`)

	var gotStatus model.OrderStatus
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateStatusFn: func(ctx context.Context, gotID uuid.UUID, status model.OrderStatus) error {
		if gotID != id {
			t.Fatalf("unexpected id %s", gotID)
		}
		gotStatus = status
		return nil
	}})
	resp := performRequest(t, http.MethodPut, "/admin/orders/"+id.String(), func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		handler.UpdateStatus(c)
	}, nil, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotStatus != model.OrderStatusShipped {
		t.Fatalf("expected Shipped, got %q", gotStatus)
	}
	if resp.Body.String() != `{"success":true}` {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}

	failures := []struct {
		name   string
		err    error
		status int
	}{
		{"already shipped", fmt.Errorf("%w: order is already shipped and awaiting delivery", domainErrors.ErrConflict), http.StatusBadRequest},
		{"already delivered", fmt.Errorf("%w: order is already delivered", domainErrors.ErrConflict), http.StatusBadRequest},
		{"insufficient stock", fmt.Errorf("product x: %w", domainErrors.ErrInsufficientStock), http.StatusBadRequest},
		{"not found", domainErrors.ErrNotFound, http.StatusNotFound},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateStatusFn: func(context.Context, uuid.UUID, model.OrderStatus) error {
				return tc.err
			}})
			resp := performRequest(t, http.MethodPut, "/admin/orders/"+id.String(), func(c *gin.Context) {
				c.Params = gin.Params{{Key: "id", Value: id.String()}}
				handler.UpdateStatus(c)
			}, nil, body, nil)
			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
			var errBody dto.ErrorResponse
			if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil || errBody.Message == "" {
				t.Fatalf("expected error message, got %q", resp.Body.String())
			}
		})
	}
}

func TestOrderHandlerDelete(t *testing.T) {
	id := uuid.New()
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodDelete, "/admin/orders/"+id.String(), func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		handler.Delete(c)
	}, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"success":true}` {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}

	t.Run("not found", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.OrderFacadeStub{DeleteFn: func(context.Context, uuid.UUID) error {
			return domainErrors.ErrNotFound
		}})
		resp := performRequest(t, http.MethodDelete, "/admin/orders/"+id.String(), func(c *gin.Context) {
			c.Params = gin.Params{{Key: "id", Value: id.String()}}
			handler.Delete(c)
		}, nil, nil, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.Code)
		}
	})
}

func TestOrderHandlerSales(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{DailySalesFn: func(ctx context.Context, start, end time.Time) ([]model.DailySales, error) {
		if start.Format("2006-01-02") != "2026-01-01" || end.Format("2006-01-02") != "2026-01-31" {
			t.Fatalf("unexpected range %v %v", start, end)
		}
		return []model.DailySales{{Date: "2026-01-02", TotalSales: 35, NumOfOrders: 3}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/admin/getSales", handler.Sales, func(c *gin.Context) {
		c.Request.URL.RawQuery = "startDate=2026-01-01&endDate=2026-01-31"
	}, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.SalesResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if !payload.Success || len(payload.Sales) != 1 || payload.Sales[0].TotalSales != 35 {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	t.Run("bad dates", func(t *testing.T) {
		resp := performRequest(t, http.MethodGet, "/admin/getSales", handler.Sales, func(c *gin.Context) {
			c.Request.URL.RawQuery = "startDate=yesterday&endDate=2026-01-31"
		}, nil, nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})

	t.Run("reporting failure", func(t *testing.T) {
		handler := NewOrderHandler(testhelpers.OrderFacadeStub{DailySalesFn: func(context.Context, time.Time, time.Time) ([]model.DailySales, error) {
			return nil, fmt.Errorf("%w: db gone", domainErrors.ErrReporting)
		}})
		resp := performRequest(t, http.MethodGet, "/admin/getSales", handler.Sales, func(c *gin.Context) {
			c.Request.URL.RawQuery = "startDate=2026-01-01&endDate=2026-01-31"
		}, nil, nil)
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("expected status 500, got %d", resp.Code)
		}
	})
}

func TestProductHandlerList(t *testing.T) {
	handler := NewProductHandler(testhelpers.ProductFacadeStub{ProductsFn: func(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
		if filter.Keyword != "key" || filter.Category != "Electronics" || filter.Page != 2 {
			t.Fatalf("unexpected filter: %+v", filter)
		}
		if filter.MinPrice == nil || *filter.MinPrice != 10 || filter.MaxPrice == nil || *filter.MaxPrice != 100 {
			t.Fatalf("unexpected price bounds: %+v", filter)
		}
		return []model.Product{{ID: uuid.New(), Name: "Keyboard"}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/products", handler.List, func(c *gin.Context) {
		c.Request.URL.RawQuery = "keyword=key&category=Electronics&page=2&price%5Bgte%5D=10&price%5Blte%5D=100"
	}, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload struct {
		Products []dto.ProductResponse `json:"products"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if len(payload.Products) != 1 || payload.Products[0].Name != "Keyboard" {
		t.Fatalf("unexpected products: %+v", payload.Products)
	}
}

func TestProductHandlerDetail(t *testing.T) {
	id := uuid.New()
	handler := NewProductHandler(testhelpers.ProductFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/product/"+id.String(), func(c *gin.Context) {
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		handler.Detail(c)
	}, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	t.Run("not found", func(t *testing.T) {
		handler := NewProductHandler(testhelpers.ProductFacadeStub{ProductFn: func(context.Context, uuid.UUID) (*model.Product, error) {
			return nil, domainErrors.ErrNotFound
		}})
		resp := performRequest(t, http.MethodGet, "/product/"+id.String(), func(c *gin.Context) {
			c.Params = gin.Params{{Key: "id", Value: id.String()}}
			handler.Detail(c)
		}, nil, nil, nil)
		if resp.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", resp.Code)
		}
	})
}

func TestProductHandlerCategories(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/products/categories", NewProductHandler(testhelpers.ProductFacadeStub{}).Categories, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	t.Run("empty catalog yields empty array", func(t *testing.T) {
		handler := NewProductHandler(testhelpers.ProductFacadeStub{CategoriesFn: func(context.Context) ([]string, error) {
			return nil, nil
		}})
		resp := performRequest(t, http.MethodGet, "/products/categories", handler.Categories, nil, nil, nil)
		if resp.Body.String() != `{"categories":[]}` {
			t.Fatalf("unexpected body %q", resp.Body.String())
		}
	})
}

func TestProductHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateProductRequest{Name: "Keyboard", Price: 49.9, Category: "Electronics", Stock: 5})
	handler := NewProductHandler(testhelpers.ProductFacadeStub{CreateFn: func(ctx context.Context, product *model.Product) (*model.Product, error) {
		if product.Name != "Keyboard" || product.Stock != 5 {
			t.Fatalf("unexpected product: %+v", product)
		}
		product.ID = uuid.New()
		return product, nil
	}})
	resp := performRequest(t, http.MethodPost, "/admin/add_products", handler.Create, nil, body, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	t.Run("validation error", func(t *testing.T) {
		handler := NewProductHandler(testhelpers.ProductFacadeStub{CreateFn: func(context.Context, *model.Product) (*model.Product, error) {
			return nil, fmt.Errorf("%w: product name is required", domainErrors.ErrValidation)
		}})
		resp := performRequest(t, http.MethodPost, "/admin/add_products", handler.Create, nil, []byte(`{"price":1}`), nil)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", resp.Code)
		}
	})
}
