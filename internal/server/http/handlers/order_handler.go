package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// OrderHandler manages order lifecycle and sales reporting endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/v1/orders/new.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	items := make([]model.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		productID, err := uuid.Parse(item.Product)
		if err != nil {
			respondBadRequest(c, "invalid product id in order items")
			return
		}
		items = append(items, model.OrderItem{
			Product:  productID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	order := &model.Order{
		OrderItems:     items,
		ShippingInfo:   req.ShippingInfo,
		ItemsPrice:     req.ItemsPrice,
		TaxAmount:      req.TaxAmount,
		ShippingAmount: req.ShippingAmount,
		TotalAmount:    req.TotalAmount,
		PaymentMethod:  req.PaymentMethod,
		PaymentInfo:    req.PaymentInfo,
	}

	created, err := h.facade.CreateOrder(c.Request.Context(), order, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"newOrder": toOrderResponse(*created)})
}

// Detail handles GET /api/v1/orders/:id.
func (h *OrderHandler) Detail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return
	}

	order, err := h.facade.Order(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order": toOrderResponse(*order)})
}

// MyOrders handles GET /api/v1/me/orders.
func (h *OrderHandler) MyOrders(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.OrdersForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": toOrderResponses(orders)})
}

// AllOrders handles GET /api/v1/admin/orders.
func (h *OrderHandler) AllOrders(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": toOrderResponses(orders)})
}

// UpdateStatus handles PUT /api/v1/admin/orders/:id.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	if err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Delete handles DELETE /api/v1/admin/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

const salesDateLayout = "2006-01-02"

// Sales handles GET /api/v1/admin/getSales.
func (h *OrderHandler) Sales(c *gin.Context) {
	start, err := parseSalesDate(c.Query("startDate"))
	if err != nil {
		respondBadRequest(c, "invalid startDate")
		return
	}
	end, err := parseSalesDate(c.Query("endDate"))
	if err != nil {
		respondBadRequest(c, "invalid endDate")
		return
	}

	sales, err := h.facade.DailySales(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SalesResponse{Success: true, Sales: sales})
}

func parseSalesDate(value string) (time.Time, error) {
	if t, err := time.Parse(salesDateLayout, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             order.ID.String(),
		OrderItems:     order.OrderItems,
		ShippingInfo:   order.ShippingInfo,
		ItemsPrice:     order.ItemsPrice,
		TaxAmount:      order.TaxAmount,
		ShippingAmount: order.ShippingAmount,
		TotalAmount:    order.TotalAmount,
		PaymentMethod:  order.PaymentMethod,
		PaymentInfo:    order.PaymentInfo,
		OrderStatus:    string(order.Status),
		DeliveredAt:    order.DeliveredAt,
		User:           order.User,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}
