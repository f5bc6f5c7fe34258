package dto

import (
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderItemRequest is one position of a checkout payload.
type OrderItemRequest struct {
	Product  string  `json:"product"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateOrderRequest describes checkout payload. Amounts are caller-supplied.
type CreateOrderRequest struct {
	OrderItems     []OrderItemRequest `json:"orderItems"`
	ShippingInfo   model.ShippingInfo `json:"shippingInfo"`
	ItemsPrice     float64            `json:"itemsPrice"`
	TaxAmount      float64            `json:"taxAmount"`
	ShippingAmount float64            `json:"shippingAmount"`
	TotalAmount    float64            `json:"totalAmount"`
	PaymentMethod  string             `json:"paymentMethod"`
	PaymentInfo    model.PaymentInfo  `json:"paymentInfo"`
}

// UpdateOrderStatusRequest carries the requested status transition.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse mirrors the persisted order document.
type OrderResponse struct {
	ID             string             `json:"id"`
	OrderItems     []model.OrderItem  `json:"orderItems"`
	ShippingInfo   model.ShippingInfo `json:"shippingInfo"`
	ItemsPrice     float64            `json:"itemsPrice"`
	TaxAmount      float64            `json:"taxAmount"`
	ShippingAmount float64            `json:"shippingAmount"`
	TotalAmount    float64            `json:"totalAmount"`
	PaymentMethod  string             `json:"paymentMethod"`
	PaymentInfo    model.PaymentInfo  `json:"paymentInfo"`
	OrderStatus    string             `json:"orderStatus"`
	DeliveredAt    *time.Time         `json:"deliveredAt,omitempty"`
	User           *model.UserRef     `json:"user,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}
