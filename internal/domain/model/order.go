package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus describes order fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Valid reports whether the status is one of the known lifecycle values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderItem is a single purchased position embedded in an order.
type OrderItem struct {
	Product  uuid.UUID `json:"product"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
}

// ShippingInfo holds destination address fields. Opaque to lifecycle logic.
type ShippingInfo struct {
	Address string `json:"address"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	PhoneNo string `json:"phoneNo"`
}

// PaymentInfo holds opaque payment metadata.
type PaymentInfo struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

// UserRef is the owner projection joined into order reads.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Order describes a checkout transaction record with items, amounts,
// status and owner. Amount consistency is caller-supplied and not enforced.
type Order struct {
	ID             uuid.UUID
	OrderItems     []OrderItem
	ShippingInfo   ShippingInfo
	ItemsPrice     float64
	TaxAmount      float64
	ShippingAmount float64
	TotalAmount    float64
	PaymentMethod  string
	PaymentInfo    PaymentInfo
	Status         OrderStatus
	DeliveredAt    *time.Time
	UserID         int64
	User           *UserRef
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
