package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog item referenced by order items.
// Stock is decremented by fulfillment and may go negative unless the
// insufficient-stock rejection policy is enabled.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       float64
	Category    string
	Seller      string
	Stock       int
	CreatedAt   time.Time
}

// ProductFilter narrows catalog listing.
type ProductFilter struct {
	Keyword  string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	PerPage  int
}
