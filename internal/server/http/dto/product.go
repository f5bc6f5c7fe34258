package dto

import "time"

// CreateProductRequest describes new catalog item payload.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Seller      string  `json:"seller"`
	Stock       int     `json:"stock"`
}

// ProductResponse mirrors a catalog item.
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Seller      string    `json:"seller"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"createdAt"`
}
