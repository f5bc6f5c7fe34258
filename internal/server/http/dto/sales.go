package dto

import "github.com/polkiloo/storefront/internal/domain/model"

// SalesResponse carries the per-day sales aggregation.
type SalesResponse struct {
	Success bool               `json:"success"`
	Sales   []model.DailySales `json:"sales"`
}
