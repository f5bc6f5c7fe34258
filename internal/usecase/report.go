package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// ReportUseCase aggregates orders into per-day sales summaries.
type ReportUseCase struct {
	orders repository.OrderRepository
}

// NewReportUseCase constructs ReportUseCase.
func NewReportUseCase(orders repository.OrderRepository) *ReportUseCase {
	return &ReportUseCase{orders: orders}
}

// ComputeDailySales sums totals and counts orders per calendar day over the
// inclusive [start, end] range. Start is normalized to the beginning of its
// day, end to the last instant of its day. An empty range yields an empty
// slice, never an error.
func (u *ReportUseCase) ComputeDailySales(ctx context.Context, start, end time.Time) ([]model.DailySales, error) {
	from := startOfDay(start)
	to := endOfDay(end)

	sales, err := u.orders.DailySales(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrReporting, err)
	}
	if sales == nil {
		sales = []model.DailySales{}
	}
	return sales, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
