package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/test"
)

func TestReportUseCaseNormalizesRange(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewReportUseCase(repo)

	start := time.Date(2026, 1, 2, 13, 45, 12, 0, time.UTC)
	end := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	if _, err := uc.ComputeDailySales(context.Background(), start, end); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantFrom := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	if !repo.SalesFrom.Equal(wantFrom) {
		t.Fatalf("expected start of day %v, got %v", wantFrom, repo.SalesFrom)
	}
	wantTo := time.Date(2026, 1, 5, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	if !repo.SalesTo.Equal(wantTo) {
		t.Fatalf("expected end of day %v, got %v", wantTo, repo.SalesTo)
	}
}

func TestReportUseCaseReturnsBuckets(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.Sales = []model.DailySales{
		{Date: "2026-01-02", TotalSales: 30, NumOfOrders: 2},
		{Date: "2026-01-03", TotalSales: 5, NumOfOrders: 1},
	}
	uc := NewReportUseCase(repo)

	sales, err := uc.ComputeDailySales(context.Background(), time.Now().AddDate(0, 0, -7), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(sales))
	}
	var total float64
	var orders int
	for _, bucket := range sales {
		total += bucket.TotalSales
		orders += bucket.NumOfOrders
	}
	if total != 35 || orders != 3 {
		t.Fatalf("expected total 35 over 3 orders, got %v over %d", total, orders)
	}
}

func TestReportUseCaseEmptyRange(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewReportUseCase(repo)

	sales, err := uc.ComputeDailySales(context.Background(), time.Now(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sales == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(sales) != 0 {
		t.Fatalf("expected no buckets, got %d", len(sales))
	}
}

func TestReportUseCaseWrapsRepositoryError(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.SalesErr = errors.New("db gone")
	uc := NewReportUseCase(repo)

	_, err := uc.ComputeDailySales(context.Background(), time.Now(), time.Now())
	if !errors.Is(err, domainErrors.ErrReporting) {
		t.Fatalf("expected reporting error, got %v", err)
	}
}
