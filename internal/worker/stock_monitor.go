package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CatalogFacade exposes the subset of application functionality required by the monitor.
type CatalogFacade interface {
	LowStockProducts(ctx context.Context, threshold, limit int) ([]model.Product, error)
}

// StockMonitor periodically scans the catalog for products that fulfillment
// drained to or below the alert threshold and reports them. Fulfillment has no
// stock floor, so levels may also be negative.
type StockMonitor struct {
	facade       CatalogFacade
	pollInterval time.Duration
	threshold    int
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs     chan model.Product
	wg       sync.WaitGroup
	cancel   context.CancelFunc
	mu       sync.Mutex
	lastSeen map[uuid.UUID]int
}

// NewStockMonitor constructs stock monitor worker pool.
func NewStockMonitor(facade CatalogFacade, pollInterval time.Duration, threshold, batchSize, workers int, logger *slog.Logger) *StockMonitor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &StockMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		threshold:    threshold,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Product, batchSize*workers),
		lastSeen:     make(map[uuid.UUID]int),
	}
}

// Start launches background scanning.
func (m *StockMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *StockMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *StockMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.fetchAndDispatch(ctx)
		}
	}
}

func (m *StockMonitor) fetchAndDispatch(ctx context.Context) {
	products, err := m.facade.LowStockProducts(ctx, m.threshold, m.batchSize)
	if err != nil {
		m.logger.Error("fetch low stock products failed", slog.String("error", err.Error()))
		return
	}
	for _, product := range products {
		select {
		case <-ctx.Done():
			return
		case m.jobs <- product:
		}
	}
}

func (m *StockMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case product, ok := <-m.jobs:
			if !ok {
				return
			}
			m.handleProduct(product)
		}
	}
}

func (m *StockMonitor) handleProduct(product model.Product) {
	m.mu.Lock()
	previous, seen := m.lastSeen[product.ID]
	m.lastSeen[product.ID] = product.Stock
	m.mu.Unlock()

	// Alert once per stock level, not on every scan.
	if seen && previous == product.Stock {
		return
	}

	level := slog.LevelWarn
	if product.Stock < 0 {
		level = slog.LevelError
	}
	m.logger.Log(context.Background(), level, "low stock",
		slog.String("product", product.ID.String()),
		slog.String("name", product.Name),
		slog.Int("stock", product.Stock),
		slog.Int("threshold", m.threshold),
	)
}
