package usecase

import (
	"go.uber.org/fx"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	newOrderUseCase,
	NewCatalogUseCase,
	NewReportUseCase,
)

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	Config *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Config.RejectInsufficientStock)
}
