package components

import (
	"order-fulfillment/internal/infra/remote"
	"order-fulfillment/internal/pkg/config"
	"order-fulfillment/internal/usecase/commands"

	"go.uber.org/fx"
)

var RemoteModule = fx.Module("remote",
	fx.Provide(
		fx.Annotate(
			NewProductClient,
			fx.As(new(commands.ProductGateway)),
		),
		fx.Annotate(
			NewInventoryClient,
			fx.As(new(commands.InventoryGateway)),
		),
	),
)

func NewProductClient(cfg config.Config) *remote.ProductClient {
	return remote.NewProductClient(cfg.Product.BaseURL, cfg.Product.Timeout)
}

func NewInventoryClient(cfg config.Config) *remote.InventoryClient {
	return remote.NewInventoryClient(cfg.Inventory.BaseURL, cfg.Inventory.Timeout)
}
