package components

import (
	"order-fulfillment/internal/infra/eventbus"
	repo_impl "order-fulfillment/internal/infra/repository"
	"order-fulfillment/internal/usecase/commands"
	"order-fulfillment/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
		),
		fx.Annotate(
			repo_impl.NewInventoryStore,
			fx.As(new(commands.InventoryStore)),
		),
		fx.Annotate(
			repo_impl.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(commands.ProductReadStore)),
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			eventbus.NewPublisher,
			fx.As(new(commands.EventPublisher)),
		),
	),
)
