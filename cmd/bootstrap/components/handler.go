package components

import (
	"order-fulfillment/internal/handler"
	"order-fulfillment/internal/handler/api"
	"order-fulfillment/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOrderHandler,
		api.NewInventoryHandler,
		api.NewProductHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
