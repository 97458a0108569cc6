package bootstrap

import (
	"order-fulfillment/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	KafkaModule,
	components.RepositoryModule,
	components.RemoteModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.WorkerModule,
)
