package bootstrap

import (
	"context"

	"order-fulfillment/internal/infra/eventbus"
	"order-fulfillment/internal/pkg/config"
	"order-fulfillment/internal/worker"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewOrderCreatedWriter,
		NewOrderCreatedReader,
	),
)

func NewOrderCreatedWriter(lc fx.Lifecycle, cfg config.Config) *kafka.Writer {
	writer := eventbus.NewOrderCreatedWriter(cfg.Kafka.Brokers, cfg.Kafka.OrderCreatedTopic)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return writer.Close()
		},
	})

	return writer
}

func NewOrderCreatedReader(lc fx.Lifecycle, cfg config.Config) *kafka.Reader {
	reader := worker.NewOrderCreatedReader(cfg.Kafka.Brokers, cfg.Kafka.OrderCreatedTopic, cfg.Kafka.ConsumerGroup)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return reader.Close()
		},
	})

	return reader
}
