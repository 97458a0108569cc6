package components

import (
	"context"

	"order-fulfillment/internal/infra/notify"
	"order-fulfillment/internal/pkg/config"
	"order-fulfillment/internal/worker"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewNotifier,
		NewNotificationWorker,
	),
	fx.Invoke(startNotificationWorker),
)

func NewNotifier(cfg config.Config) worker.Notifier {
	if cfg.Twilio.AccountSID == "" {
		return notify.NewLogNotifier()
	}
	return notify.NewTwilioNotifier(cfg.Twilio)
}

func NewNotificationWorker(reader *kafka.Reader, notifier worker.Notifier) *worker.NotificationWorker {
	return worker.NewNotificationWorker(reader, notifier)
}

func startNotificationWorker(lc fx.Lifecycle, w *worker.NotificationWorker) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go w.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
