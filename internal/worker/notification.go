package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"order-fulfillment/internal/domain/order"

	"github.com/segmentio/kafka-go"
)

// Notifier delivers a message to a customer. Implementations must be safe
// for concurrent use.
type Notifier interface {
	Send(ctx context.Context, to, body string) error
}

type eventReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// NotificationWorker consumes order-created events and sends a confirmation
// SMS per order. Delivery failures are logged and dropped; the event stream
// is not retried from here.
type NotificationWorker struct {
	reader   eventReader
	notifier Notifier
}

func NewNotificationWorker(reader *kafka.Reader, notifier Notifier) *NotificationWorker {
	return &NotificationWorker{reader: reader, notifier: notifier}
}

func (w *NotificationWorker) Run(ctx context.Context) {
	slog.Info("notification worker started")

	for {
		msg, err := w.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				slog.Info("notification worker stopped")
				return
			}
			slog.Error("failed to read order-created event", "error", err)
			continue
		}

		var evt order.CreatedEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			slog.Error("failed to decode order-created event", "offset", msg.Offset, "error", err)
			continue
		}

		w.handle(ctx, evt)
	}
}

func (w *NotificationWorker) handle(ctx context.Context, evt order.CreatedEvent) {
	slog.Info("received order notification event", "sku_code", evt.SkuCode, "order_id", evt.OrderID)

	body := composeMessage(evt)
	if err := w.notifier.Send(ctx, evt.CustomerPhone, body); err != nil {
		slog.Error("failed to send SMS notification", "sku_code", evt.SkuCode, "error", err)
		return
	}

	slog.Info("SMS notification sent", "sku_code", evt.SkuCode, "customer_name", evt.CustomerName)
}

func composeMessage(evt order.CreatedEvent) string {
	return fmt.Sprintf(
		"Hello %s, your order for %s (SKU: %s, Quantity: %d) is confirmed. It will be shipped to %s.",
		evt.CustomerName,
		evt.ProductName,
		evt.SkuCode,
		evt.Quantity,
		evt.ShippingAddress,
	)
}

// NewOrderCreatedReader builds the consumer for the order-created topic.
func NewOrderCreatedReader(brokers []string, topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
	})
}
