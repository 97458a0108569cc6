//go:build unit

package worker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"order-fulfillment/internal/domain/order"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu    sync.Mutex
	sent  []sentMessage
	fail  bool
}

type sentMessage struct {
	to   string
	body string
}

func (n *recordingNotifier) Send(_ context.Context, to, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("delivery failed")
	}
	n.sent = append(n.sent, sentMessage{to: to, body: body})
	return nil
}

// queueReader replays a fixed set of messages, then signals end of stream.
type queueReader struct {
	messages []kafka.Message
}

func (r *queueReader) ReadMessage(_ context.Context) (kafka.Message, error) {
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	return msg, nil
}

func eventMessage(t *testing.T, evt order.CreatedEvent) kafka.Message {
	t.Helper()
	payload, err := json.Marshal(evt)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(evt.SkuCode), Value: payload}
}

func TestComposeMessage(t *testing.T) {
	evt := order.CreatedEvent{
		CustomerName:    "Jordan Lee",
		ProductName:     "Laptop Pro 15",
		SkuCode:         "PROD-001",
		Quantity:        2,
		ShippingAddress: "42 Harbour St, Springfield",
	}

	assert.Equal(t,
		"Hello Jordan Lee, your order for Laptop Pro 15 (SKU: PROD-001, Quantity: 2) is confirmed. It will be shipped to 42 Harbour St, Springfield.",
		composeMessage(evt),
	)
}

func TestNotificationWorkerRun(t *testing.T) {
	ctx := context.Background()

	t.Run("sends one SMS per event", func(t *testing.T) {
		evt := order.CreatedEvent{
			OrderID:         "7f9c2ba4-e88f-4df5-a8c3-1d2e3f4a5b6c",
			SkuCode:         "PROD-001",
			ProductName:     "Laptop Pro 15",
			Quantity:        1,
			CustomerName:    "Jordan Lee",
			CustomerPhone:   "+15551234567",
			ShippingAddress: "42 Harbour St, Springfield",
			OrderDate:       time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		}

		notifier := &recordingNotifier{}
		w := &NotificationWorker{
			reader:   &queueReader{messages: []kafka.Message{eventMessage(t, evt)}},
			notifier: notifier,
		}

		w.Run(ctx)

		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "+15551234567", notifier.sent[0].to)
		assert.Contains(t, notifier.sent[0].body, "Laptop Pro 15")
	})

	t.Run("skips undecodable messages and keeps consuming", func(t *testing.T) {
		evt := order.CreatedEvent{SkuCode: "PROD-002", CustomerPhone: "+15557654321"}

		notifier := &recordingNotifier{}
		w := &NotificationWorker{
			reader: &queueReader{messages: []kafka.Message{
				{Value: []byte("{not json")},
				eventMessage(t, evt),
			}},
			notifier: notifier,
		}

		w.Run(ctx)

		require.Len(t, notifier.sent, 1)
		assert.Equal(t, "+15557654321", notifier.sent[0].to)
	})

	t.Run("delivery failure does not stop the loop", func(t *testing.T) {
		notifier := &recordingNotifier{fail: true}
		w := &NotificationWorker{
			reader: &queueReader{messages: []kafka.Message{
				eventMessage(t, order.CreatedEvent{SkuCode: "PROD-001"}),
				eventMessage(t, order.CreatedEvent{SkuCode: "PROD-002"}),
			}},
			notifier: notifier,
		}

		// Returns once the queue drains; failures are dropped on the floor.
		w.Run(ctx)
		assert.Empty(t, notifier.sent)
	})
}
