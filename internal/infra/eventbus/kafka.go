package eventbus

import (
	"context"
	"encoding/json"

	"order-fulfillment/internal/domain/order"
	"order-fulfillment/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Publisher writes order-created events to Kafka. At-least-once on the
// broker side, best effort on ours: the caller decides whether a publish
// failure matters.
type Publisher struct {
	writer messageWriter
}

func NewPublisher(writer *kafka.Writer) *Publisher {
	return &Publisher{writer: writer}
}

func newPublisherWithWriter(writer messageWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, evt order.CreatedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to encode order-created event")
	}

	msg := kafka.Message{
		Key:   []byte(evt.SkuCode),
		Value: payload,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrap(err, "failed to publish order-created event")
	}

	return nil
}

// NewOrderCreatedWriter builds the writer for the order-created topic.
func NewOrderCreatedWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
