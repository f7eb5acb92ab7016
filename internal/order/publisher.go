package order

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const eventOrderRegistered = "order.registered"

type OrderEvent struct {
	EventID    string          `json:"event_id"`
	Type       string          `json:"type"`
	OrderID    uint            `json:"order_id"`
	Address    string          `json:"address"`
	Amount     decimal.Decimal `json:"amount"`
	Items      int             `json:"items"`
	OccurredAt time.Time       `json:"occurred_at"`
}

type EventPublisher interface {
	PublishOrderRegistered(ctx context.Context, order *Order) error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaPublisher struct {
	writer messageWriter
}

// NewEventPublisher drops events when writer is nil.
func NewEventPublisher(writer *kafka.Writer) EventPublisher {
	if writer == nil {
		return noopPublisher{}
	}
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) PublishOrderRegistered(ctx context.Context, order *Order) error {
	payload, err := json.Marshal(OrderEvent{
		EventID:    uuid.NewString(),
		Type:       eventOrderRegistered,
		OrderID:    order.ID,
		Address:    order.Address,
		Amount:     order.Amount(),
		Items:      len(order.Items),
		OccurredAt: order.RegisteredAt,
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(order.ID), 10)),
		Value: payload,
	})
}

type noopPublisher struct{}

func (noopPublisher) PublishOrderRegistered(ctx context.Context, order *Order) error {
	return nil
}
