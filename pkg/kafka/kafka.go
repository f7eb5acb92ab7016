package kafka

import (
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

// NewWriter returns nil when broker is empty so callers can run without events.
func NewWriter(broker, topic string) *kafkago.Writer {
	if broker == "" {
		return nil
	}

	return &kafkago.Writer{
		Addr:                   kafkago.TCP(broker),
		Topic:                  topic,
		Balancer:               &kafkago.LeastBytes{},
		WriteTimeout:           5 * time.Second,
		AllowAutoTopicCreation: true,
	}
}
