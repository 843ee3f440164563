package broker

//go:generate go run go.uber.org/mock/mockgen -source=./stream.go -destination=./mocks/stream_mock.go -package=mocks

import (
	"context"
	"fmt"

	"concierge/config"
	"concierge/infras/kafka"
)

const headerEvent = "event"

// Stream receives every published event after local fan-out so other
// consumers can follow request lifecycles.
type Stream interface {
	Forward(ctx context.Context, hotelID string, event Event) error
}

type kafkaStream struct {
	client kafka.Client
	topic  string
}

type noopStream struct{}

// NewStream returns the Kafka stream when Kafka is enabled and a no-op one otherwise.
func NewStream(cfg *config.Config, client kafka.Client) Stream {
	if !cfg.Kafka.Enable {
		return noopStream{}
	}

	return &kafkaStream{client: client, topic: cfg.Kafka.Topic}
}

// Events are keyed by hotel so a partition keeps one hotel's order.
func (k *kafkaStream) Forward(ctx context.Context, hotelID string, event Event) error {
	err := k.client.SendMessages(ctx, k.topic, kafka.Message{
		Key:     hotelID,
		Value:   event,
		Headers: map[string]string{headerEvent: event.Name},
	})
	if err != nil {
		return fmt.Errorf("failed to forward event: %w", err)
	}

	return nil
}

func (noopStream) Forward(context.Context, string, Event) error {
	return nil
}
