package broker_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/kafka"
	kafkaMocks "concierge/infras/kafka/mocks"
	"concierge/internal/broker"
)

func TestStream_Forward(t *testing.T) {
	event := broker.NewEvent(broker.EventNewRequest, map[string]string{"id": "r1"})

	t.Run("disabled stream never calls kafka", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		stream := broker.NewStream(&config.Config{}, client)

		assert.NoError(t, stream.Forward(context.Background(), "H1", event))
	})

	t.Run("keys messages by hotel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}
		cfg.Kafka.Enable = true
		cfg.Kafka.Topic = "service-requests"

		client.EXPECT().
			SendMessages(gomock.Any(), "service-requests", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				assert.Len(t, messages, 1)
				assert.Equal(t, "H1", messages[0].Key)
				assert.Equal(t, broker.EventNewRequest, messages[0].Headers["event"])
				assert.Equal(t, event, messages[0].Value)

				return nil
			})

		assert.NoError(t, broker.NewStream(cfg, client).Forward(context.Background(), "H1", event))
	})

	t.Run("send failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}
		cfg.Kafka.Enable = true

		client.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

		assert.Error(t, broker.NewStream(cfg, client).Forward(context.Background(), "H1", event))
	})
}
