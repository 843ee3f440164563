package broker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/config"
	otelMocks "concierge/infras/otel/mocks"
)

func newTestHub(sendBuffer int) *Hub {
	cfg := &config.Config{}
	cfg.App.Realtime.SendBuffer = sendBuffer

	return New(cfg, nil, noopStream{}, otelMocks.NewOtel())
}

func register(h *Hub, buffer int) *Client {
	client := &Client{id: "c", hub: h, send: make(chan []byte, buffer)}

	h.mu.Lock()
	h.clients[client] = ""
	h.mu.Unlock()

	return client
}

func TestHub_JoinReplacesMembership(t *testing.T) {
	h := newTestHub(4)
	client := register(h, 4)

	require.True(t, h.Join(client, "H1"))
	assert.Equal(t, 1, h.Subscribers("H1"))

	require.True(t, h.Join(client, "H2"))
	assert.Equal(t, 0, h.Subscribers("H1"))
	assert.Equal(t, 1, h.Subscribers("H2"))

	require.NoError(t, h.Publish(context.Background(), "H1", NewEvent(EventNewRequest, "x")))
	assert.Empty(t, client.send)
}

func TestHub_JoinUnknownClient(t *testing.T) {
	h := newTestHub(1)

	assert.False(t, h.Join(&Client{send: make(chan []byte, 1)}, "H1"))
	assert.Equal(t, 0, h.Subscribers("H1"))
}

func TestHub_PublishOrder(t *testing.T) {
	h := newTestHub(8)
	client := register(h, 8)
	h.Join(client, "H1")

	for _, name := range []string{"first", "second", "third"} {
		require.NoError(t, h.Publish(context.Background(), "H1", NewEvent(EventRequestUpdated, name)))
	}

	for _, want := range []string{"first", "second", "third"} {
		var event Event
		require.NoError(t, json.Unmarshal(<-client.send, &event))
		assert.Equal(t, EventRequestUpdated, event.Name)
		assert.Equal(t, want, event.Data)
	}
}

func TestHub_PublishDropsFullQueue(t *testing.T) {
	h := newTestHub(1)
	slow := register(h, 1)
	fast := register(h, 4)
	h.Join(slow, "H1")
	h.Join(fast, "H1")

	require.NoError(t, h.Publish(context.Background(), "H1", NewEvent(EventNewRequest, 1)))
	require.NoError(t, h.Publish(context.Background(), "H1", NewEvent(EventNewRequest, 2)))

	assert.Equal(t, 1, h.Subscribers("H1"))
	assert.Len(t, fast.send, 2)

	<-slow.send
	_, open := <-slow.send
	assert.False(t, open)
}

func TestHub_LeaveIsIdempotent(t *testing.T) {
	h := newTestHub(1)
	client := register(h, 1)
	h.Join(client, "H1")

	h.Leave(client)
	h.Leave(client)

	assert.Equal(t, 0, h.Subscribers("H1"))
	_, open := <-client.send
	assert.False(t, open)
}

func TestHub_Close(t *testing.T) {
	h := newTestHub(1)
	a := register(h, 1)
	b := register(h, 1)
	h.Join(a, "H1")

	h.Close()

	assert.Equal(t, 0, h.Subscribers("H1"))

	for _, client := range []*Client{a, b} {
		_, open := <-client.send
		assert.False(t, open)
	}
}
