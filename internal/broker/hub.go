// Package broker fans request lifecycle events out to the dashboards of a
// single hotel over WebSocket.
package broker

//go:generate go run go.uber.org/mock/mockgen -source=./hub.go -destination=./mocks/hub_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"concierge/config"
	"concierge/infras/metrics"
	"concierge/infras/otel"
	"concierge/shared/constant"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	deliveryQueued  = "queued"
	deliveryDropped = "dropped"

	joinAccepted = "accepted"
	joinRejected = "rejected"
)

type Publisher interface {
	Publish(ctx context.Context, hotelID string, event Event) error
}

type timings struct {
	pingPeriod time.Duration
	pongWait   time.Duration
	writeWait  time.Duration
	sendBuffer int
}

// Hub owns topic membership. A client is in at most one topic; joining a
// new one leaves the previous.
type Hub struct {
	auth    Authorizer
	stream  Stream
	otel    otel.Otel
	timings timings

	mu      sync.RWMutex
	clients map[*Client]string
	topics  map[string]map[*Client]struct{}
	closed  bool
}

func New(cfg *config.Config, auth Authorizer, stream Stream, otel otel.Otel) *Hub {
	rt := cfg.App.Realtime

	return &Hub{
		auth:   auth,
		stream: stream,
		otel:   otel,
		timings: timings{
			pingPeriod: seconds(rt.PingPeriodSeconds, 15), //nolint:mnd
			pongWait:   seconds(rt.PongWaitSeconds, 60),   //nolint:mnd
			writeWait:  seconds(rt.WriteWaitSeconds, 10),  //nolint:mnd
			sendBuffer: max(rt.SendBuffer, 1),
		},
		clients: map[*Client]string{},
		topics:  map[string]map[*Client]struct{}{},
	}
}

func seconds(value, fallback int) time.Duration {
	if value <= 0 {
		value = fallback
	}

	return time.Duration(value) * time.Second
}

// Serve registers conn and runs its pumps until the connection ends.
func (h *Hub) Serve(conn *websocket.Conn) {
	client := &Client{
		id:   uuid.NewString(),
		hub:  h,
		conn: conn,
		send: make(chan []byte, h.timings.sendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, constant.ResponseErrorPrepareShutdown),
			time.Now().Add(h.timings.writeWait))
		_ = conn.Close()

		return
	}

	h.clients[client] = constant.Empty
	h.mu.Unlock()

	metrics.ConnectionOpened()
	log.Debug().Str("client_id", client.id).Str("remote", conn.RemoteAddr().String()).Msg("dashboard connected")

	go client.writePump()
	client.readPump()
}

// Join moves client into the topic of hotelID.
func (h *Hub) Join(client *Client, hotelID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, ok := h.clients[client]
	if !ok {
		return false
	}

	if current != constant.Empty {
		h.removeFromTopicLocked(client, current)
	}

	members, ok := h.topics[hotelID]
	if !ok {
		members = map[*Client]struct{}{}
		h.topics[hotelID] = members
	}

	members[client] = struct{}{}
	h.clients[client] = hotelID

	metrics.SetSubscribers(h.subscribersLocked())

	return true
}

// Leave unregisters client and closes its send queue. Calling it twice is a no-op.
func (h *Hub) Leave(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.dropLocked(client)
}

// Publish queues event for every member of the hotelID topic. Queueing runs
// under the hub lock so members observe events in publish order. Members
// whose queue is full are disconnected.
func (h *Hub) Publish(ctx context.Context, hotelID string, event Event) (err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelBrokerScopeName, constant.OtelBrokerScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("hotel_id", hotelID)
	scope.SetAttribute("event", event.Name)

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	h.mu.Lock()

	for client := range h.topics[hotelID] {
		select {
		case client.send <- payload:
			metrics.ObserveDelivery(deliveryQueued)
		default:
			log.Warn().Str("client_id", client.id).Str("hotel_id", hotelID).Msg("dashboard send queue full, dropping connection")
			metrics.ObserveDelivery(deliveryDropped)
			h.dropLocked(client)
		}
	}

	h.mu.Unlock()

	metrics.ObserveEvent(event.Name)

	if err = h.stream.Forward(ctx, hotelID, event); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("event", event.Name).Msg("failed to forward event to stream")

		return err
	}

	return nil
}

// Close disconnects every client and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	for client := range h.clients {
		h.dropLocked(client)
	}

	log.Info().Msg("broker hub closed")
}

// reply sends a control event to a single client.
func (h *Hub) reply(client *Client, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("event", event.Name).Msg("failed to marshal reply")

		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	select {
	case client.send <- payload:
	default:
		h.dropLocked(client)
	}
}

func (h *Hub) dropLocked(client *Client) {
	hotelID, ok := h.clients[client]
	if !ok {
		return
	}

	if hotelID != constant.Empty {
		h.removeFromTopicLocked(client, hotelID)
	}

	delete(h.clients, client)
	close(client.send)

	metrics.ConnectionClosed()
	metrics.SetSubscribers(h.subscribersLocked())
}

func (h *Hub) removeFromTopicLocked(client *Client, hotelID string) {
	members := h.topics[hotelID]
	delete(members, client)

	if len(members) == 0 {
		delete(h.topics, hotelID)
	}
}

func (h *Hub) subscribersLocked() int {
	count := 0
	for _, members := range h.topics {
		count += len(members)
	}

	return count
}
