package broker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"concierge/infras/metrics"
	"concierge/shared/failure"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	maxMessageSize = 4096
	joinTimeout    = 5 * time.Second

	msgUnknownEvent   = "unknown event"
	msgInvalidPayload = "invalid payload"
)

// Client is one dashboard connection. Only the write pump writes to conn.
type Client struct {
	id   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Leave(c)
		_ = c.conn.Close()
	}()

	pongWait := c.hub.timings.pongWait

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Str("client_id", c.id).Msg("dashboard connection closed unexpectedly")
			} else {
				log.Debug().Err(err).Str("client_id", c.id).Msg("dashboard disconnected")
			}

			return
		}

		c.handle(data)
	}
}

func (c *Client) handle(data []byte) {
	var msg controlMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.hub.reply(c, NewEvent(EventError, errorData{Message: msgInvalidPayload}))

		return
	}

	switch msg.Name {
	case ControlJoinHotel, ControlJoinTenant:
		c.join(msg.Data)
	default:
		c.hub.reply(c, NewEvent(EventError, errorData{Message: msgUnknownEvent}))
	}
}

func (c *Client) join(data json.RawMessage) {
	var req JoinRequest
	if err := json.Unmarshal(data, &req); err != nil || req.HotelID == "" {
		c.hub.reply(c, NewEvent(EventError, errorData{Message: msgInvalidPayload}))

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), joinTimeout)
	defer cancel()

	if err := c.hub.auth.Authorize(ctx, req.HotelID, req.Token); err != nil {
		metrics.ObserveJoin(joinRejected)
		log.Info().Str("client_id", c.id).Str("hotel_id", req.HotelID).Msg("dashboard join rejected")

		var fail *failure.Failure
		if !errors.As(err, &fail) {
			log.Error().Err(err).Str("hotel_id", req.HotelID).Msg("failed to authorize join")
		}

		c.hub.reply(c, NewEvent(EventError, errorData{Message: failure.Message(err)}))

		return
	}

	if !c.hub.Join(c, req.HotelID) {
		return
	}

	metrics.ObserveJoin(joinAccepted)
	log.Debug().Str("client_id", c.id).Str("hotel_id", req.HotelID).Msg("dashboard joined hotel topic")

	c.hub.reply(c, NewEvent(EventJoined, joinedData{HotelID: req.HotelID}))
}

func (c *Client) writePump() {
	timings := c.hub.timings
	ticker := time.NewTicker(timings.pingPeriod)

	defer func() {
		ticker.Stop()
		c.hub.Leave(c)
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(timings.writeWait))

			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				log.Warn().Err(err).Str("client_id", c.id).Msg("failed to write to dashboard")

				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(timings.writeWait)); err != nil {
				log.Debug().Err(err).Str("client_id", c.id).Msg("failed to ping dashboard")

				return
			}
		}
	}
}
