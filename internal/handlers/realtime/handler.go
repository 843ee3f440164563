package realtime

import (
	"net/http"
	"slices"

	"concierge/config"
	"concierge/infras/otel"
	"concierge/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const bufferSize = 1024

// Hub takes ownership of an upgraded dashboard connection.
type Hub interface {
	Serve(conn *websocket.Conn)
}

type Handler struct {
	hub      Hub
	otel     otel.Otel
	upgrader websocket.Upgrader
}

func New(hub Hub, cfg *config.Config, otel otel.Otel) Handler {
	allowed := cfg.App.Realtime.AllowedOrigins

	return Handler{
		hub:  hub,
		otel: otel,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  bufferSize,
			WriteBufferSize: bufferSize,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" || len(allowed) == 0 || slices.Contains(allowed, origin) {
					return true
				}

				log.Warn().Str("origin", origin).Msg("websocket origin rejected")

				return false
			},
		},
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/ws", handler.Connect)
}

// Connect upgrades a dashboard connection
// @Summary Open realtime channel
// @Description Upgrade to a WebSocket. Send {"event":"joinHotel","data":{"hotelId":"...","token":"..."}} to start receiving request events for the hotel.
// @Tags Realtime
// @Success 101
// @Failure 400 {object} response.Error
// @Router /v1/ws [get]
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	conn, err := handler.upgrade(w, r)
	if err != nil {
		return
	}

	// blocks until the dashboard disconnects
	handler.hub.Serve(conn)
}

func (handler *Handler) upgrade(w http.ResponseWriter, r *http.Request) (*websocket.Conn, error) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Connect")
	defer scope.End()

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied with an http error
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upgrade websocket connection")

		return nil, err
	}

	scope.AddEvent("Dashboard connected")

	return conn, nil
}
