package broker

import "encoding/json"

const (
	EventNewRequest     = "newRequest"
	EventRequestUpdated = "requestUpdated"
	EventJoined         = "joined"
	EventError          = "error"

	ControlJoinHotel  = "joinHotel"
	ControlJoinTenant = "joinTenant"
)

// Event is the frame written to dashboards: {"event": "...", "data": ...}.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

func NewEvent(name string, data any) Event {
	return Event{Name: name, Data: data}
}

type controlMessage struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data"`
}

// JoinRequest is the payload of a joinHotel control message.
type JoinRequest struct {
	HotelID string `json:"hotelId"`
	Token   string `json:"token"`
}

type joinedData struct {
	HotelID string `json:"hotelId"`
}

type errorData struct {
	Message string `json:"message"`
}
