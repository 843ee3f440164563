package dto

import (
	"concierge/internal/domains/room/model"
	gDto "concierge/shared/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number string `json:"number" validate:"required,max=20"`
	Name   string `json:"name"   validate:"omitempty,max=100"`
	Active *bool  `json:"active" validate:"omitempty"`
}

// ToModel assigns the id and the access token. The QR code is set once it is rendered.
func (c *CreateRoomRequest) ToModel(hotelID, user string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		HotelID:     hotelID,
		Number:      c.Number,
		Name:        c.Name,
		AccessToken: uuid.NewString(),
		Active:      active,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateRoomRequest struct {
	Number *string `db:"number" json:"number" validate:"omitempty,min=1,max=20"`
	Name   *string `db:"name"   json:"name"   validate:"omitempty,max=100"`
	Active *bool   `db:"active" json:"active" validate:"omitempty"`
}

func (u *UpdateRoomRequest) Apply(room *model.Room) {
	if u.Number != nil {
		room.Number = *u.Number
	}

	if u.Name != nil {
		room.Name = *u.Name
	}

	if u.Active != nil {
		room.Active = *u.Active
	}
}

type RoomResponse struct {
	ID          string `json:"id"`
	HotelID     string `json:"hotelId"`
	Number      string `json:"number"`
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
	QRCode      string `json:"qrCode"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.Number = model.Number
	r.Name = model.Name
	r.AccessToken = model.AccessToken
	r.QRCode = model.QRCode
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room) {
	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomSummary is what the guest portal learns about the room it was opened from.
type RoomSummary struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

func (r *RoomSummary) FromResponse(room RoomResponse) {
	r.ID = room.ID
	r.Number = room.Number
	r.Name = room.Name
}
