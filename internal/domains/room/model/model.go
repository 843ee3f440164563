package model

import "concierge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldHotelID     = "hotel_id"
	FieldNumber      = "number"
	FieldName        = "name"
	FieldAccessToken = "access_token"
	FieldQRCode      = "qr_code"
	FieldActive      = "active"
)

// Room is a physical room of a hotel. AccessToken is the secret printed in
// the room's QR code and never changes after creation.
type Room struct {
	ID          string `db:"id"`
	HotelID     string `db:"hotel_id"`
	Number      string `db:"number"`
	Name        string `db:"name"`
	AccessToken string `db:"access_token"`
	QRCode      string `db:"qr_code"`
	Active      bool   `db:"active"`
	model.Metadata
}
