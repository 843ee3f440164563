package dto

import (
	"concierge/internal/domains/hotel/model"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/timezone"
)

type Subscription struct {
	Plan      string `json:"plan"`
	Status    string `json:"status"`
	ExpiresAt string `json:"expiresAt"`
}

type HotelResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Address      string         `json:"address"`
	TotalRooms   int            `json:"totalRooms"`
	Subscription Subscription   `json:"subscription"`
	Settings     model.Settings `json:"settings"`
	gDto.Metadata
}

func (h *HotelResponse) FromModel(hotel model.Hotel) {
	h.ID = hotel.ID
	h.Name = hotel.Name
	h.Email = hotel.Email
	h.Phone = hotel.Phone
	h.Address = hotel.Address
	h.TotalRooms = hotel.TotalRooms
	h.Subscription = Subscription{
		Plan:      hotel.SubscriptionPlan,
		Status:    hotel.SubscriptionStatus,
		ExpiresAt: timezone.Format(hotel.SubscriptionExpiresAt, constant.DateFormat),
	}
	h.Settings = hotel.Settings
	h.Metadata.FromModel(hotel.Metadata)
}

// HotelSummary is the hotel as shown to guests and in auth responses.
type HotelSummary struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Settings model.Settings `json:"settings"`
}

func (h *HotelSummary) FromModel(hotel model.Hotel) {
	h.ID = hotel.ID
	h.Name = hotel.Name
	h.Settings = hotel.Settings
}

func (h *HotelSummary) FromResponse(hotel HotelResponse) {
	h.ID = hotel.ID
	h.Name = hotel.Name
	h.Settings = hotel.Settings
}

type UpdateServicesRequest struct {
	CallServiceBoy     *bool `json:"callServiceBoy"`
	OrderFood          *bool `json:"orderFood"`
	RequestRoomService *bool `json:"requestRoomService"`
	LodgeComplaint     *bool `json:"lodgeComplaint"`
	CustomMessage      *bool `json:"customMessage"`
}

type UpdateNotificationsRequest struct {
	Sound *bool `json:"sound"`
	Email *bool `json:"email"`
}

type UpdateSettingsRequest struct {
	ServicesEnabled *UpdateServicesRequest      `json:"servicesEnabled"`
	Notifications   *UpdateNotificationsRequest `json:"notifications"`
}

// Apply merges the flags that were sent into current.
func (u *UpdateSettingsRequest) Apply(current model.Settings) model.Settings {
	merged := current

	if services := u.ServicesEnabled; services != nil {
		setBool(&merged.ServicesEnabled.CallServiceBoy, services.CallServiceBoy)
		setBool(&merged.ServicesEnabled.OrderFood, services.OrderFood)
		setBool(&merged.ServicesEnabled.RequestRoomService, services.RequestRoomService)
		setBool(&merged.ServicesEnabled.LodgeComplaint, services.LodgeComplaint)
		setBool(&merged.ServicesEnabled.CustomMessage, services.CustomMessage)
	}

	if notifications := u.Notifications; notifications != nil {
		setBool(&merged.Notifications.Sound, notifications.Sound)
		setBool(&merged.Notifications.Email, notifications.Email)
	}

	return merged
}

func setBool(dst *bool, value *bool) {
	if value != nil {
		*dst = *value
	}
}

type UpdateHotelRequest struct {
	Name       *string                `db:"name"        json:"name"       validate:"omitempty,min=2,max=150"`
	Phone      *string                `db:"phone"       json:"phone"      validate:"omitempty,max=30"`
	Address    *string                `db:"address"     json:"address"    validate:"omitempty,max=255"`
	TotalRooms *int                   `db:"total_rooms" json:"totalRooms" validate:"omitempty,min=0"`
	Settings   *UpdateSettingsRequest `db:"-"           json:"settings"`
}
