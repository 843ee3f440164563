package dto

import (
	"concierge/internal/domains/request/model"
	"concierge/shared/constant"
	"concierge/shared/timezone"
)

// CreateRequestRequest is the staff-side creation body. The room number is
// looked up from the room, never taken from the client.
type CreateRequestRequest struct {
	RoomID     string         `json:"roomId"     validate:"required"`
	GuestPhone string         `json:"guestPhone" validate:"required,max=30"`
	Type       model.Type     `json:"type"       validate:"required,enum"`
	Message    string         `json:"message"    validate:"required,max=2000"`
	Priority   model.Priority `json:"priority"   validate:"omitempty,enum"`
}

func (c *CreateRequestRequest) ToModel(hotelID, roomNumber string) model.ServiceRequest {
	return model.ServiceRequest{
		HotelID:    hotelID,
		RoomID:     c.RoomID,
		RoomNumber: roomNumber,
		GuestPhone: c.GuestPhone,
		Type:       c.Type,
		Message:    c.Message,
		Priority:   c.Priority,
	}
}

type UpdateRequestRequest struct {
	Status     *model.Status   `json:"status"     validate:"omitempty,enum"`
	Priority   *model.Priority `json:"priority"   validate:"omitempty,enum"`
	Message    *string         `json:"message"    validate:"omitempty,min=1,max=2000"`
	Type       *model.Type     `json:"type"       validate:"omitempty,enum"`
	GuestPhone *string         `json:"guestPhone" validate:"omitempty,min=1,max=30"`
	RoomNumber *string         `json:"roomNumber" validate:"omitempty,min=1,max=20"`
}

func (u *UpdateRequestRequest) ToFields() model.Fields {
	return model.Fields{
		Status:     u.Status,
		Priority:   u.Priority,
		Message:    u.Message,
		Type:       u.Type,
		GuestPhone: u.GuestPhone,
		RoomNumber: u.RoomNumber,
	}
}

type OrderItemResponse struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

type OrderDetailsResponse struct {
	Items       []OrderItemResponse `json:"items"`
	TotalAmount float64             `json:"totalAmount"`
}

type RequestResponse struct {
	ID           string                `json:"id"`
	HotelID      string                `json:"hotelId"`
	RoomID       string                `json:"roomId"`
	RoomNumber   string                `json:"roomNumber"`
	GuestPhone   string                `json:"guestPhone"`
	Type         model.Type            `json:"type"`
	Message      string                `json:"message"`
	OrderDetails *OrderDetailsResponse `json:"orderDetails,omitempty"`
	Status       model.Status          `json:"status"`
	Priority     model.Priority        `json:"priority"`
	CreatedAt    string                `json:"createdAt"`
	UpdatedAt    string                `json:"updatedAt"`
}

func (r *RequestResponse) FromModel(model model.ServiceRequest) {
	r.ID = model.ID
	r.HotelID = model.HotelID
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.GuestPhone = model.GuestPhone
	r.Type = model.Type
	r.Message = model.Message
	r.Status = model.Status
	r.Priority = model.Priority
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(model.UpdatedAt, constant.DateFormat)
	r.OrderDetails = nil

	if model.OrderDetails != nil {
		details := &OrderDetailsResponse{
			Items:       make([]OrderItemResponse, len(model.OrderDetails.Items)),
			TotalAmount: model.OrderDetails.TotalAmount,
		}

		for i, item := range model.OrderDetails.Items {
			details.Items[i] = OrderItemResponse(item)
		}

		r.OrderDetails = details
	}
}

type GetRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}

func (r *GetRequestsResponse) FromModels(models []model.ServiceRequest) {
	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
