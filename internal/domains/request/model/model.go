package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	TableName  = "service_requests"
	EntityName = "service_request"

	FieldID           = "id"
	FieldHotelID      = "hotel_id"
	FieldRoomID       = "room_id"
	FieldRoomNumber   = "room_number"
	FieldGuestPhone   = "guest_phone"
	FieldType         = "type"
	FieldMessage      = "message"
	FieldOrderDetails = "order_details"
	FieldStatus       = "status"
	FieldPriority     = "priority"
	FieldCreatedAt    = "created_at"
	FieldUpdatedAt    = "updated_at"
)

type Type string

const (
	TypeCallService   Type = "call-service"
	TypeOrderFood     Type = "order-food"
	TypeRoomService   Type = "room-service"
	TypeComplaint     Type = "complaint"
	TypeCustomMessage Type = "custom-message"
)

func (t Type) Valid() bool {
	switch t {
	case TypeCallService, TypeOrderFood, TypeRoomService, TypeComplaint, TypeCustomMessage:
		return true
	}

	return false
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCanceled   Status = "canceled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCanceled:
		return true
	}

	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}

	return false
}

// ServiceRequest is one guest ask and its lifecycle. RoomNumber is copied at
// creation so history survives a room being renumbered.
type ServiceRequest struct {
	ID           string        `db:"id"            json:"id"`
	HotelID      string        `db:"hotel_id"      json:"hotelId"      validate:"required"`
	RoomID       string        `db:"room_id"       json:"roomId"       validate:"required"`
	RoomNumber   string        `db:"room_number"   json:"roomNumber"`
	GuestPhone   string        `db:"guest_phone"   json:"guestPhone"   validate:"required"`
	Type         Type          `db:"type"          json:"type"         validate:"required,enum"`
	Message      string        `db:"message"       json:"message"      validate:"required"`
	OrderDetails *OrderDetails `db:"order_details" json:"orderDetails"`
	Status       Status        `db:"status"        json:"status"       validate:"required,enum"`
	Priority     Priority      `db:"priority"      json:"priority"     validate:"required,enum"`
	CreatedAt    time.Time     `db:"created_at"    json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at"    json:"updatedAt"`
}

type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// OrderDetails is stored as JSONB. TotalAmount is always the sum of the item totals.
type OrderDetails struct {
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

func (o OrderDetails) Value() (driver.Value, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order details: %w", err)
	}

	return data, nil
}

func (o *OrderDetails) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for order details")
	}

	if err := json.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to unmarshal order details: %w", err)
	}

	return nil
}

// Fields is a partial update. Nil fields are left untouched.
type Fields struct {
	Status     *Status   `db:"status"`
	Priority   *Priority `db:"priority"`
	Message    *string   `db:"message"`
	Type       *Type     `db:"type"`
	GuestPhone *string   `db:"guest_phone"`
	RoomNumber *string   `db:"room_number"`
}

// Columns returns the columns to write, always including updated_at.
func (f Fields) Columns(now time.Time) map[string]any {
	columns := map[string]any{FieldUpdatedAt: now}

	if f.Status != nil {
		columns[FieldStatus] = *f.Status
	}

	if f.Priority != nil {
		columns[FieldPriority] = *f.Priority
	}

	if f.Message != nil {
		columns[FieldMessage] = *f.Message
	}

	if f.Type != nil {
		columns[FieldType] = *f.Type
	}

	if f.GuestPhone != nil {
		columns[FieldGuestPhone] = *f.GuestPhone
	}

	if f.RoomNumber != nil {
		columns[FieldRoomNumber] = *f.RoomNumber
	}

	return columns
}

// Apply merges the set fields into record and bumps UpdatedAt.
func (f Fields) Apply(record *ServiceRequest, now time.Time) {
	if f.Status != nil {
		record.Status = *f.Status
	}

	if f.Priority != nil {
		record.Priority = *f.Priority
	}

	if f.Message != nil {
		record.Message = *f.Message
	}

	if f.Type != nil {
		record.Type = *f.Type
	}

	if f.GuestPhone != nil {
		record.GuestPhone = *f.GuestPhone
	}

	if f.RoomNumber != nil {
		record.RoomNumber = *f.RoomNumber
	}

	record.UpdatedAt = now
}
