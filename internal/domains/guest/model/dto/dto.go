package dto

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	hotelDto "concierge/internal/domains/hotel/model/dto"
	"concierge/internal/domains/request/model"
	requestDto "concierge/internal/domains/request/model/dto"
	roomDto "concierge/internal/domains/room/model/dto"
	"concierge/shared/failure"
	"concierge/shared/validator"
)

const (
	notAvailable = "N/A"
	currency     = "₹"
)

// PortalResponse is what a guest sees after scanning a room QR code.
type PortalResponse struct {
	Hotel hotelDto.HotelSummary `json:"hotel"`
	Room  roomDto.RoomSummary   `json:"room"`
}

// SubmitResponse is the stored request echoed back to the guest.
type SubmitResponse = requestDto.RequestResponse

// SubmitRequest carries one detail block per request type. Only the block
// matching Type is read.
type SubmitRequest struct {
	Type          model.Type     `json:"type"          validate:"required,enum"`
	GuestPhone    string         `json:"guestPhone"    validate:"required,max=30"`
	Priority      model.Priority `json:"priority"      validate:"omitempty,enum"`
	// Message is taken as the custom message when no customMessage block is sent.
	Message       string         `json:"message"       validate:"omitempty,max=2000"`
	CallService   *CallService   `json:"callService"   validate:"-"`
	OrderDetails  *FoodOrder     `json:"orderDetails"  validate:"-"`
	RoomService   *RoomService   `json:"roomService"   validate:"-"`
	Complaint     *Complaint     `json:"complaint"     validate:"-"`
	CustomMessage *CustomMessage `json:"customMessage" validate:"-"`
}

// Normalized is a detail block flattened into the stored request shape.
type Normalized struct {
	Message      string
	OrderDetails *model.OrderDetails
	Priority     model.Priority
}

type Detail interface {
	Normalize() Normalized
}

type CallService struct {
	Note string `json:"note" validate:"omitempty,max=500"`
}

type FoodItem struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"     validate:"required,max=200"`
	Price    float64 `json:"price"    validate:"gte=0,money"`
	Quantity int     `json:"quantity" validate:"min=1"`
}

// FoodOrder totals are always recomputed; Total is read only to be ignored.
type FoodOrder struct {
	Items []FoodItem `json:"items" validate:"required,min=1,dive"`
	Total float64    `json:"total"`
}

type RoomService struct {
	ServiceName   string `json:"serviceName"   validate:"required,max=200"`
	Category      string `json:"category"      validate:"required,max=100"`
	EstimatedTime string `json:"estimatedTime" validate:"omitempty,max=100"`
	Description   string `json:"description"   validate:"omitempty,max=1000"`
}

type Complaint struct {
	ComplaintName string         `json:"complaintName" validate:"required,max=200"`
	Category      string         `json:"category"      validate:"required,max=100"`
	Priority      model.Priority `json:"priority"      validate:"omitempty,enum"`
	Description   string         `json:"description"   validate:"omitempty,max=1000"`
}

type CustomMessage struct {
	Message string `json:"message" validate:"required,max=2000"`
}

// Detail returns the validated block for the request type.
func (s *SubmitRequest) Detail() (Detail, error) {
	switch s.Type {
	case model.TypeCallService:
		detail := s.CallService
		if detail == nil {
			detail = &CallService{}
		}

		return checked(detail, "callService")
	case model.TypeOrderFood:
		return checked(s.OrderDetails, "orderDetails")
	case model.TypeRoomService:
		return checked(s.RoomService, "roomService")
	case model.TypeComplaint:
		return checked(s.Complaint, "complaint")
	case model.TypeCustomMessage:
		detail := s.CustomMessage
		if detail == nil {
			detail = &CustomMessage{Message: strings.TrimSpace(s.Message)}
		}

		return checked(detail, "customMessage")
	}

	return nil, failure.BadRequestFromString("type is invalid") // nolint:wrapcheck
}

// checked rejects a missing block and validates a present one.
func checked[T any, P interface {
	*T
	Detail
}](detail P, name string) (Detail, error) {
	if detail == nil {
		return nil, failure.BadRequestFromString(name + " is required") // nolint:wrapcheck
	}

	if err := validator.ValidateStruct((*T)(detail)); err != nil {
		return nil, err
	}

	return detail, nil
}

func (c *CallService) Normalize() Normalized {
	msg := "Call Service Boy request"
	if note := strings.TrimSpace(c.Note); note != "" {
		msg += ": " + note
	}

	return Normalized{Message: msg}
}

func (f *FoodOrder) Normalize() Normalized {
	details := &model.OrderDetails{Items: make([]model.OrderItem, len(f.Items))}
	lines := make([]string, 0, len(f.Items)+2) //nolint:mnd
	lines = append(lines, "Food Order:")

	for i, item := range f.Items {
		total := item.Price * float64(item.Quantity)

		details.Items[i] = model.OrderItem{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    total,
		}
		details.TotalAmount += total

		lines = append(lines, fmt.Sprintf("%s x%d = %s%s", item.Name, item.Quantity, currency, amount(round(total))))
	}

	lines = append(lines, "Total: "+currency+amount(round(details.TotalAmount)))

	return Normalized{Message: strings.Join(lines, "\n"), OrderDetails: details}
}

func (r *RoomService) Normalize() Normalized {
	return Normalized{Message: fmt.Sprintf("Room Service Request: %s\nCategory: %s\nEstimated Time: %s\nDescription: %s",
		r.ServiceName, r.Category, orNA(r.EstimatedTime), orNA(r.Description))}
}

// Complaints default to high priority.
func (c *Complaint) Normalize() Normalized {
	priority := c.Priority
	if priority == "" {
		priority = model.PriorityHigh
	}

	return Normalized{
		Message: fmt.Sprintf("Issue: %s\nCategory: %s\nPriority: %s\nDescription: %s",
			c.ComplaintName, c.Category, priority, orNA(c.Description)),
		Priority: priority,
	}
}

func (c *CustomMessage) Normalize() Normalized {
	return Normalized{Message: "Message: " + c.Message}
}

// ToModel builds the record to store. Priority comes from the detail when it
// sets one, otherwise from the request.
func (s *SubmitRequest) ToModel(hotelID, roomID, roomNumber string, normalized Normalized) model.ServiceRequest {
	priority := normalized.Priority
	if priority == "" {
		priority = s.Priority
	}

	return model.ServiceRequest{
		HotelID:      hotelID,
		RoomID:       roomID,
		RoomNumber:   roomNumber,
		GuestPhone:   s.GuestPhone,
		Type:         s.Type,
		Message:      normalized.Message,
		OrderDetails: normalized.OrderDetails,
		Priority:     priority,
	}
}

func round(v float64) float64 {
	return math.Round(v*100) / 100 //nolint:mnd
}

func amount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}

	return value
}
