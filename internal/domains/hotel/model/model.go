package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"concierge/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID                    = "id"
	FieldName                  = "name"
	FieldEmail                 = "email"
	FieldPhone                 = "phone"
	FieldAddress               = "address"
	FieldTotalRooms            = "total_rooms"
	FieldSubscriptionPlan      = "subscription_plan"
	FieldSubscriptionStatus    = "subscription_status"
	FieldSubscriptionExpiresAt = "subscription_expires_at"
	FieldSettings              = "settings"
)

const (
	PlanTrial   = "trial"
	PlanBasic   = "basic"
	PlanPremium = "premium"

	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
	SubscriptionCanceled = "canceled"
)

// TrialPeriod is how long a freshly registered hotel stays on the trial plan.
const TrialPeriod = 30 * 24 * time.Hour

type Hotel struct {
	ID                    string    `db:"id"`
	Name                  string    `db:"name"`
	Email                 string    `db:"email"`
	Phone                 string    `db:"phone"`
	Address               string    `db:"address"`
	TotalRooms            int       `db:"total_rooms"`
	SubscriptionPlan      string    `db:"subscription_plan"`
	SubscriptionStatus    string    `db:"subscription_status"`
	SubscriptionExpiresAt time.Time `db:"subscription_expires_at"`
	Settings              Settings  `db:"settings"`
	model.Metadata
}

type ServicesEnabled struct {
	CallServiceBoy     bool `json:"callServiceBoy"`
	OrderFood          bool `json:"orderFood"`
	RequestRoomService bool `json:"requestRoomService"`
	LodgeComplaint     bool `json:"lodgeComplaint"`
	CustomMessage      bool `json:"customMessage"`
}

type Notifications struct {
	Sound bool `json:"sound"`
	Email bool `json:"email"`
}

// Settings is stored as a single JSONB column.
type Settings struct {
	ServicesEnabled ServicesEnabled `json:"servicesEnabled"`
	Notifications   Notifications   `json:"notifications"`
}

func DefaultSettings() Settings {
	return Settings{
		ServicesEnabled: ServicesEnabled{
			CallServiceBoy:     true,
			OrderFood:          true,
			RequestRoomService: true,
			LodgeComplaint:     true,
			CustomMessage:      true,
		},
		Notifications: Notifications{
			Sound: true,
			Email: true,
		},
	}
}

func (s Settings) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal hotel settings: %w", err)
	}

	return data, nil
}

func (s *Settings) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		*s = DefaultSettings()

		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("unsupported type for hotel settings")
	}

	// columns written before a flag existed keep the default for it
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		return fmt.Errorf("failed to unmarshal hotel settings: %w", err)
	}

	*s = settings

	return nil
}
