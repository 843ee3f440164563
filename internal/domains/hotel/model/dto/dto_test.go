package dto_test

import (
	"testing"
	"time"

	"concierge/internal/domains/hotel/model"
	"concierge/internal/domains/hotel/model/dto"
	gModel "concierge/shared/model"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestUpdateSettingsRequest_Apply(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateSettingsRequest
		want func(s *model.Settings)
	}{
		{
			name: "empty request keeps everything",
			req:  dto.UpdateSettingsRequest{},
			want: func(_ *model.Settings) {},
		},
		{
			name: "disables one service",
			req: dto.UpdateSettingsRequest{
				ServicesEnabled: &dto.UpdateServicesRequest{OrderFood: boolPtr(false)},
			},
			want: func(s *model.Settings) {
				s.ServicesEnabled.OrderFood = false
			},
		},
		{
			name: "changes notifications only",
			req: dto.UpdateSettingsRequest{
				Notifications: &dto.UpdateNotificationsRequest{Email: boolPtr(false)},
			},
			want: func(s *model.Settings) {
				s.Notifications.Email = false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := model.DefaultSettings()
			tt.want(&expected)

			assert.Equal(t, expected, tt.req.Apply(model.DefaultSettings()))
		})
	}
}

func TestHotelResponse_FromModel(t *testing.T) {
	expires := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	var res dto.HotelResponse
	res.FromModel(model.Hotel{
		ID:                    "h1",
		Name:                  "Grand",
		TotalRooms:            20,
		SubscriptionPlan:      model.PlanTrial,
		SubscriptionStatus:    model.SubscriptionActive,
		SubscriptionExpiresAt: expires,
		Settings:              model.DefaultSettings(),
		Metadata:              gModel.NewMetadata("system", expires),
	})

	assert.Equal(t, "h1", res.ID)
	assert.Equal(t, 20, res.TotalRooms)
	assert.Equal(t, model.PlanTrial, res.Subscription.Plan)
	assert.NotEmpty(t, res.Subscription.ExpiresAt)
	assert.True(t, res.Settings.ServicesEnabled.OrderFood)
}
