package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"concierge/infras/jwt"
	"concierge/internal/domains/auth/model/dto"
	hotelModel "concierge/internal/domains/hotel/model"
	"concierge/shared/constant"
	"concierge/shared/timezone"
)

func TestAuthResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}

	var response dto.AuthResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRegisterRequest_ToModels(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	req := dto.RegisterRequest{
		HotelName:  "Sea View",
		Email:      "  Owner@SeaView.com ",
		Password:   "password123",
		Phone:      "+911234567890",
		Address:    "Beach Road 1",
		TotalRooms: 20,
		AdminName:  "Asha",
	}

	hotel := req.ToHotelModel(now)

	assert.NotEmpty(t, hotel.ID)
	assert.Equal(t, "owner@seaview.com", hotel.Email)
	assert.Equal(t, hotelModel.PlanTrial, hotel.SubscriptionPlan)
	assert.Equal(t, hotelModel.SubscriptionActive, hotel.SubscriptionStatus)
	assert.Equal(t, now.Add(hotelModel.TrialPeriod), hotel.SubscriptionExpiresAt)
	assert.Equal(t, hotelModel.DefaultSettings(), hotel.Settings)

	admin := req.ToAdminModel(hotel.ID, "hashed", now)

	assert.NotEmpty(t, admin.ID)
	assert.Equal(t, hotel.ID, admin.HotelID)
	assert.Equal(t, "owner@seaview.com", admin.Email)
	assert.Equal(t, "hashed", admin.Password)
	assert.Equal(t, constant.RoleAdmin, admin.Role)
	assert.True(t, admin.Active)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}
