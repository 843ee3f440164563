package dto

import (
	"strings"
	"time"

	"concierge/infras/jwt"
	hotelModel "concierge/internal/domains/hotel/model"
	hotelDto "concierge/internal/domains/hotel/model/dto"
	userModel "concierge/internal/domains/user/model"
	userDto "concierge/internal/domains/user/model/dto"
	"concierge/shared/constant"
	gModel "concierge/shared/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	HotelName  string `json:"hotelName"  validate:"required,min=2,max=150"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=8"`
	Phone      string `json:"phone"      validate:"required,max=30"`
	Address    string `json:"address"    validate:"required,max=255"`
	TotalRooms int    `json:"totalRooms" validate:"min=0"`
	AdminName  string `json:"adminName"  validate:"required,min=2,max=100"`
}

func (r *RegisterRequest) NormalizedEmail() string {
	return strings.ToLower(strings.TrimSpace(r.Email))
}

// ToHotelModel starts the hotel on the trial plan with every service enabled.
func (r *RegisterRequest) ToHotelModel(now time.Time) hotelModel.Hotel {
	return hotelModel.Hotel{
		ID:                    uuid.NewString(),
		Name:                  r.HotelName,
		Email:                 r.NormalizedEmail(),
		Phone:                 r.Phone,
		Address:               r.Address,
		TotalRooms:            r.TotalRooms,
		SubscriptionPlan:      hotelModel.PlanTrial,
		SubscriptionStatus:    hotelModel.SubscriptionActive,
		SubscriptionExpiresAt: now.Add(hotelModel.TrialPeriod),
		Settings:              hotelModel.DefaultSettings(),
		Metadata:              gModel.NewMetadata(constant.ContextSystem, now),
	}
}

func (r *RegisterRequest) ToAdminModel(hotelID, hashedPassword string, now time.Time) userModel.User {
	return userModel.User{
		ID:       uuid.NewString(),
		HotelID:  hotelID,
		Email:    r.NormalizedEmail(),
		Password: hashedPassword,
		Name:     r.AdminName,
		Role:     constant.RoleAdmin,
		Active:   true,
		Metadata: gModel.NewMetadata(constant.ContextSystem, now),
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"lastLogin" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string                `json:"accessToken"`
	RefreshToken string                `json:"refreshToken"`
	TokenType    string                `json:"tokenType"`
	ExpiresIn    int64                 `json:"expiresIn"`
	User         userDto.UserResponse  `json:"user"`
	Hotel        hotelDto.HotelSummary `json:"hotel"`
}

func (a *AuthResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	a.AccessToken = tokenPair.AccessToken
	a.RefreshToken = tokenPair.RefreshToken
	a.TokenType = tokenPair.TokenType
	a.ExpiresIn = tokenPair.ExpiresIn
}

func (a *AuthResponse) FromModels(user userModel.User, hotel hotelModel.Hotel) {
	a.User.FromModel(user)
	a.Hotel.FromModel(hotel)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	TokenType    string `json:"tokenType"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.TokenType = tokenPair.TokenType
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword"     validate:"required,min=8,nefield=CurrentPassword"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}
