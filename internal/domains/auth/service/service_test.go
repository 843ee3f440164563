package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/jwt"
	jwtMocks "concierge/infras/jwt/mocks"
	"concierge/infras/otel/mocks"
	"concierge/internal/domains/auth/model/dto"
	"concierge/internal/domains/auth/service"
	hotelMocks "concierge/internal/domains/hotel/mocks"
	hotelModel "concierge/internal/domains/hotel/model"
	userMocks "concierge/internal/domains/user/mocks"
	userModel "concierge/internal/domains/user/model"
	"concierge/shared/constant"
	"concierge/shared/failure"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"
)

// "password" hashed with bcrypt
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type fixture struct {
	hotelRepo *hotelMocks.MockHotel
	userRepo  *userMocks.MockUser
	jwt       *jwtMocks.MockJWT
	svc       service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		hotelRepo: hotelMocks.NewMockHotel(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		jwt:       jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.hotelRepo, f.userRepo, &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func validUser() userModel.User {
	return userModel.User{
		ID:       "user-id-123",
		HotelID:  "hotel-id-1",
		Email:    "test@example.com",
		Password: passwordHash,
		Name:     "Test User",
		Role:     constant.RoleAdmin,
		Active:   true,
		Metadata: gModel.NewMetadata(constant.ContextSystem, timezone.Now()),
	}
}

func validHotel() hotelModel.Hotel {
	return hotelModel.Hotel{
		ID:       "hotel-id-1",
		Name:     "Sea View",
		Settings: hotelModel.DefaultSettings(),
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}
}

func runInTx(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		HotelName:  "Sea View",
		Email:      "Owner@SeaView.com",
		Password:   "password123",
		Phone:      "+911234567890",
		Address:    "Beach Road 1",
		TotalRooms: 12,
		AdminName:  "Asha",
	}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful registration",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.hotelRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				f.hotelRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, hotel hotelModel.Hotel) error {
						assert.Equal(t, "owner@seaview.com", hotel.Email)
						assert.Equal(t, hotelModel.PlanTrial, hotel.SubscriptionPlan)

						return nil
					})
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, user userModel.User) error {
						assert.Equal(t, constant.RoleAdmin, user.Role)
						assert.NotEqual(t, req.Password, user.Password)

						return nil
					})
				f.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, identity jwt.Identity) (*jwt.TokenPair, error) {
						assert.NotEmpty(t, identity.HotelID)
						assert.Equal(t, constant.RoleAdmin, identity.Role)

						return tokenPair(), nil
					})
			},
		},
		{
			name: "hotel email already registered",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "unique violation inside transaction",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.hotelRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				f.hotelRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "transaction failure",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.hotelRepo.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				f.hotelRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "exist check failure",
			setupMock: func(f fixture) {
				f.hotelRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Register(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", result.AccessToken)
			assert.Equal(t, "Sea View", result.Hotel.Name)
			assert.Equal(t, result.Hotel.ID, result.User.HotelID)
			assert.Equal(t, constant.RoleAdmin, result.User.Role)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validHotel(), nil)
				f.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), jwt.Identity{
						UserID:  "user-id-123",
						Email:   "test@example.com",
						Role:    constant.RoleAdmin,
						HotelID: "hotel-id-1",
					}).
					Return(tokenPair(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "user not found",
			req:  dto.LoginRequest{Email: "nonexistent@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "wrongpassword"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				inactiveUser := validUser()
				inactiveUser.Active = false

				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactiveUser, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validHotel(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(nil, errors.New("token generation failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "update last login error",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.hotelRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validHotel(), nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", result.AccessToken)
			assert.Equal(t, "refresh-token", result.RefreshToken)
			assert.Equal(t, "hotel-id-1", result.Hotel.ID)
			assert.Equal(t, "user-id-123", result.User.ID)
			assert.NotNil(t, result.User.LastLogin)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().RefreshTokens(gomock.Any(), "valid-refresh-token").Return(tokenPair(), nil)
			},
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().RefreshTokens(gomock.Any(), "invalid-refresh-token").Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.RefreshToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	req := dto.ChangePasswordRequest{
		CurrentPassword: "password",
		NewPassword:     "newpassword123",
	}

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "successful password change",
			req:  req,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						hashed, ok := fields[userModel.FieldPassword].(string)
						assert.True(t, ok)
						assert.NotEqual(t, req.NewPassword, hashed)

						return nil
					})
			},
		},
		{
			name: "repository error",
			req:  req,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "user not found",
			req:  req,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "wrong current password",
			req: dto.ChangePasswordRequest{
				CurrentPassword: "wrongpassword",
				NewPassword:     "newpassword123",
			},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "update password error",
			req:  req,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser(), nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.ChangePassword(context.Background(), tt.req, "user-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
