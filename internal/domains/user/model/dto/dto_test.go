package dto_test

import (
	"testing"
	"time"

	"concierge/internal/domains/user/model"
	"concierge/internal/domains/user/model/dto"
	"concierge/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequest_ToModel(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.CreateUserRequest
		wantRole string
	}{
		{
			name:     "defaults to staff",
			req:      dto.CreateUserRequest{Email: " Desk@Hotel.com ", Password: "secret123", Name: "Desk"},
			wantRole: constant.RoleStaff,
		},
		{
			name:     "keeps admin",
			req:      dto.CreateUserRequest{Email: "owner@hotel.com", Password: "secret123", Name: "Owner", Role: constant.RoleAdmin},
			wantRole: constant.RoleAdmin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := tt.req.ToModel("h1", "admin-1", "hashed")

			assert.NotEmpty(t, user.ID)
			assert.Equal(t, "h1", user.HotelID)
			assert.Equal(t, "hashed", user.Password)
			assert.Equal(t, tt.wantRole, user.Role)
			assert.True(t, user.Active)
			assert.Equal(t, "admin-1", user.CreatedBy)
		})
	}

	user := tests[0].req.ToModel("h1", "admin-1", "hashed")
	assert.Equal(t, "desk@hotel.com", user.Email)
}

func TestUserResponse_FromModelHidesPassword(t *testing.T) {
	login := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	var res dto.UserResponse
	res.FromModel(model.User{ID: "u1", HotelID: "h1", Email: "a@b.c", Password: "hash", Role: constant.RoleStaff, LastLogin: &login})

	assert.Equal(t, "u1", res.ID)
	assert.NotNil(t, res.LastLogin)
	assert.NotContains(t, *res.LastLogin, "hash")
}
