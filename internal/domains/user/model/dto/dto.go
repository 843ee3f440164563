package dto

import (
	"strings"

	"concierge/internal/domains/user/model"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	gModel "concierge/shared/model"
	"concierge/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=admin staff"`
}

func (r *CreateUserRequest) ToModel(hotelID, actor, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleStaff
	}

	return model.User{
		ID:       uuid.NewString(),
		HotelID:  hotelID,
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		Name:     r.Name,
		Role:     role,
		Active:   true,
		Metadata: gModel.NewMetadata(actor, timezone.Now()),
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	HotelID   string  `json:"hotelId"`
	Email     string  `json:"email"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	LastLogin *string `json:"lastLogin,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.HotelID = user.HotelID
	r.Email = user.Email
	r.Name = user.Name
	r.Role = user.Role
	r.LastLogin = timezone.FormatPtr(user.LastLogin, constant.DateFormat)
	r.Active = user.Active
	r.Metadata.FromModel(user.Metadata)
}

type GetUsersResponse struct {
	Users []UserResponse `json:"users"`
}

func (r *GetUsersResponse) FromModels(users []model.User) {
	r.Users = make([]UserResponse, len(users))
	for i, user := range users {
		r.Users[i].FromModel(user)
	}
}
