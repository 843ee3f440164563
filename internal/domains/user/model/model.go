package model

import (
	"time"

	"concierge/shared/model"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldHotelID   = "hotel_id"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldRole      = "role"
	FieldLastLogin = "last_login"
	FieldActive    = "active"
)

type User struct {
	ID        string     `db:"id"`
	HotelID   string     `db:"hotel_id"`
	Email     string     `db:"email"`
	Password  string     `db:"password"`
	Name      string     `db:"name"`
	Role      string     `db:"role"`
	LastLogin *time.Time `db:"last_login"`
	Active    bool       `db:"active"`
	model.Metadata
}
