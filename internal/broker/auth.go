package broker

//go:generate go run go.uber.org/mock/mockgen -source=./auth.go -destination=./mocks/auth_mock.go -package=mocks

import (
	"context"

	"concierge/infras/jwt"
	"concierge/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgInvalidToken = "invalid or expired token"

// Authorizer decides whether a connection may join a hotel topic.
type Authorizer interface {
	Authorize(ctx context.Context, hotelID, token string) error
}

type jwtAuthorizer struct {
	jwt jwt.JWT
}

// NewAuthorizer accepts staff access tokens issued for the hotel being joined.
func NewAuthorizer(jwt jwt.JWT) Authorizer {
	return &jwtAuthorizer{jwt: jwt}
}

func (a *jwtAuthorizer) Authorize(ctx context.Context, hotelID, token string) error {
	if hotelID == "" || token == "" {
		return failure.Unauthorized(msgInvalidToken) // nolint:wrapcheck
	}

	claims, err := a.jwt.ValidateToken(ctx, token, jwt.AccessToken)
	if err != nil {
		log.Debug().Err(err).Str("hotel_id", hotelID).Msg("rejected topic join")

		return failure.Unauthorized(msgInvalidToken) // nolint:wrapcheck
	}

	if claims.HotelID != hotelID {
		return failure.TenantMismatchError
	}

	return nil
}
