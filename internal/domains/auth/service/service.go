package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"concierge/config"
	"concierge/infras/jwt"
	"concierge/infras/otel"
	"concierge/internal/domains/auth/model/dto"
	hotelModel "concierge/internal/domains/hotel/model"
	hotelRepo "concierge/internal/domains/hotel/repository"
	userModel "concierge/internal/domains/user/model"
	userRepo "concierge/internal/domains/user/repository"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/password"
	gRepo "concierge/shared/repository"
	"concierge/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "invalid email or password"
	msgAlreadyRegistered  = "hotel already registered with this email"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	hotelRepo  hotelRepo.Hotel
	userRepo   userRepo.User
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(hotelRepo hotelRepo.Hotel, userRepo userRepo.User, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		hotelRepo:  hotelRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
	}
}

func emailFilter(email, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    userModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    table,
			},
		},
	}
}

func identityOf(user userModel.User) jwt.Identity {
	return jwt.Identity{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		HotelID: user.HotelID,
	}
}

// Register creates the hotel and its first admin in a single transaction.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	hotelExists, err := s.hotelRepo.Exist(ctx, emailFilter(req.Email, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if hotel exists")

		return res, fmt.Errorf("failed to check if hotel exists: %w", err)
	}

	userExists, err := s.userRepo.Exist(ctx, emailFilter(req.Email, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if hotelExists || userExists {
		return res, failure.Conflict(msgAlreadyRegistered) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	now := timezone.Now()
	hotel := req.ToHotelModel(now)
	admin := req.ToAdminModel(hotel.ID, hashedPassword, now)

	err = s.hotelRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.hotelRepo.InsertTx(ctx, tx, hotel); err != nil {
			return fmt.Errorf("failed to create hotel: %w", err)
		}

		if err := s.userRepo.InsertTx(ctx, tx, admin); err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		return nil
	})
	if err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(msgAlreadyRegistered) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("email", admin.Email).Msg("failed to register hotel")

		return res, fmt.Errorf("failed to register hotel: %w", err)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, identityOf(admin))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	log.Info().Str("hotel_id", hotel.ID).Msg("hotel registered")

	res.FromTokenPair(tokenPair)
	res.FromModels(admin, hotel)

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := emailFilter(req.Email, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString(msgInvalidCredentials) // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(msgInvalidCredentials) // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.BadRequestFromString("user account is deactivated") // nolint:wrapcheck
	}

	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(user.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", user.HotelID).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, identityOf(user))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	lastLogin := dto.UpdateLastLoginRequest{LastLogin: now}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	user.LastLogin = &now

	res.FromTokenPair(tokenPair)
	res.FromModels(user, hotel)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(userID, userModel.FieldID, userModel.TableName)

	user, err := s.userRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, user.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}
	updatedFields := shared.TransformFields(updatePassword, userID)

	if err = s.userRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
