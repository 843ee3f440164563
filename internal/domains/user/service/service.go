package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/user/model"
	"concierge/internal/domains/user/model/dto"
	"concierge/internal/domains/user/repository"
	"concierge/shared"
	"concierge/shared/cache"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/password"
	gRepo "concierge/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllUser = "user:gets"
)

// Staff manages the logins of a single hotel.
type Staff interface {
	GetAll(ctx context.Context, hotelID string) (dto.GetUsersResponse, error)
	Create(ctx context.Context, hotelID string, req dto.CreateUserRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, hotelID, userID string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Staff {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllUser, hotelID)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for staff")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldName, SortDir: gDto.SortDirAsc}

	users, err := s.repo.GetAll(ctx, params, shared.FilterByTenant(hotelID, model.FieldHotelID, constant.Empty, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(users)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save staff to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, hotelID string, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToModel(hotelID, actor, hashedPassword)

	if err = s.repo.Insert(ctx, user); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("email already registered")
		}

		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create staff")

		return res, fmt.Errorf("failed to create staff: %w", err)
	}

	res.FromModel(user)

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllUser)
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, hotelID, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == userID {
		return failure.BadRequestFromString("you cannot delete your own account")
	}

	filter := shared.FilterByTenant(hotelID, model.FieldHotelID, userID, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return fmt.Errorf("failed to check if user exists: %w", err)
	}

	if !exist {
		return failure.NotFound("user not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to delete staff")

		return fmt.Errorf("failed to delete staff: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllUser)
	}()

	return nil
}
