package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Hotel=MockHotelService

import (
	"context"
	"fmt"

	"concierge/config"
	"concierge/infras/otel"
	"concierge/internal/domains/hotel/model"
	"concierge/internal/domains/hotel/model/dto"
	"concierge/internal/domains/hotel/repository"
	"concierge/shared"
	"concierge/shared/cache"
	"concierge/shared/constant"
	"concierge/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel = "hotel:get"
)

type Hotel interface {
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateHotelRequest) (dto.HotelResponse, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".hotel.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Settings != nil {
		current.Settings = req.Settings.Apply(current.Settings)
		updatedFields[model.FieldSettings] = current.Settings
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to update hotel")

		return res, fmt.Errorf("failed to update hotel: %w", err)
	}

	applyHotelFields(&current, req)
	res.FromModel(current)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel cache")
		}
	}()

	return res, nil
}

func applyHotelFields(hotel *model.Hotel, req dto.UpdateHotelRequest) {
	if req.Name != nil {
		hotel.Name = *req.Name
	}

	if req.Phone != nil {
		hotel.Phone = *req.Phone
	}

	if req.Address != nil {
		hotel.Address = *req.Address
	}

	if req.TotalRooms != nil {
		hotel.TotalRooms = *req.TotalRooms
	}
}
