package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"
	"strings"

	"concierge/config"
	"concierge/infras/otel"
	"concierge/infras/s3"
	"concierge/internal/domains/room/model"
	"concierge/internal/domains/room/model/dto"
	"concierge/internal/domains/room/repository"
	"concierge/shared"
	"concierge/shared/base64"
	"concierge/shared/cache"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/qrcode"
	gRepo "concierge/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoom    = "room:get"
	cacheGetAllRoom = "room:gets"
	cacheRoomToken  = "room:token"

	qrDirectory = "qr"

	msgRoomNotFound  = "room not found"
	msgDuplicateRoom = "room number already exists"
)

type Room interface {
	Create(ctx context.Context, hotelID string, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, hotelID string) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, hotelID, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, hotelID, id string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, hotelID, id string) error
	GetByAccessToken(ctx context.Context, hotelID, accessToken string) (dto.RoomResponse, error)
}

type serviceImpl struct {
	repo  repository.Room
	cfg   *config.Config
	cache cache.RedisCache
	local cache.LocalCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Room, cfg *config.Config, cache cache.RedisCache, local cache.LocalCache, otel otel.Otel, s3 s3.S3) Room {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		local: local,
		otel:  otel,
		s3:    s3,
	}
}

// GuestURL is the portal address encoded in a room's QR code.
func GuestURL(clientURL, hotelID, accessToken string) string {
	return fmt.Sprintf("%s/guest/%s/%s", strings.TrimSuffix(clientURL, "/"), hotelID, accessToken)
}

func numberFilter(hotelID, number string) gDto.FilterGroup {
	return shared.FilterByTenant(hotelID, model.FieldHotelID, number, model.FieldNumber, model.TableName)
}

func tokenFilter(hotelID, accessToken string) gDto.FilterGroup {
	return shared.FilterByTenant(hotelID, model.FieldHotelID, accessToken, model.FieldAccessToken, model.TableName)
}

func (s *serviceImpl) renderQRCode(ctx context.Context, room model.Room) (string, error) {
	png, err := qrcode.PNG(GuestURL(s.cfg.App.ClientURL, room.HotelID, room.AccessToken), qrcode.DefaultSize)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to render qr code: %w", err)
	}

	if !s.cfg.External.S3.Enable {
		return base64.EncodeDataURL(qrcode.ContentType, png), nil
	}

	url, err := s.s3.UploadObject(ctx, qrDirectory+"/"+room.HotelID, room.ID+".png", qrcode.ContentType, png)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload qr code: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) removeQRCode(ctx context.Context, qrCode string) {
	if !s.cfg.External.S3.Enable || qrCode == constant.Empty || base64.IsDataURL(qrCode) {
		return
	}

	if err := s.s3.DeleteObject(ctx, qrCode); err != nil {
		log.Warn().Err(err).Str("url", qrCode).Msg("failed to delete qr code object")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, room model.Room) {
	s.local.Delete(ctx, shared.BuildCacheKey(cacheRoomToken, room.HotelID, room.AccessToken))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRoom, room.HotelID, room.ID)); err != nil {
			log.Error().Err(err).Msg("failed to delete room cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAllRoom, room.HotelID)); err != nil {
			log.Error().Err(err).Msg("failed to delete rooms cache")
		}
	}()
}

func (s *serviceImpl) Create(ctx context.Context, hotelID string, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exists, err := s.repo.Exist(ctx, numberFilter(hotelID, req.Number))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to check room number")

		return res, fmt.Errorf("failed to check room number: %w", err)
	}

	if exists {
		return res, failure.Conflict(msgDuplicateRoom) // nolint:wrapcheck
	}

	room := req.ToModel(hotelID, user)

	room.QRCode, err = s.renderQRCode(ctx, room)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create qr code")

		return res, err
	}

	if err = s.repo.Insert(ctx, room); err != nil {
		s.removeQRCode(ctx, room.QRCode)

		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(msgDuplicateRoom) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(room)

	go func() {
		if err := s.cache.Delete(context.WithoutCancel(ctx), shared.BuildCacheKey(cacheGetAllRoom, hotelID)); err != nil {
			log.Error().Err(err).Msg("failed to delete rooms cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAllRoom, hotelID)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldNumber, SortDir: gDto.SortDirAsc}

	rooms, err := s.repo.GetAll(ctx, params, shared.FilterByTenant(hotelID, model.FieldHotelID, constant.Empty, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) get(ctx context.Context, hotelID, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByTenant(hotelID, model.FieldHotelID, id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("room_id", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Get(ctx context.Context, hotelID, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRoom, hotelID, id)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for room")

		return res, nil
	}

	room, err := s.get(ctx, hotelID, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save room to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, hotelID, id string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.get(ctx, hotelID, id)
	if err != nil {
		return res, err
	}

	if req.Number != nil && *req.Number != room.Number {
		exists, err := s.repo.Exist(ctx, numberFilter(hotelID, *req.Number))
		if err != nil {
			log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to check room number")

			return res, fmt.Errorf("failed to check room number: %w", err)
		}

		if exists {
			return res, failure.Conflict(msgDuplicateRoom) // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByTenant(hotelID, model.FieldHotelID, id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(msgDuplicateRoom) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("hotel_id", hotelID).Str("room_id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	req.Apply(&room)
	res.FromModel(room)

	s.invalidate(ctx, room)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, hotelID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.get(ctx, hotelID, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByTenant(hotelID, model.FieldHotelID, id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("room_id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.removeQRCode(ctx, room.QRCode)
	s.invalidate(ctx, room)

	return nil
}

// GetByAccessToken resolves the room a guest scanned. Lookups are served from
// the in-process cache first since every portal page load hits this path.
func (s *serviceImpl) GetByAccessToken(ctx context.Context, hotelID, accessToken string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByAccessToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheRoomToken, hotelID, accessToken)

	if s.local.Get(ctx, cacheKey, &res) {
		return res, nil
	}

	room, err := s.repo.Get(ctx, tokenFilter(hotelID, accessToken))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get room by access token")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	res.FromModel(room)

	if err := s.local.Save(ctx, cacheKey, res); err != nil {
		log.Warn().Err(err).Str("room_id", room.ID).Msg("failed to save room to local cache")
	}

	return res, nil
}
