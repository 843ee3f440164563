// Package store persists service requests per hotel. It holds no workflow
// rules: any enumerated status may be written, and notifying dashboards is
// left to the caller.
package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"fmt"

	"concierge/infras/otel"
	"concierge/internal/domains/request/model"
	"concierge/internal/domains/request/repository"
	"concierge/shared"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	sharedRepository "concierge/shared/repository"
	"concierge/shared/timezone"
	"concierge/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	msgRequestNotFound = "request not found"
	msgRoomNotFound    = "room not found"
)

type Store interface {
	ListByTenant(ctx context.Context, hotelID string) ([]model.ServiceRequest, error)
	Create(ctx context.Context, record model.ServiceRequest) (model.ServiceRequest, error)
	Update(ctx context.Context, hotelID, id string, fields model.Fields) (model.ServiceRequest, error)
}

type storeImpl struct {
	repo repository.Request
	otel otel.Otel
}

func New(repo repository.Request, otel otel.Otel) Store {
	return &storeImpl{
		repo: repo,
		otel: otel,
	}
}

func tenantFilter(hotelID, id string) gDto.FilterGroup {
	return shared.FilterByTenant(hotelID, model.FieldHotelID, id, model.FieldID, model.TableName)
}

func (s *storeImpl) ListByTenant(ctx context.Context, hotelID string) (res []model.ServiceRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.store.ListByTenant")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

	res, err = s.repo.GetAll(ctx, params, tenantFilter(hotelID, constant.Empty))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to list requests")

		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	if res == nil {
		res = []model.ServiceRequest{}
	}

	return res, nil
}

// Create fills in the id, the timestamps and the pending/medium defaults,
// then writes the record once. A room or hotel removed in the meantime is
// reported as not found.
func (s *storeImpl) Create(ctx context.Context, record model.ServiceRequest) (res model.ServiceRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.store.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if record.Status == "" {
		record.Status = model.StatusPending
	}

	if record.Priority == "" {
		record.Priority = model.PriorityMedium
	}

	if err = validator.ValidateStruct(&record); err != nil {
		return res, err
	}

	now := timezone.Now()

	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now

	if err = s.repo.Insert(ctx, record); err != nil {
		if sharedRepository.IsForeignKeyViolation(err) {
			return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
		}

		log.Error().Err(err).Str("hotel_id", record.HotelID).Str("room_id", record.RoomID).Msg("failed to create request")

		return res, fmt.Errorf("failed to create request: %w", err)
	}

	return record, nil
}

// Update merges fields into the request identified by id within hotelID and
// returns the whole record as stored.
func (s *storeImpl) Update(ctx context.Context, hotelID, id string, fields model.Fields) (res model.ServiceRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.store.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, tenantFilter(hotelID, id))
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("request_id", id).Msg("failed to get request")

		return res, fmt.Errorf("failed to get request: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound(msgRequestNotFound) // nolint:wrapcheck
	}

	now := timezone.Now()

	if err = s.repo.Update(ctx, fields.Columns(now), tenantFilter(hotelID, id)); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("request_id", id).Msg("failed to update request")

		return res, fmt.Errorf("failed to update request: %w", err)
	}

	fields.Apply(&res, now)

	return res, nil
}
