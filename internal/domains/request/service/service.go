package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Request=MockRequestService

import (
	"context"

	"concierge/infras/metrics"
	"concierge/infras/otel"
	"concierge/internal/broker"
	"concierge/internal/domains/request/model/dto"
	"concierge/internal/domains/request/store"
	roomService "concierge/internal/domains/room/service"
	"concierge/shared/constant"

	"github.com/rs/zerolog/log"
)

const OriginStaff = "staff"

type Request interface {
	GetAll(ctx context.Context, hotelID string) (dto.GetRequestsResponse, error)
	Create(ctx context.Context, hotelID string, req dto.CreateRequestRequest) (dto.RequestResponse, error)
	Update(ctx context.Context, hotelID, id string, req dto.UpdateRequestRequest) (dto.RequestResponse, error)
}

type serviceImpl struct {
	store     store.Store
	rooms     roomService.Room
	publisher broker.Publisher
	otel      otel.Otel
}

func New(store store.Store, rooms roomService.Room, publisher broker.Publisher, otel otel.Otel) Request {
	return &serviceImpl{
		store:     store,
		rooms:     rooms,
		publisher: publisher,
		otel:      otel,
	}
}

// Notify publishes event to the dashboards of hotelID. The record is already
// stored, so a failed publish is logged and not returned.
func Notify(ctx context.Context, publisher broker.Publisher, hotelID, event string, record dto.RequestResponse) {
	if err := publisher.Publish(ctx, hotelID, broker.NewEvent(event, record)); err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Str("request_id", record.ID).Str("event", event).Msg("failed to publish request event")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	records, err := s.store.ListByTenant(ctx, hotelID)
	if err != nil {
		return res, err
	}

	res.FromModels(records)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, hotelID string, req dto.CreateRequestRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.rooms.Get(ctx, hotelID, req.RoomID)
	if err != nil {
		return res, err
	}

	record, err := s.store.Create(ctx, req.ToModel(hotelID, room.Number))
	if err != nil {
		return res, err
	}

	metrics.ObserveServiceRequest(OriginStaff, string(record.Type))

	res.FromModel(record)
	Notify(ctx, s.publisher, hotelID, broker.EventNewRequest, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, hotelID, id string, req dto.UpdateRequestRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".request.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.store.Update(ctx, hotelID, id, req.ToFields())
	if err != nil {
		return res, err
	}

	res.FromModel(record)
	Notify(ctx, s.publisher, hotelID, broker.EventRequestUpdated, res)

	return res, nil
}
