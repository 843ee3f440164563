package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"concierge/infras/metrics"
	"concierge/infras/otel"
	"concierge/internal/broker"
	"concierge/internal/domains/guest/model/dto"
	hotelModel "concierge/internal/domains/hotel/model"
	hotelService "concierge/internal/domains/hotel/service"
	"concierge/internal/domains/request/model"
	requestDto "concierge/internal/domains/request/model/dto"
	requestService "concierge/internal/domains/request/service"
	"concierge/internal/domains/request/store"
	roomDto "concierge/internal/domains/room/model/dto"
	roomService "concierge/internal/domains/room/service"
	"concierge/shared/constant"
	"concierge/shared/failure"
	"concierge/shared/validator"
)

const (
	OriginGuest = "guest"

	msgRoomNotFound    = "room not found"
	msgServiceDisabled = "this service is not available at the hotel"
)

// Guest is the unauthenticated portal boundary. Rooms are addressed by the
// access token from their QR code, never by id.
type Guest interface {
	Resolve(ctx context.Context, hotelID, accessToken string) (dto.PortalResponse, error)
	Submit(ctx context.Context, hotelID, accessToken string, req dto.SubmitRequest) (requestDto.RequestResponse, error)
}

type serviceImpl struct {
	rooms     roomService.Room
	hotels    hotelService.Hotel
	store     store.Store
	publisher broker.Publisher
	otel      otel.Otel
}

func New(rooms roomService.Room, hotels hotelService.Hotel, store store.Store, publisher broker.Publisher, otel otel.Otel) Guest {
	return &serviceImpl{
		rooms:     rooms,
		hotels:    hotels,
		store:     store,
		publisher: publisher,
		otel:      otel,
	}
}

func serviceEnabled(settings hotelModel.Settings, requestType model.Type) bool {
	enabled := settings.ServicesEnabled

	switch requestType {
	case model.TypeCallService:
		return enabled.CallServiceBoy
	case model.TypeOrderFood:
		return enabled.OrderFood
	case model.TypeRoomService:
		return enabled.RequestRoomService
	case model.TypeComplaint:
		return enabled.LodgeComplaint
	case model.TypeCustomMessage:
		return enabled.CustomMessage
	}

	return false
}

func (s *serviceImpl) room(ctx context.Context, hotelID, accessToken string) (roomDto.RoomResponse, error) {
	room, err := s.rooms.GetByAccessToken(ctx, hotelID, accessToken)
	if err != nil {
		return room, err
	}

	if !room.Active {
		return room, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, hotelID, accessToken string) (res dto.PortalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.room(ctx, hotelID, accessToken)
	if err != nil {
		return res, err
	}

	hotel, err := s.hotels.Get(ctx, hotelID)
	if err != nil {
		return res, err
	}

	res.Hotel.FromResponse(hotel)
	res.Room.FromResponse(room)

	return res, nil
}

// Submit stores the request and then notifies the hotel's dashboards. A
// rejected room or type leaves no record and sends no event.
func (s *serviceImpl) Submit(ctx context.Context, hotelID, accessToken string, req dto.SubmitRequest) (res requestDto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	room, err := s.room(ctx, hotelID, accessToken)
	if err != nil {
		return res, err
	}

	hotel, err := s.hotels.Get(ctx, hotelID)
	if err != nil {
		return res, err
	}

	if !serviceEnabled(hotel.Settings, req.Type) {
		return res, failure.BadRequestFromString(msgServiceDisabled) // nolint:wrapcheck
	}

	detail, err := req.Detail()
	if err != nil {
		return res, err
	}

	record, err := s.store.Create(ctx, req.ToModel(hotelID, room.ID, room.Number, detail.Normalize()))
	if err != nil {
		return res, err
	}

	metrics.ObserveServiceRequest(OriginGuest, string(record.Type))

	res.FromModel(record)
	requestService.Notify(ctx, s.publisher, hotelID, broker.EventNewRequest, res)

	return res, nil
}
