package room

import (
	"net/http"

	"concierge/infras/otel"
	"concierge/internal/domains/room/model/dto"
	"concierge/internal/domains/room/service"
	"concierge/shared/constant"
	"concierge/shared/validator"
	"concierge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRoom)
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/{roomId}", handler.GetRoomByID)
		routerGroup.Put("/{roomId}", handler.UpdateRoom)
		routerGroup.Delete("/{roomId}", handler.DeleteRoom)
	})
}

// CreateRoom handles the creation of a new room.
// @Summary Create a new room
// @Description Create a room, its guest access token and its QR code.
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param request body dto.CreateRoomRequest true "Create Room Request"
// @Success 201 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, chi.URLParam(request, constant.RequestParamHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetRooms returns the rooms of a hotel.
// @Summary Get rooms
// @Description Get every room of the hotel ordered by number.
// @Tags Room
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.GetRoomsResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, chi.URLParam(request, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetRoomByID returns a room.
// @Summary Get room by ID
// @Tags Room
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/rooms/{roomId} [get]
// @Security BearerAuth
func (handler *Handler) GetRoomByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoomByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamHotelID), chi.URLParam(request, constant.RequestParamRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateRoom updates a room.
// @Summary Update room
// @Tags Room
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param roomId path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Data[dto.RoomResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/rooms/{roomId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	req := dto.UpdateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, chi.URLParam(request, constant.RequestParamHotelID), chi.URLParam(request, constant.RequestParamRoomID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room updated successfully")

	response.WithJSON(writer, http.StatusOK, res)
}

// DeleteRoom deletes a room.
// @Summary Delete room
// @Tags Room
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param roomId path string true "Room ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/rooms/{roomId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRoom")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamHotelID), chi.URLParam(request, constant.RequestParamRoomID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Room deleted successfully")
}
