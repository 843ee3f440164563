package request

import (
	"net/http"

	"concierge/infras/otel"
	"concierge/internal/domains/request/model/dto"
	"concierge/internal/domains/request/service"
	"concierge/shared/constant"
	"concierge/shared/validator"
	"concierge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/requests", func(r chi.Router) {
		r.Get("/", handler.GetRequests)
		r.Post("/", handler.CreateRequest)
		r.Put("/{requestId}", handler.UpdateRequest)
	})
}

// GetRequests lists the service requests of a hotel
// @Summary Get service requests
// @Description Get every service request of the hotel, newest first.
// @Tags Request
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.GetRequestsResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/requests [get]
// @Security BearerAuth
func (handler *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service requests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRequest records a request on behalf of a guest
// @Summary Create service request
// @Description Record a service request from the staff dashboard and notify the hotel.
// @Tags Request
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param request body dto.CreateRequestRequest true "Create Request"
// @Success 201 {object} response.Data[dto.RequestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/requests [post]
// @Security BearerAuth
func (handler *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

	res, err := handler.service.Create(ctx, hotelID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotel_id", hotelID).Str("room_id", req.RoomID).Msg("failed to create service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateRequest changes status or details of a request
// @Summary Update service request
// @Description Apply a partial update to a service request and notify the hotel.
// @Tags Request
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param requestId path string true "Request ID"
// @Param request body dto.UpdateRequestRequest true "Update Request"
// @Success 200 {object} response.Data[dto.RequestResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/requests/{requestId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRequest")
	defer scope.End()

	req := dto.UpdateRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)
	requestID := chi.URLParam(r, constant.RequestParamRequestID)

	res, err := handler.service.Update(ctx, hotelID, requestID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotel_id", hotelID).Str("request_id", requestID).Msg("failed to update service request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service request updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
