package hotel

import (
	"net/http"

	"concierge/infras/otel"
	"concierge/internal/domains/hotel/model/dto"
	"concierge/internal/domains/hotel/service"
	"concierge/shared/constant"
	"concierge/shared/validator"
	"concierge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router expects to be mounted under /hotels/{hotelId}.
func (handler *Handler) Router(r chi.Router) {
	r.Get("/", handler.GetHotel)
	r.Put("/", handler.UpdateHotel)
}

// GetHotel returns the hotel profile and settings
// @Summary Get hotel
// @Description Get the profile, subscription and settings of the hotel.
// @Tags Hotel
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId} [get]
// @Security BearerAuth
func (handler *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateHotel updates the hotel profile and settings
// @Summary Update hotel
// @Description Update the profile of the hotel. Settings flags that are omitted keep their value.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Update Hotel Request"
// @Success 200 {object} response.Data[dto.HotelResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId} [put]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	req := dto.UpdateHotelRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}
