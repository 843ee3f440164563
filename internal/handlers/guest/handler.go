package guest

import (
	"net/http"

	"concierge/infras/otel"
	"concierge/internal/domains/guest/model/dto"
	"concierge/internal/domains/guest/service"
	"concierge/shared/constant"
	"concierge/shared/validator"
	"concierge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the portal routes. They carry no credentials; the room
// access token in the path is the only key.
func (handler *Handler) Router(r chi.Router) {
	r.Route("/guest/{hotelId}/{roomToken}", func(r chi.Router) {
		r.Get("/", handler.GetPortal)
		r.Post("/request", handler.SubmitRequest)
	})
}

// GetPortal resolves the room behind a QR code
// @Summary Resolve guest portal
// @Description Resolve the hotel and room behind a QR code access token.
// @Tags Guest
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param roomToken path string true "Room access token"
// @Success 200 {object} response.Data[dto.PortalResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest/{hotelId}/{roomToken} [get]
func (handler *Handler) GetPortal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPortal")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

	res, err := handler.service.Resolve(ctx, hotelID, chi.URLParam(r, constant.RequestParamRoomToken))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to resolve guest portal")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SubmitRequest accepts a request from a guest
// @Summary Submit guest request
// @Description Normalize a guest submission into a service request and notify the hotel dashboards.
// @Tags Guest
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param roomToken path string true "Room access token"
// @Param request body dto.SubmitRequest true "Submit Request"
// @Success 201 {object} response.Data[dto.SubmitResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guest/{hotelId}/{roomToken}/request [post]
func (handler *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitRequest")
	defer scope.End()

	req := dto.SubmitRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(w, err)

		return
	}

	hotelID := chi.URLParam(r, constant.RequestParamHotelID)

	res, err := handler.service.Submit(ctx, hotelID, chi.URLParam(r, constant.RequestParamRoomToken), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotel_id", hotelID).Str("type", string(req.Type)).Msg("failed to submit guest request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest request submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
