package staff

import (
	"net/http"

	"concierge/infras/otel"
	"concierge/internal/domains/user/model/dto"
	"concierge/internal/domains/user/service"
	"concierge/shared/constant"
	"concierge/shared/validator"
	"concierge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Staff
	otel    otel.Otel
}

func New(service service.Staff, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/staff", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetStaff)
		routerGroup.Post("/", handler.CreateStaff)
		routerGroup.Delete("/{userId}", handler.DeleteStaff)
	})
}

// GetStaff lists the accounts of a hotel.
// @Summary Get staff
// @Tags Staff
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/staff [get]
// @Security BearerAuth
func (handler *Handler) GetStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, chi.URLParam(request, constant.RequestParamHotelID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CreateStaff adds an account to a hotel.
// @Summary Create staff
// @Description Create a staff or admin account bound to the hotel.
// @Tags Staff
// @Accept json
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param request body dto.CreateUserRequest true "Create Staff Request"
// @Success 201 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/staff [post]
// @Security BearerAuth
func (handler *Handler) CreateStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, chi.URLParam(request, constant.RequestParamHotelID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// DeleteStaff removes an account from a hotel.
// @Summary Delete staff
// @Tags Staff
// @Produce json
// @Param hotelId path string true "Hotel ID"
// @Param userId path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{hotelId}/staff/{userId} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStaff(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(request, constant.RequestParamHotelID), chi.URLParam(request, constant.RequestParamUserID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Staff deleted successfully")

	response.WithMessage(writer, http.StatusOK, "Staff deleted successfully")
}
