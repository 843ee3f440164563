package router

import (
	"concierge/internal/handlers/auth"
	"concierge/internal/handlers/guest"
	"concierge/internal/handlers/hotel"
	"concierge/internal/handlers/realtime"
	"concierge/internal/handlers/request"
	"concierge/internal/handlers/room"
	"concierge/internal/handlers/staff"
	"concierge/shared/constant"
	"concierge/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth     auth.Handler
	Guest    guest.Handler
	Hotel    hotel.Handler
	Realtime realtime.Handler
	Request  request.Handler
	Room     room.Handler
	Staff    staff.Handler
}

type Middlewares struct {
	App      middleware.AppMiddleware
	AuthRole middleware.AuthRole
}

type Router struct {
	DomainHandlers DomainHandlers
	Middlewares    Middlewares
}

// SetupRoutes mounts the API under /v1. Public routes are marked as skipped
// in permissions.json; everything else needs an access token.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middlewares.App.Tracing)
		routerGroup.Use(r.Middlewares.App.RateLimit())
		routerGroup.Use(r.Middlewares.AuthRole.APIKey)
		routerGroup.Use(r.Middlewares.AuthRole.Auth)
		routerGroup.Use(r.Middlewares.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Realtime.Router(routerGroup)

		routerGroup.Route("/hotels/{"+constant.RequestParamHotelID+"}", func(hotelGroup chi.Router) {
			hotelGroup.Use(r.Middlewares.AuthRole.TenantScope)

			r.DomainHandlers.Hotel.Router(hotelGroup)
			r.DomainHandlers.Room.Router(hotelGroup)
			r.DomainHandlers.Request.Router(hotelGroup)
			r.DomainHandlers.Staff.Router(hotelGroup)
		})
	})
}

func New(domainHandlers DomainHandlers, middlewares Middlewares) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middlewares:    middlewares,
	}
}
