package router

import (
	"github.com/go-chi/chi/v5"

	"digitalpage/internal/handlers/booking"
	"digitalpage/internal/handlers/order"
	"digitalpage/internal/handlers/owner"
	"digitalpage/transport/http/middleware"
)

type DomainHandlers struct {
	Order   order.Handler
	Booking booking.Handler
	Owner   owner.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	OwnerAuth      middleware.OwnerAuth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Group(func(routerGroup chi.Router) {
		r.DomainHandlers.Order.Router(routerGroup, r.OwnerAuth.Guard)
		r.DomainHandlers.Booking.Router(routerGroup, r.OwnerAuth.Guard)
		r.DomainHandlers.Owner.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, ownerAuth middleware.OwnerAuth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		OwnerAuth:      ownerAuth,
	}
}
