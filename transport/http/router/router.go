package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lodgedesk/internal/handlers/dashboard"
	"lodgedesk/internal/handlers/health"
)

type DomainHandlers struct {
	Dashboard dashboard.Handler
	Health    health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Handle("/metrics", promhttp.Handler())

	r.DomainHandlers.Health.Router(router)
	r.DomainHandlers.Dashboard.Router(router)
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
