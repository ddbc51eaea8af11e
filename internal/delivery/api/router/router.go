// Package router contains routing for the HTTP delivery.
package router

import (
	"addressbook/internal/delivery/api/router/handler"
	"addressbook/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AddressHandler *handler.AddressHandler
	HealthHandler  *handler.HealthHandler
	Metrics        *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	addressHandler *handler.AddressHandler
	healthHandler  *handler.HealthHandler
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		addressHandler: params.AddressHandler,
		healthHandler:  params.HealthHandler,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	addressGroup := e.Group("/addresses")
	{
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.GET("", r.addressHandler.ListAddresses)

		// Static segments win over :id in echo's router
		addressGroup.GET("/search", r.addressHandler.SearchAddresses)
		addressGroup.GET("/search/geojson", r.addressHandler.SearchAddressesGeoJSON)

		addressGroup.GET("/:id", r.addressHandler.GetAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.PATCH("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
	}
}
