// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"signup/config"
	"signup/internal/delivery/http/controller"
	"signup/internal/delivery/http/router/handler"
	"signup/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds dependencies for the router, injected by Fx.
type RouterParams struct {
	fx.In

	Config           *config.Config
	SignUpController *controller.SignUpController
	Metrics          *metrics.Collector
}

// Router holds everything that needs to be registered.
type Router struct {
	config           *config.Config
	signUpController controller.Controller
	metrics          *metrics.Collector
}

// NewRouter is the constructor for the Router.
// Fx will inject the required controllers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		config:           params.Config,
		signUpController: params.SignUpController,
		metrics:          params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	api := e.Group("/api")
	{
		api.POST("/signup", adaptRoute(r.signUpController))
	}
}
