package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework handles routing

	"github.com/lumina-dev/venue-reserve/internal/handler"
)

// RegisterRoutes registers routes that do not belong to the public site or
// the admin dashboard. Currently it exposes only a health check, which load
// balancers and monitoring systems use to verify the service is running.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}
