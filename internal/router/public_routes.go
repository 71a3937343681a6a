package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lumina-dev/venue-reserve/internal/handler"
)

// RegisterPublic registers the guest-facing endpoints. No authentication is
// applied: anyone can view the site configuration, record a visit and
// submit a booking. The booking endpoint additionally runs the provided
// rate-limit middleware to keep scripted floods out of the reservation
// list.
func RegisterPublic(e *echo.Echo, s *handler.SiteHandler, rateLimit echo.MiddlewareFunc) {
	// Public site configuration the booking page renders.
	e.GET("/v1/site", s.GetSite)
	// Visit counter; the public page calls this once per visit.
	e.POST("/v1/visits", s.RecordVisit)
	// Booking form submission.
	if rateLimit != nil {
		e.POST("/v1/reservations", s.CreateReservation, rateLimit)
	} else {
		e.POST("/v1/reservations", s.CreateReservation)
	}
}
