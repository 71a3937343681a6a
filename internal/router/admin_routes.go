package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lumina-dev/venue-reserve/internal/handler"
	"github.com/lumina-dev/venue-reserve/internal/middleware"
)

// RegisterAdmin registers the admin session endpoints and the protected
// dashboard surface. Session operations (status, setup, login, refresh,
// logout) live under /v1/admin/auth and require no token; everything else
// under /v1/admin runs the JWTAuth middleware first.
func RegisterAdmin(e *echo.Echo, a *handler.AuthHandler, d *handler.AdminHandler, t *handler.ToolsHandler, jwtSecret string) {
	// Session lifecycle. Setup transitions straight to authenticated, so
	// the setup response already carries tokens.
	g := e.Group("/v1/admin/auth")
	g.GET("/status", a.Status)
	g.POST("/setup", a.Setup)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	// Everything below requires a valid admin access token.
	admin := e.Group("/v1/admin")
	admin.Use(middleware.JWTAuth(jwtSecret))

	admin.GET("/me", a.Me)

	// Dashboard: site configuration, bookings, traffic stats.
	admin.GET("/site", d.GetConfig)
	admin.PUT("/site", d.SaveConfig)
	admin.GET("/reservations", d.ListReservations)
	admin.GET("/stats", d.GetStats)

	// AI business tools.
	tools := admin.Group("/tools")
	tools.POST("/describe", t.Describe)
	tools.POST("/analysis", t.Analyze)
	tools.POST("/copy", t.Copy)
	tools.POST("/chat", t.Chat)
}
