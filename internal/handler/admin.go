package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lumina-dev/venue-reserve/internal/model"
	"github.com/lumina-dev/venue-reserve/internal/repository"
	"github.com/lumina-dev/venue-reserve/internal/service"
)

// AdminHandler serves the dashboard endpoints behind JWT auth: site
// configuration management, the reservation list and traffic stats.
type AdminHandler struct {
	Config       *repository.ConfigRepo
	Stats        *repository.StatsRepo
	Reservations *service.ReservationService
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(cfg *repository.ConfigRepo, stats *repository.StatsRepo, reservations *service.ReservationService) *AdminHandler {
	if cfg == nil || stats == nil || reservations == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Config: cfg, Stats: stats, Reservations: reservations}
}

// GetConfig returns the current site configuration for editing.
func (h *AdminHandler) GetConfig(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	cfg, err := h.Config.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load config failed"})
	}
	return c.JSON(http.StatusOK, cfg)
}

// SaveConfig replaces the site configuration wholesale with the submitted
// record; there is no partial update.
func (h *AdminHandler) SaveConfig(c echo.Context) error {
	var cfg model.SiteConfig
	if err := c.Bind(&cfg); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(cfg.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	if err := h.Config.Save(ctx, cfg); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save config failed"})
	}
	return c.JSON(http.StatusOK, cfg)
}

// ListReservations returns all bookings, newest first.
func (h *AdminHandler) ListReservations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	list, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load reservations failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// GetStats returns the dashboard counters. The booking count is derived
// from the reservation list at read time so it can never drift from the
// stored bookings.
func (h *AdminHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	stats, err := h.Stats.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load stats failed"})
	}
	list, err := h.Reservations.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load stats failed"})
	}
	return c.JSON(http.StatusOK, model.DashboardStats{
		Visitors: stats.Visitors,
		Bookings: len(list),
	})
}
