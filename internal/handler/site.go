package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lumina-dev/venue-reserve/internal/repository"
	"github.com/lumina-dev/venue-reserve/internal/service"
)

// SiteHandler serves the guest-facing endpoints: the site configuration the
// public page renders, the visit counter, and the booking form submit.
type SiteHandler struct {
	Config       *repository.ConfigRepo
	Stats        *repository.StatsRepo
	Reservations *service.ReservationService
}

// NewSiteHandler constructs a SiteHandler.
func NewSiteHandler(cfg *repository.ConfigRepo, stats *repository.StatsRepo, reservations *service.ReservationService) *SiteHandler {
	if cfg == nil || stats == nil || reservations == nil {
		panic("nil dependency passed to NewSiteHandler")
	}
	return &SiteHandler{Config: cfg, Stats: stats, Reservations: reservations}
}

type reservationReq struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

// GetSite returns the public site configuration. Before the admin has saved
// anything this is the built-in default, so the page always renders.
func (h *SiteHandler) GetSite(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	cfg, err := h.Config.Get(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load site failed"})
	}
	return c.JSON(http.StatusOK, cfg)
}

// RecordVisit increments the visitor counter. The public page calls this
// once per visit; the counter only ever grows.
func (h *SiteHandler) RecordVisit(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	visitors, err := h.Stats.IncrementVisitors(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "record visit failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"visitors": visitors})
}

// CreateReservation validates and stores a booking request. The stored
// record comes back with its assigned id and PENDING status; confirmation
// happens asynchronously via the event queue.
func (h *SiteHandler) CreateReservation(c echo.Context) error {
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	res, err := h.Reservations.Submit(ctx, service.SubmitInput{
		Name:   req.Name,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	})
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create reservation failed"})
	}
	return c.JSON(http.StatusCreated, res)
}
