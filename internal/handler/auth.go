package handler

import (
	"context"  // context with timeout bounds store calls
	"errors"   // errors.Is comparisons against service sentinels
	"net/http" // HTTP status codes and primitives
	"strings"  // string trimming
	"time"     // timeouts for store calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/lumina-dev/venue-reserve/internal/service"
)

// storeTimeout bounds every request-scoped store operation.
const storeTimeout = 5 * time.Second

// AuthHandler exposes the admin session endpoints: first-run setup, login,
// token refresh and logout.
type AuthHandler struct {
	Sessions *service.SessionService
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	if sessions == nil {
		panic("nil service passed to NewAuthHandler")
	}
	return &AuthHandler{Sessions: sessions}
}

// ----- DTOs -----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type sessionResp struct {
	Username string    `json:"username"`
	Access   tokenPart `json:"access"`
	Refresh  tokenPart `json:"refresh"`
}

func sessionToResp(s service.Session) sessionResp {
	return sessionResp{
		Username: s.Username,
		Access:   tokenPart{Token: s.Access.Token, Expires: s.Access.Exp},
		Refresh:  tokenPart{Token: s.Refresh.Raw, Expires: s.Refresh.Exp}, // raw back to client
	}
}

// Status reports whether first-run setup has been performed, so the client
// can decide between showing the setup form and the login form.
func (h *AuthHandler) Status(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	setup, err := h.Sessions.Status(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "status check failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"setup": setup})
}

// Setup creates the admin account and returns tokens immediately; there is
// no separate login step after a successful setup.
func (h *AuthHandler) Setup(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	sess, err := h.Sessions.Setup(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadySetup):
		return c.JSON(http.StatusConflict, echo.Map{"error": "already set up"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "setup failed"})
	}
	return c.JSON(http.StatusCreated, sessionToResp(sess))
}

// Login verifies credentials and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	sess, err := h.Sessions.Login(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrNotSetup):
		return c.JSON(http.StatusConflict, echo.Map{"error": "not set up"})
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	return c.JSON(http.StatusOK, sessionToResp(sess))
}

// Refresh rotates a refresh token: the presented token is revoked and a
// new pair is issued.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	sess, err := h.Sessions.Refresh(ctx, req.RefreshToken)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "refresh failed"})
	}
	return c.JSON(http.StatusOK, sessionToResp(sess))
}

// Logout revokes every session of the presenting user. The credential
// record is retained; only the session state changes.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh_token required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	err := h.Sessions.Logout(ctx, req.RefreshToken)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated admin's identity from the verified token.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"username": c.Get("username"),
		"role":     c.Get("role"),
	})
}
