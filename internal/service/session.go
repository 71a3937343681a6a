package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lumina-dev/venue-reserve/internal/config"
	"github.com/lumina-dev/venue-reserve/internal/model"
	"github.com/lumina-dev/venue-reserve/internal/repository"
	"github.com/lumina-dev/venue-reserve/internal/utils"
)

// TokenStore abstracts refresh-token persistence so tests can substitute an
// in-memory fake. The production implementation is repository.TokenRepo.
type TokenStore interface {
	StoreRefresh(ctx context.Context, username, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (string, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, username string) error
}

// minCredentialLen is the minimum length of both the username and the
// password accepted by first-run setup.
const minCredentialLen = 3

// SessionService drives the admin session state machine. The three states
// are implicit in stored data: no credential record means not set up, a
// record without a live token means awaiting login, and a valid token pair
// means authenticated. Setup transitions straight to authenticated as a
// first-run convenience; logout revokes tokens but keeps the record.
type SessionService struct {
	cfg    config.Config
	auth   *repository.AuthRepo
	tokens TokenStore
}

// NewSessionService constructs a SessionService.
func NewSessionService(cfg config.Config, auth *repository.AuthRepo, tokens TokenStore) *SessionService {
	if auth == nil || tokens == nil {
		panic("nil repository passed to NewSessionService")
	}
	return &SessionService{cfg: cfg, auth: auth, tokens: tokens}
}

// Session is the token pair handed back after setup, login or refresh.
type Session struct {
	Username string
	Access   utils.AccessToken
	Refresh  utils.RefreshToken
}

// Status reports whether first-run setup has been performed.
func (s *SessionService) Status(ctx context.Context) (bool, error) {
	return s.auth.Exists(ctx)
}

// Setup creates the admin account and returns an authenticated session.
// Valid only while no account exists; both fields must be at least three
// characters. The password is stored as a bcrypt hash.
func (s *SessionService) Setup(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if len(username) < minCredentialLen || len(password) < minCredentialLen {
		return Session{}, fmt.Errorf("%w: username and password must be at least %d characters", ErrValidation, minCredentialLen)
	}
	exists, err := s.auth.Exists(ctx)
	if err != nil {
		return Session{}, err
	}
	if exists {
		return Session{}, ErrAlreadySetup
	}
	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}
	if err := s.auth.Put(ctx, model.AdminCredentials{Username: username, PasswordHash: hash}); err != nil {
		return Session{}, err
	}
	return s.issue(ctx, username)
}

// Login verifies the credentials against the stored record and returns an
// authenticated session. A missing record yields ErrNotSetup; a mismatch
// yields ErrInvalidCredentials and changes nothing.
func (s *SessionService) Login(ctx context.Context, username, password string) (Session, error) {
	creds, err := s.auth.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return Session{}, ErrNotSetup
	}
	if err != nil {
		return Session{}, err
	}
	if strings.TrimSpace(username) != creds.Username || !utils.VerifyPassword(creds.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials
	}
	return s.issue(ctx, creds.Username)
}

// Refresh validates a raw refresh token, revokes it and issues a new
// session (token rotation). An unknown or expired token yields
// ErrInvalidCredentials.
func (s *SessionService) Refresh(ctx context.Context, raw string) (Session, error) {
	hash := utils.HashRefreshRaw(strings.TrimSpace(raw))
	username, err := s.tokens.ValidateRefresh(ctx, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}
	if err := s.tokens.RevokeByHash(ctx, hash); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return Session{}, err
	}
	return s.issue(ctx, username)
}

// Logout revokes every outstanding refresh token for the session's user,
// returning the state machine to awaiting-login. The credential record is
// retained; this is a session transition, not a data deletion.
func (s *SessionService) Logout(ctx context.Context, raw string) error {
	hash := utils.HashRefreshRaw(strings.TrimSpace(raw))
	username, err := s.tokens.ValidateRefresh(ctx, hash)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	return s.tokens.RevokeAllForUser(ctx, username)
}

// issue creates and stores a fresh access/refresh pair for the user.
func (s *SessionService) issue(ctx context.Context, username string) (Session, error) {
	access, err := utils.NewAccessToken(s.cfg.JWTSecret, username, s.cfg.AccessTTLMin)
	if err != nil {
		return Session{}, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := utils.NewRefreshToken(s.cfg.RefreshTTLDays)
	if err != nil {
		return Session{}, fmt.Errorf("issue refresh token: %w", err)
	}
	if err := s.tokens.StoreRefresh(ctx, username, utils.HashRefreshRaw(refresh.Raw), refresh.Exp); err != nil {
		return Session{}, err
	}
	return Session{Username: username, Access: access, Refresh: refresh}, nil
}
