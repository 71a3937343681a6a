// Package service implements the application workflows between the HTTP
// handlers and the repositories: the admin session state machine and the
// public reservation flow. Failures are reported through the sentinel
// errors below so handlers can map them to status codes with errors.Is.
package service

import "errors"

// ErrValidation marks rejected input: setup fields shorter than three
// characters, missing booking fields, or a party size outside 1..10. The
// wrapped message describes the offending field. Nothing is written when
// validation fails.
var ErrValidation = errors.New("validation failed")

// ErrInvalidCredentials is returned by Login when the username or password
// does not match the stored record. Session state is unchanged.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotSetup is returned when login is attempted before first-run setup
// has created the admin account.
var ErrNotSetup = errors.New("admin account not set up")

// ErrAlreadySetup is returned when setup is attempted while an admin
// account already exists. The stored record is never overwritten.
var ErrAlreadySetup = errors.New("admin account already set up")
