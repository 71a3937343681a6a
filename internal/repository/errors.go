// Package repository persists the application's records in a key-value
// store. The sentinel errors defined here let higher layers distinguish
// failure scenarios: ErrNotFound marks an absent record so repositories can
// substitute defaults, while any other error from the store is an I/O
// failure the caller should report without retrying.
package repository

import "errors"

// ErrNotFound is returned by Store.Read when no value exists under the
// requested key. Record repositories translate it into their configured
// default rather than exposing it to callers.
var ErrNotFound = errors.New("not found")
