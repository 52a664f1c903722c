// Package repository defines the persistence interfaces and their
// MySQL implementations, plus sentinel errors reused across
// repositories.  Sentinels let handlers distinguish expected absence
// and uniqueness conflicts from genuine store failures without parsing
// driver errors themselves.
package repository

import "errors"

// ErrEmailExists is returned when a user insert violates the unique
// email constraint.  Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrDuplicatePNR is returned when a booking insert violates the
// unique PNR constraint.  The booking store retries generation on this
// error; it should never surface to a client.
var ErrDuplicatePNR = errors.New("pnr already exists")

// ErrBookingNotFound is returned for PNR lookups that match no row.
// Expected absence, not a failure.
var ErrBookingNotFound = errors.New("booking not found")

// ErrUserNotFound is returned for user lookups that match no row.
var ErrUserNotFound = errors.New("user not found")
