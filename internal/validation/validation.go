// Package validation holds the domain field validators applied at the
// API boundary, before anything touches the store.  Each validator
// returns an *apierr.Error with a code naming the offending field, or
// nil when the value passes.
package validation

import (
	"regexp"
	"strings"

	"github.com/iliyamo/skyscan-flight-api/internal/apierr"
	"github.com/iliyamo/skyscan-flight-api/internal/model"
)

var (
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	nameRe     = regexp.MustCompile(`^[a-zA-Z\s\-'.]+$`)
	passportRe = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	upperRe    = regexp.MustCompile(`[A-Z]`)
	lowerRe    = regexp.MustCompile(`[a-z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

const maxTotalPrice = 100000

// Email checks basic email shape.
func Email(email string) *apierr.Error {
	if !emailRe.MatchString(email) {
		return apierr.Validation("INVALID_EMAIL", "invalid email format")
	}
	return nil
}

// Name validates a first or last name: non-empty, at most 50 chars,
// letters with the usual separators.  The code parameter distinguishes
// first from last name in responses.
func Name(name, code string) *apierr.Error {
	if strings.TrimSpace(name) == "" {
		return apierr.Validation(code, "name cannot be empty")
	}
	if len(name) > 50 {
		return apierr.Validation(code, "name must be less than 50 characters")
	}
	if !nameRe.MatchString(name) {
		return apierr.Validation(code, "name contains invalid characters")
	}
	return nil
}

// Passport validates a passport number: 6–20 alphanumeric characters.
func Passport(passport string) *apierr.Error {
	if strings.TrimSpace(passport) == "" {
		return apierr.Validation("INVALID_PASSPORT", "passport number cannot be empty")
	}
	if len(passport) < 6 || len(passport) > 20 {
		return apierr.Validation("INVALID_PASSPORT", "passport number must be between 6 and 20 characters")
	}
	if !passportRe.MatchString(passport) {
		return apierr.Validation("INVALID_PASSPORT", "passport number can only contain letters and numbers")
	}
	return nil
}

// Price validates a booking total: non-negative and below the sanity cap.
func Price(price float64) *apierr.Error {
	if price < 0 {
		return apierr.Validation("INVALID_PRICE", "price cannot be negative")
	}
	if price > maxTotalPrice {
		return apierr.Validation("INVALID_PRICE", "price is too high")
	}
	return nil
}

// FlightID validates the catalog reference on a booking.  The id is not
// checked against the catalog itself, only for shape.
func FlightID(id string) *apierr.Error {
	if strings.TrimSpace(id) == "" {
		return apierr.Validation("INVALID_FLIGHT_ID", "flight id cannot be empty")
	}
	if len(id) > 50 {
		return apierr.Validation("INVALID_FLIGHT_ID", "flight id must be less than 50 characters")
	}
	return nil
}

// Extras validates the service-name -> quantity map on a booking.
func Extras(extras map[string]int) *apierr.Error {
	for name, qty := range extras {
		if strings.TrimSpace(name) == "" {
			return apierr.Validation("INVALID_EXTRAS", "extra service name cannot be empty")
		}
		if qty < 0 {
			return apierr.Validation("INVALID_EXTRAS", "extra service quantity cannot be negative")
		}
	}
	return nil
}

// Password validates registration password strength: 6–128 chars with
// at least one uppercase letter, one lowercase letter and one digit.
func Password(password string) *apierr.Error {
	if len(password) < 6 {
		return apierr.Validation("INVALID_PASSWORD", "password must be at least 6 characters long")
	}
	if len(password) > 128 {
		return apierr.Validation("INVALID_PASSWORD", "password must be less than 128 characters long")
	}
	if !upperRe.MatchString(password) {
		return apierr.Validation("INVALID_PASSWORD", "password must contain at least one uppercase letter")
	}
	if !lowerRe.MatchString(password) {
		return apierr.Validation("INVALID_PASSWORD", "password must contain at least one lowercase letter")
	}
	if !digitRe.MatchString(password) {
		return apierr.Validation("INVALID_PASSWORD", "password must contain at least one digit")
	}
	return nil
}

// BookingDraft validates every client-supplied booking field and
// returns the first failure.
func BookingDraft(d model.BookingDraft) *apierr.Error {
	if err := FlightID(d.FlightID); err != nil {
		return err
	}
	if err := Name(d.Passenger.FirstName, "INVALID_FIRST_NAME"); err != nil {
		return err
	}
	if err := Name(d.Passenger.LastName, "INVALID_LAST_NAME"); err != nil {
		return err
	}
	if err := Email(d.Passenger.Email); err != nil {
		return err
	}
	if err := Passport(d.Passenger.Passport); err != nil {
		return err
	}
	if err := Price(d.TotalPrice); err != nil {
		return err
	}
	return Extras(d.Extras)
}

// Registration validates the user registration fields.
func Registration(firstName, lastName, email, password string) *apierr.Error {
	if err := Name(firstName, "INVALID_FIRST_NAME"); err != nil {
		return err
	}
	if err := Name(lastName, "INVALID_LAST_NAME"); err != nil {
		return err
	}
	if err := Email(email); err != nil {
		return err
	}
	return Password(password)
}
