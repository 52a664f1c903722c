// Package booking implements the booking store: it turns a validated
// draft into a persisted booking with server-assigned id, PNR, status
// and timestamp, and provides the PNR/email lookups.
package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/skyscan-flight-api/internal/model"
	"github.com/iliyamo/skyscan-flight-api/internal/repository"
	"github.com/iliyamo/skyscan-flight-api/internal/utils"
)

// maxPNRAttempts bounds the regenerate-on-collision loop.  With a
// 36^6 code space, hitting this limit means something other than luck
// is wrong.
const maxPNRAttempts = 5

// ErrPNRExhausted is returned when every generation attempt collided
// with an existing reservation code.
var ErrPNRExhausted = errors.New("could not allocate a unique pnr")

// Store wraps the booking repository with the creation semantics the
// API promises: confirmed status, UTC creation timestamp, denormalized
// user_email and a unique PNR.
type Store struct {
	repo repository.BookingRepo
	now  func() time.Time
}

// NewStore returns a Store backed by repo.
func NewStore(repo repository.BookingRepo) *Store {
	return &Store{repo: repo, now: time.Now}
}

// Create persists a booking from the given draft.  The draft must
// already be validated; Create only assigns the server-side fields.
// The PNR is regenerated and the insert retried when the store reports
// a duplicate code.
func (s *Store) Create(ctx context.Context, draft model.BookingDraft) (*model.Booking, error) {
	currency := draft.Currency
	if currency == "" {
		currency = "USD"
	}
	extras := draft.Extras
	if extras == nil {
		extras = map[string]int{}
	}

	b := &model.Booking{
		ID:         uuid.NewString(),
		Status:     model.BookingStatusConfirmed,
		CreatedAt:  s.now().UTC().Truncate(time.Second),
		FlightID:   draft.FlightID,
		Passenger:  draft.Passenger,
		Extras:     extras,
		TotalPrice: draft.TotalPrice,
		Currency:   currency,
		UserEmail:  draft.Passenger.Email,
	}

	for attempt := 0; attempt < maxPNRAttempts; attempt++ {
		pnr, err := utils.NewPNR()
		if err != nil {
			return nil, err
		}
		b.PNR = pnr
		err = s.repo.Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, repository.ErrDuplicatePNR) {
			return nil, err
		}
	}
	return nil, ErrPNRExhausted
}

// ByEmail returns the bookings whose passenger email matches
// case-insensitively.  Order is storage order.
func (s *Store) ByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	return s.repo.ListByEmail(ctx, strings.TrimSpace(email))
}

// ByPNR returns the booking for a reservation code, matched
// case-insensitively.  Absence surfaces as
// repository.ErrBookingNotFound.
func (s *Store) ByPNR(ctx context.Context, pnr string) (*model.Booking, error) {
	return s.repo.GetByPNR(ctx, strings.TrimSpace(pnr))
}
