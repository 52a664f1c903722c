package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/skyscan-flight-api/internal/apierr"
	"github.com/iliyamo/skyscan-flight-api/internal/booking"
	"github.com/iliyamo/skyscan-flight-api/internal/model"
	"github.com/iliyamo/skyscan-flight-api/internal/queue"
	"github.com/iliyamo/skyscan-flight-api/internal/repository"
	queue_publisher "github.com/iliyamo/skyscan-flight-api/internal/service"
	"github.com/iliyamo/skyscan-flight-api/internal/validation"
)

// BookingHandler serves booking creation and the two lookup endpoints.
// Bookings do not require authentication; the passenger email is the
// retrieval key.
type BookingHandler struct {
	Store *booking.Store
}

func NewBookingHandler(s *booking.Store) *BookingHandler {
	return &BookingHandler{Store: s}
}

// Create validates the draft, persists the booking and returns it with
// the server-assigned id, PNR, status and timestamp. The confirmation
// event is published best-effort after the booking is stored.
func (h *BookingHandler) Create(c echo.Context) error {
	var draft model.BookingDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, apierr.Envelope(apierr.BadRequest("invalid request body")))
	}
	draft.Passenger.Email = strings.TrimSpace(draft.Passenger.Email)

	if e := validation.BookingDraft(draft); e != nil {
		return c.JSON(e.Status, apierr.Envelope(e))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Store.Create(ctx, draft)
	if err != nil {
		c.Logger().Errorf("bookings: create: %v", err)
		if errors.Is(err, booking.ErrPNRExhausted) {
			return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Internal()))
		}
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Persistence()))
	}

	// Publish outside the request timeout; a broker outage must not
	// fail a booking that is already stored.
	ev := queue.BookingConfirmedEvent{
		BookingID:      b.ID,
		PNR:            b.PNR,
		FlightID:       b.FlightID,
		PassengerName:  strings.TrimSpace(b.Passenger.FirstName + " " + b.Passenger.LastName),
		PassengerEmail: b.Passenger.Email,
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishBookingConfirmed(pubCtx, ev)
	}()

	return c.JSON(http.StatusCreated, b)
}

// ListByEmail returns all bookings whose passenger email matches the
// query parameter, case-insensitively. No match is an empty list, not
// an error.
func (h *BookingHandler) ListByEmail(c echo.Context) error {
	email := strings.TrimSpace(c.QueryParam("email"))
	if e := validation.Email(email); e != nil {
		return c.JSON(e.Status, apierr.Envelope(e))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Store.ByEmail(ctx, email)
	if err != nil {
		c.Logger().Errorf("bookings: list by email: %v", err)
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Persistence()))
	}
	return c.JSON(http.StatusOK, bookings)
}

// Trip returns the booking for a reservation code, matched
// case-insensitively.
func (h *BookingHandler) Trip(c echo.Context) error {
	pnr := strings.TrimSpace(c.Param("pnr"))
	if pnr == "" {
		return c.JSON(http.StatusBadRequest, apierr.Envelope(apierr.Validation("INVALID_PNR", "reservation code cannot be empty")))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Store.ByPNR(ctx, pnr)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, apierr.Envelope(apierr.NotFound("booking")))
		}
		c.Logger().Errorf("bookings: trip lookup: %v", err)
		return c.JSON(http.StatusInternalServerError, apierr.Envelope(apierr.Persistence()))
	}
	return c.JSON(http.StatusOK, b)
}
