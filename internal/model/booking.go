package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking.  The
// booking flow currently only ever produces confirmed bookings; the
// type exists so that cancellation or pending states can be added
// without changing the wire shape.
type BookingStatus string

const (
	// BookingStatusConfirmed is the status assigned to every booking at
	// creation time.  Bookings are immutable afterwards.
	BookingStatusConfirmed BookingStatus = "confirmed"
)

// Passenger holds the traveller details captured with a booking.  The
// fields mirror the `passenger_data` JSON column of the bookings table.
type Passenger struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Passport  string `json:"passport"`
}

// Booking mirrors the `bookings` table.  Passenger and Extras are
// stored as JSON columns (passenger_data / extras_data); everything
// else is a scalar column.  UserEmail is a denormalized copy of
// Passenger.Email and is the lookup key for listing a user's bookings.
//
// Invariants: PNR is globally unique; email lookups are
// case-insensitive.  A booking is created once and never updated or
// deleted.
type Booking struct {
	ID         string         `json:"id"`          // bookings.id (UUID)
	PNR        string         `json:"pnr"`         // bookings.pnr, 6-char reservation code
	Status     BookingStatus  `json:"status"`      // bookings.status
	CreatedAt  time.Time      `json:"created_at"`  // bookings.created_at (UTC)
	FlightID   string         `json:"flight_id"`   // bookings.flight_id (catalog record id, not validated)
	Passenger  Passenger      `json:"passenger"`   // bookings.passenger_data
	Extras     map[string]int `json:"extras"`      // bookings.extras_data (service name -> quantity)
	TotalPrice float64        `json:"total_price"` // bookings.total_price
	Currency   string         `json:"currency"`    // bookings.currency
	UserEmail  string         `json:"user_email"`  // bookings.user_email
}

// BookingDraft is the client-supplied part of a booking, before the
// server assigns id, PNR, status and timestamps.
type BookingDraft struct {
	FlightID   string         `json:"flight_id"`
	Passenger  Passenger      `json:"passenger"`
	Extras     map[string]int `json:"extras"`
	TotalPrice float64        `json:"total_price"`
	Currency   string         `json:"currency"`
}
