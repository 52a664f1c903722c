package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/iliyamo/skyscan-flight-api/internal/model"
)

// BookingRepo is the persistence contract for bookings.  The store
// enforces PNR uniqueness atomically at insert time; Create reports a
// violation as ErrDuplicatePNR so the caller can regenerate and retry.
type BookingRepo interface {
	Create(ctx context.Context, b *model.Booking) error
	ListByEmail(ctx context.Context, email string) ([]model.Booking, error)
	GetByPNR(ctx context.Context, pnr string) (*model.Booking, error)
}

type MySQLBookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *MySQLBookingRepo { return &MySQLBookingRepo{db: db} }

const bookingColumns = "id,pnr,status,created_at,flight_id,passenger_data,extras_data,total_price,currency,user_email"

// Create inserts a fully-populated booking.  Passenger and extras are
// stored as JSON columns, matching the schema.
func (r *MySQLBookingRepo) Create(ctx context.Context, b *model.Booking) error {
	passengerData, err := json.Marshal(b.Passenger)
	if err != nil {
		return err
	}
	extras := b.Extras
	if extras == nil {
		extras = map[string]int{}
	}
	extrasData, err := json.Marshal(extras)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT INTO bookings ("+bookingColumns+") VALUES (?,?,?,?,?,?,?,?,?,?)",
		b.ID, b.PNR, b.Status, b.CreatedAt, b.FlightID, passengerData, extrasData, b.TotalPrice, b.Currency, b.UserEmail)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrDuplicatePNR
		}
		return err
	}
	return nil
}

// ListByEmail returns all bookings whose user_email matches
// case-insensitively, in storage order.  No match yields an empty
// slice, not an error.
func (r *MySQLBookingRepo) ListByEmail(ctx context.Context, email string) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE LOWER(user_email)=LOWER(?)", email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// GetByPNR fetches one booking by its reservation code,
// case-insensitively.  Absence is reported as ErrBookingNotFound.
func (r *MySQLBookingRepo) GetByPNR(ctx context.Context, pnr string) (*model.Booking, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+bookingColumns+" FROM bookings WHERE UPPER(pnr)=UPPER(?) LIMIT 1", pnr)
	b, err := scanBooking(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// scanBooking maps one bookings row, decoding the JSON columns into
// their typed fields.
func scanBooking(scan func(...any) error) (*model.Booking, error) {
	var b model.Booking
	var passengerData, extrasData []byte
	if err := scan(&b.ID, &b.PNR, &b.Status, &b.CreatedAt, &b.FlightID,
		&passengerData, &extrasData, &b.TotalPrice, &b.Currency, &b.UserEmail); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(passengerData, &b.Passenger); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(extrasData, &b.Extras); err != nil {
		return nil, err
	}
	return &b, nil
}

var _ BookingRepo = (*MySQLBookingRepo)(nil)
