// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published after a booking is successfully
// persisted.  It contains enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID      string  `json:"booking_id"`
	PNR            string  `json:"pnr"`
	FlightID       string  `json:"flight_id"`
	PassengerName  string  `json:"passenger_name"`
	PassengerEmail string  `json:"passenger_email"`
	TotalPrice     float64 `json:"total_price"`
	Currency       string  `json:"currency"`
	CreatedAt      string  `json:"created_at"`
}
