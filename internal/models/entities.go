package models

import (
	"fmt"
	"time"
)

// Concert represents a scheduled concert with seats for sale.
// TotalSeats and AvailableSeats are cached projections; the
// authoritative availability lives on the seat rows.
type Concert struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Venue          string    `json:"venue" db:"venue"`
	Date           time.Time `json:"date" db:"date"`
	Time           string    `json:"time" db:"time"`
	PriceCents     int64     `json:"price_cents" db:"price_cents"`
	TotalSeats     int       `json:"total_seats" db:"total_seats"`
	AvailableSeats int       `json:"available_seats" db:"available_seats"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Seat represents an individually bookable position within a concert,
// identified by (section, row, number). The availability flag only
// moves downward: once a seat is claimed it is never re-opened.
type Seat struct {
	ID          int64     `json:"id" db:"id"`
	ConcertID   int64     `json:"concert_id" db:"concert_id"`
	Section     string    `json:"section" db:"section"`
	Row         int       `json:"row" db:"row_number"`
	Number      string    `json:"number" db:"seat_number"`
	IsAvailable bool      `json:"is_available" db:"is_available"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Label returns the human-readable seat identity, e.g. "A-12B" for
// section "A", row 12, seat "B".
func (s Seat) Label() string {
	return fmt.Sprintf("%s-%d%s", s.Section, s.Row, s.Number)
}

// Ticket represents a confirmed claim on one or more seats by a buyer.
// Tickets are created in their terminal state and never change.
type Ticket struct {
	ID              int64     `json:"id" db:"id"`
	ConcertID       int64     `json:"concert_id" db:"concert_id"`
	CustomerName    string    `json:"customer_name" db:"customer_name"`
	CustomerEmail   string    `json:"customer_email" db:"customer_email"`
	CustomerPhone   *string   `json:"customer_phone" db:"customer_phone"`
	TotalPriceCents int64     `json:"total_price_cents" db:"total_price_cents"`
	BookingStatus   string    `json:"booking_status" db:"booking_status"`
	BookingDate     time.Time `json:"booking_date" db:"booking_date"`
}

// TicketSeat links a ticket to one claimed seat. One row per seat, and
// at most one row per seat across all tickets.
type TicketSeat struct {
	ID       int64 `json:"id" db:"id"`
	TicketID int64 `json:"ticket_id" db:"ticket_id"`
	SeatID   int64 `json:"seat_id" db:"seat_id"`
}

// StatusConfirmed is the only booking status this system produces.
const StatusConfirmed = "confirmed"
