package models

import "time"

// NATS Event Types
const (
	EventTicketBooked   = "ticket.booked"
	EventConcertCreated = "concert.created"
)

// TicketBookedEvent represents a committed seat sale
type TicketBookedEvent struct {
	TicketID        int64     `json:"ticket_id"`
	ConcertID       int64     `json:"concert_id"`
	SeatIDs         []int64   `json:"seat_ids"`
	SeatCount       int       `json:"seat_count"`
	TotalPriceCents int64     `json:"total_price_cents"`
	Timestamp       time.Time `json:"timestamp"`
}

// ConcertCreatedEvent represents a newly listed concert
type ConcertCreatedEvent struct {
	ConcertID int64     `json:"concert_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}
