package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createConcertsTable,
		createSeatsTable,
		createTicketsTable,
		createTicketSeatsTable,
		createSeatsConcertIndex,
		createTicketsConcertIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createConcertsTable = `
CREATE TABLE IF NOT EXISTS concerts (
    id SERIAL PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    venue VARCHAR(255) NOT NULL,
    date DATE NOT NULL,
    time VARCHAR(20) NOT NULL DEFAULT '',
    price_cents BIGINT NOT NULL,
    total_seats INTEGER NOT NULL DEFAULT 0,
    available_seats INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (price_cents >= 0)
);`

const createSeatsTable = `
CREATE TABLE IF NOT EXISTS seats (
    id SERIAL PRIMARY KEY,
    concert_id INTEGER NOT NULL REFERENCES concerts(id) ON DELETE CASCADE,
    section VARCHAR(20) NOT NULL,
    row_number INTEGER NOT NULL,
    seat_number VARCHAR(10) NOT NULL,
    is_available BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    UNIQUE(concert_id, section, row_number, seat_number)
);`

const createTicketsTable = `
CREATE TABLE IF NOT EXISTS tickets (
    id SERIAL PRIMARY KEY,
    concert_id INTEGER NOT NULL REFERENCES concerts(id) ON DELETE CASCADE,
    customer_name VARCHAR(255) NOT NULL,
    customer_email VARCHAR(255) NOT NULL,
    customer_phone VARCHAR(50),
    total_price_cents BIGINT NOT NULL,
    booking_status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
    booking_date TIMESTAMP NOT NULL DEFAULT NOW(),

    CHECK (booking_status IN ('confirmed'))
);`

// UNIQUE(seat_id) backs the one-claim-per-seat invariant at the schema
// level; the booking transaction's row locks make it unreachable in
// practice.
const createTicketSeatsTable = `
CREATE TABLE IF NOT EXISTS ticket_seats (
    id SERIAL PRIMARY KEY,
    ticket_id INTEGER NOT NULL REFERENCES tickets(id) ON DELETE CASCADE,
    seat_id INTEGER NOT NULL REFERENCES seats(id) ON DELETE CASCADE,

    UNIQUE(seat_id)
);`

const createSeatsConcertIndex = `
CREATE INDEX IF NOT EXISTS seats_concert_section_idx
ON seats (concert_id, section, row_number);`

const createTicketsConcertIndex = `
CREATE INDEX IF NOT EXISTS tickets_concert_booking_date_idx
ON tickets (concert_id, booking_date DESC);`
