package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ovation/internal/database"
	"ovation/internal/models"
)

type TicketRepository struct {
	db *database.DB
}

func NewTicketRepository(db *database.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// CreateTx inserts the ticket row inside the booking transaction and
// populates the generated id and booking date.
func (r *TicketRepository) CreateTx(ctx context.Context, tx *sql.Tx, ticket *models.Ticket) error {
	query := `
		INSERT INTO tickets (concert_id, customer_name, customer_email, customer_phone, total_price_cents, booking_status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, booking_date`

	err := tx.QueryRowContext(ctx, query,
		ticket.ConcertID,
		ticket.CustomerName,
		ticket.CustomerEmail,
		ticket.CustomerPhone,
		ticket.TotalPriceCents,
		ticket.BookingStatus,
	).Scan(&ticket.ID, &ticket.BookingDate)

	return err
}

// LinkSeatsTx inserts one ticket_seats row per claimed seat in a single
// statement.
func (r *TicketRepository) LinkSeatsTx(ctx context.Context, tx *sql.Tx, ticketID int64, seatIDs []int64) error {
	if len(seatIDs) == 0 {
		return nil
	}

	query := `INSERT INTO ticket_seats (ticket_id, seat_id) VALUES `
	args := make([]interface{}, 0, len(seatIDs)*2)
	for i, seatID := range seatIDs {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2)
		args = append(args, ticketID, seatID)
	}

	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

const ticketSelect = `
	SELECT t.id, t.concert_id, c.name, c.venue, c.date, c.time,
	       t.customer_name, t.customer_email, t.customer_phone,
	       t.total_price_cents, t.booking_status, t.booking_date,
	       COALESCE(string_agg(s.section || '-' || s.row_number::text || s.seat_number, ', '
	                ORDER BY s.section, s.row_number, length(s.seat_number), s.seat_number), '') AS seats
	FROM tickets t
	JOIN concerts c ON t.concert_id = c.id
	LEFT JOIN ticket_seats ts ON t.id = ts.ticket_id
	LEFT JOIN seats s ON ts.seat_id = s.id`

// ticketRow carries the joined columns of ticketSelect.
type ticketRow struct {
	models.Ticket
	ConcertName string
	Venue       string
	Date        time.Time
	Time        string
	SeatLabels  string
}

func scanTicketRow(rows interface{ Scan(...interface{}) error }) (*ticketRow, error) {
	t := &ticketRow{}
	err := rows.Scan(
		&t.ID,
		&t.ConcertID,
		&t.ConcertName,
		&t.Venue,
		&t.Date,
		&t.Time,
		&t.CustomerName,
		&t.CustomerEmail,
		&t.CustomerPhone,
		&t.TotalPriceCents,
		&t.BookingStatus,
		&t.BookingDate,
		&t.SeatLabels,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *ticketRow) detail() *models.TicketDetail {
	return &models.TicketDetail{
		TicketSummary: models.TicketSummary{
			ID:            t.ID,
			ConcertID:     t.ConcertID,
			ConcertName:   t.ConcertName,
			CustomerName:  t.CustomerName,
			CustomerEmail: t.CustomerEmail,
			TotalPrice:    float64(t.TotalPriceCents) / 100.0,
			BookingStatus: t.BookingStatus,
			BookingDate:   t.BookingDate.Format("2006-01-02 15:04:05"),
			Seats:         t.SeatLabels,
		},
		Venue:         t.Venue,
		Date:          t.Date.Format("2006-01-02"),
		Time:          t.Time,
		CustomerPhone: t.CustomerPhone,
	}
}

// GetByID returns a ticket with concert info and aggregated seat labels.
func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*models.TicketDetail, error) {
	query := ticketSelect + `
	WHERE t.id = $1
	GROUP BY t.id, c.name, c.venue, c.date, c.time`

	row, err := scanTicketRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return row.detail(), nil
}

// List returns all tickets ordered by booking date, newest first.
// A non-zero concertID restricts the listing to that concert.
func (r *TicketRepository) List(ctx context.Context, concertID int64) ([]models.TicketSummary, error) {
	var args []interface{}
	query := ticketSelect

	if concertID != 0 {
		query += `
	WHERE t.concert_id = $1`
		args = append(args, concertID)
	}

	query += `
	GROUP BY t.id, c.name, c.venue, c.date, c.time
	ORDER BY t.booking_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []models.TicketSummary
	for rows.Next() {
		row, err := scanTicketRow(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, row.detail().TicketSummary)
	}

	return tickets, rows.Err()
}
