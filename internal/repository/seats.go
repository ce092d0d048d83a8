package repository

import (
	"context"
	"database/sql"
	"fmt"

	"ovation/internal/database"
	"ovation/internal/models"

	"github.com/lib/pq"
)

type SeatRepository struct {
	db *database.DB
}

func NewSeatRepository(db *database.DB) *SeatRepository {
	return &SeatRepository{db: db}
}

// LockForBookingTx fetches the requested seats of a concert and takes
// row-level write locks on them. A concurrent booking for an
// overlapping seat set blocks here until this transaction commits or
// rolls back, then observes the updated availability flags. This is the
// exclusivity contract of the booking path: a plain read followed by an
// update is not used anywhere.
//
// Rows come back ordered by (section, row, seat number) so the first
// unavailable seat is deterministic.
func (r *SeatRepository) LockForBookingTx(ctx context.Context, tx *sql.Tx, concertID int64, seatIDs []int64) ([]models.Seat, error) {
	var seats []models.Seat
	query := `
		SELECT id, concert_id, section, row_number, seat_number, is_available, created_at, updated_at
		FROM seats
		WHERE id = ANY($1) AND concert_id = $2
		ORDER BY section, row_number, length(seat_number), seat_number
		FOR UPDATE`

	rows, err := tx.QueryContext(ctx, query, pq.Array(seatIDs), concertID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seat models.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.ConcertID,
			&seat.Section,
			&seat.Row,
			&seat.Number,
			&seat.IsAvailable,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// MarkUnavailableTx flips the claimed seats to unavailable. The caller
// holds the row locks from LockForBookingTx.
func (r *SeatRepository) MarkUnavailableTx(ctx context.Context, tx *sql.Tx, seatIDs []int64) error {
	query := `UPDATE seats SET is_available = FALSE, updated_at = NOW() WHERE id = ANY($1)`
	_, err := tx.ExecContext(ctx, query, pq.Array(seatIDs))
	return err
}

// GetByConcertID returns seats for a concert ordered by section, row
// and numeric seat position. Section filters the result when non-empty.
func (r *SeatRepository) GetByConcertID(ctx context.Context, concertID int64, section string) ([]models.Seat, error) {
	var seats []models.Seat
	var args []interface{}

	query := `
		SELECT id, concert_id, section, row_number, seat_number, is_available, created_at, updated_at
		FROM seats
		WHERE concert_id = $1`
	args = append(args, concertID)

	if section != "" {
		query += ` AND section = $2`
		args = append(args, section)
	}

	query += ` ORDER BY section, row_number, length(seat_number), seat_number`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seat models.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.ConcertID,
			&seat.Section,
			&seat.Row,
			&seat.Number,
			&seat.IsAvailable,
			&seat.CreatedAt,
			&seat.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// CreateGrid inserts a grid of seats for a concert: for every section,
// rows 1..rows with seats 1..seatsPerRow. Used at event-setup time by
// the seeder, never by the booking path.
func (r *SeatRepository) CreateGrid(ctx context.Context, concertID int64, sections []string, rows, seatsPerRow int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO seats (concert_id, section, row_number, seat_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (concert_id, section, row_number, seat_number) DO NOTHING`

	for _, section := range sections {
		for row := 1; row <= rows; row++ {
			for seat := 1; seat <= seatsPerRow; seat++ {
				if _, err := tx.ExecContext(ctx, query, concertID, section, row, fmt.Sprintf("%d", seat)); err != nil {
					return err
				}
			}
		}
	}

	return tx.Commit()
}

// CountByConcert returns the number of seat rows for a concert.
func (r *SeatRepository) CountByConcert(ctx context.Context, concertID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM seats WHERE concert_id = $1`, concertID).Scan(&count)
	return count, err
}

// DeleteByConcert removes all seats of a concert. Seeder-only.
func (r *SeatRepository) DeleteByConcert(ctx context.Context, concertID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM seats WHERE concert_id = $1`, concertID)
	return err
}
