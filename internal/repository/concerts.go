package repository

import (
	"context"
	"database/sql"

	"ovation/internal/database"
	"ovation/internal/models"
)

type ConcertRepository struct {
	db *database.DB
}

func NewConcertRepository(db *database.DB) *ConcertRepository {
	return &ConcertRepository{db: db}
}

func (r *ConcertRepository) Create(ctx context.Context, concert *models.Concert) error {
	query := `
		INSERT INTO concerts (name, venue, date, time, price_cents, total_seats, available_seats)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		concert.Name,
		concert.Venue,
		concert.Date,
		concert.Time,
		concert.PriceCents,
		concert.TotalSeats,
		concert.AvailableSeats,
	).Scan(&concert.ID, &concert.CreatedAt, &concert.UpdatedAt)

	return err
}

func (r *ConcertRepository) GetByID(ctx context.Context, id int64) (*models.Concert, error) {
	concert := &models.Concert{}
	query := `
		SELECT id, name, venue, date, time, price_cents, total_seats, available_seats, created_at, updated_at
		FROM concerts
		WHERE id = $1`

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&concert.ID,
		&concert.Name,
		&concert.Venue,
		&concert.Date,
		&concert.Time,
		&concert.PriceCents,
		&concert.TotalSeats,
		&concert.AvailableSeats,
		&concert.CreatedAt,
		&concert.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return concert, err
}

// List returns concerts ordered by date. A non-empty query filters by
// name or venue; this is the fallback path when search is not wired.
func (r *ConcertRepository) List(ctx context.Context, query string) ([]models.Concert, error) {
	var concerts []models.Concert
	var args []interface{}

	sqlQuery := `
		SELECT id, name, venue, date, time, price_cents, total_seats, available_seats, created_at, updated_at
		FROM concerts`

	if query != "" {
		sqlQuery += ` WHERE name ILIKE $1 OR venue ILIKE $1`
		args = append(args, "%"+query+"%")
	}

	sqlQuery += ` ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var concert models.Concert
		err := rows.Scan(
			&concert.ID,
			&concert.Name,
			&concert.Venue,
			&concert.Date,
			&concert.Time,
			&concert.PriceCents,
			&concert.TotalSeats,
			&concert.AvailableSeats,
			&concert.CreatedAt,
			&concert.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		concerts = append(concerts, concert)
	}

	return concerts, rows.Err()
}

// SectionBreakdown returns per-section seat counts for a concert.
func (r *ConcertRepository) SectionBreakdown(ctx context.Context, concertID int64) ([]models.SectionAvailability, error) {
	var sections []models.SectionAvailability
	query := `
		SELECT section,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_available) AS available
		FROM seats
		WHERE concert_id = $1
		GROUP BY section
		ORDER BY section`

	rows, err := r.db.QueryContext(ctx, query, concertID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var section models.SectionAvailability
		if err := rows.Scan(&section.Section, &section.Total, &section.Available); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}

	return sections, rows.Err()
}

// UnitPriceTx looks up the concert's per-seat price inside the booking
// transaction and takes a row lock on the concert. Bookings for the
// same concert serialize here, so by the time a later booking reads
// seat rows or recomputes the availability projection, every earlier
// booking of that concert has committed and is visible. Returns
// sql.ErrNoRows when the concert does not exist.
func (r *ConcertRepository) UnitPriceTx(ctx context.Context, tx *sql.Tx, concertID int64) (int64, error) {
	var priceCents int64
	query := `SELECT price_cents FROM concerts WHERE id = $1 FOR UPDATE`
	err := tx.QueryRowContext(ctx, query, concertID).Scan(&priceCents)
	return priceCents, err
}

// RefreshAvailableSeatsTx recomputes the cached available-seat count
// from the authoritative seat flags. It must run inside the same
// transaction as any seat-flag mutation, and the caller must already
// hold the concert row lock (UnitPriceTx): without it, a concurrent
// booking of other seats could recount under a snapshot taken before
// this transaction's commit and write back a stale total.
func (r *ConcertRepository) RefreshAvailableSeatsTx(ctx context.Context, tx *sql.Tx, concertID int64) error {
	query := `
		UPDATE concerts
		SET available_seats = (SELECT COUNT(*) FROM seats WHERE concert_id = $1 AND is_available = TRUE),
		    updated_at = NOW()
		WHERE id = $1`
	_, err := tx.ExecContext(ctx, query, concertID)
	return err
}

// SyncSeatCounts rewrites both cached counters from the seat rows.
// Used by the seeder after generating seat grids.
func (r *ConcertRepository) SyncSeatCounts(ctx context.Context, concertID int64) error {
	query := `
		UPDATE concerts
		SET total_seats = (SELECT COUNT(*) FROM seats WHERE concert_id = $1),
		    available_seats = (SELECT COUNT(*) FROM seats WHERE concert_id = $1 AND is_available = TRUE),
		    updated_at = NOW()
		WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, concertID)
	return err
}
