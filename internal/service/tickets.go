package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ovation/internal/apperrors"
	"ovation/internal/cache"
	"ovation/internal/database"
	"ovation/internal/logger"
	"ovation/internal/messaging"
	"ovation/internal/metrics"
	"ovation/internal/models"
	"ovation/internal/pricing"
	"ovation/internal/repository"
)

type ticketService struct {
	db    *database.DB
	repos *repository.Repositories
	nats  *messaging.NATSClient
	cache *cache.ValkeyClient
}

// Book claims the requested seats for a buyer. The availability check,
// pricing, ticket insert, seat links, seat flags and the concert's
// available-seat projection all commit atomically or not at all; a
// failure at any step leaves no trace of the attempt.
//
// Concurrent requests for the same concert serialize on the concert
// row lock taken by the price lookup, so each booking recounts
// availability against fully committed state. A loser contesting the
// same seat observes the winner's committed flags and gets a
// SeatUnavailableError naming the contested seat.
func (s *ticketService) Book(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
	resp, totalCents, err := s.book(ctx, req)
	metrics.BookingsTotal.WithLabelValues(bookingOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}
	metrics.SeatsSold.Add(float64(resp.SeatCount))

	s.afterBooking(ctx, req, resp, totalCents)
	return resp, nil
}

func (s *ticketService) book(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, int64, error) {
	if len(req.SeatIDs) == 0 {
		return nil, 0, apperrors.ErrEmptySelection
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Locks the concert row: bookings for one concert run one at a time
	// from here to commit.
	unitPrice, err := s.repos.Concerts.UnitPriceTx(ctx, tx, req.ConcertID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, apperrors.ErrConcertNotFound
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load concert price: %w", err)
	}

	// Row locks are taken here; a competing booking for any of these
	// seats blocks until we commit or roll back.
	seats, err := s.repos.Seats.LockForBookingTx(ctx, tx, req.ConcertID, req.SeatIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to lock seats: %w", err)
	}

	if err := checkSeatSet(req.SeatIDs, seats); err != nil {
		return nil, 0, err
	}

	ticket := &models.Ticket{
		ConcertID:       req.ConcertID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		TotalPriceCents: pricing.Total(unitPrice, len(seats)),
		BookingStatus:   models.StatusConfirmed,
	}

	if err := s.repos.Tickets.CreateTx(ctx, tx, ticket); err != nil {
		return nil, 0, fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := s.repos.Tickets.LinkSeatsTx(ctx, tx, ticket.ID, req.SeatIDs); err != nil {
		return nil, 0, fmt.Errorf("failed to link seats: %w", err)
	}

	if err := s.repos.Seats.MarkUnavailableTx(ctx, tx, req.SeatIDs); err != nil {
		return nil, 0, fmt.Errorf("failed to mark seats unavailable: %w", err)
	}

	if err := s.repos.Concerts.RefreshAvailableSeatsTx(ctx, tx, req.ConcertID); err != nil {
		return nil, 0, fmt.Errorf("failed to refresh available seats: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit booking: %w", err)
	}

	resp := &models.BookTicketResponse{
		Success:    true,
		TicketID:   ticket.ID,
		TotalPrice: float64(ticket.TotalPriceCents) / 100.0,
		SeatCount:  len(seats),
	}
	return resp, ticket.TotalPriceCents, nil
}

// checkSeatSet validates the locked rows against the request. A count
// mismatch means some requested id does not exist, belongs to another
// concert, or was requested twice; all three collapse into the same
// answer. Locked rows come back in seat order, so the first
// unavailable seat reported is deterministic.
func checkSeatSet(requested []int64, locked []models.Seat) error {
	if len(locked) != len(requested) {
		return apperrors.ErrInvalidSeatSet
	}
	for _, seat := range locked {
		if !seat.IsAvailable {
			return &apperrors.SeatUnavailableError{Label: seat.Label()}
		}
	}
	return nil
}

// afterBooking runs the post-commit side effects. The booking is
// already durable; failures here are logged and swallowed.
func (s *ticketService) afterBooking(ctx context.Context, req models.BookTicketRequest, resp *models.BookTicketResponse, totalCents int64) {
	log := logger.WithContext(ctx)

	if s.nats != nil {
		event := ticketBookedEvent(req, resp, totalCents)
		if err := s.nats.Publish(models.EventTicketBooked, event); err != nil {
			log.Warn("Failed to publish ticket booked event", "ticket_id", resp.TicketID, "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.InvalidateConcertList(ctx); err != nil {
			log.Warn("Failed to invalidate concert list cache", "error", err)
		}
	}
}

// ticketBookedEvent builds the broker payload from the stored cents,
// never from the API-shaped float.
func ticketBookedEvent(req models.BookTicketRequest, resp *models.BookTicketResponse, totalCents int64) models.TicketBookedEvent {
	return models.TicketBookedEvent{
		TicketID:        resp.TicketID,
		ConcertID:       req.ConcertID,
		SeatIDs:         req.SeatIDs,
		SeatCount:       resp.SeatCount,
		TotalPriceCents: totalCents,
		Timestamp:       time.Now().UTC(),
	}
}

func bookingOutcome(err error) string {
	var seatErr *apperrors.SeatUnavailableError
	switch {
	case err == nil:
		return "confirmed"
	case errors.Is(err, apperrors.ErrEmptySelection):
		return "empty_selection"
	case errors.Is(err, apperrors.ErrInvalidSeatSet):
		return "invalid_seats"
	case errors.Is(err, apperrors.ErrConcertNotFound):
		return "concert_not_found"
	case errors.As(err, &seatErr):
		return "seat_taken"
	default:
		return "error"
	}
}

// Get returns a ticket with its concert info and seat labels.
func (s *ticketService) Get(ctx context.Context, id int64) (*models.TicketDetail, error) {
	ticket, err := s.repos.Tickets.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if ticket == nil {
		return nil, apperrors.ErrTicketNotFound
	}
	return ticket, nil
}

// List returns tickets, newest booking first. A non-zero concertID
// restricts the listing to that concert and requires it to exist.
func (s *ticketService) List(ctx context.Context, concertID int64) ([]models.TicketSummary, error) {
	if concertID != 0 {
		concert, err := s.repos.Concerts.GetByID(ctx, concertID)
		if err != nil {
			return nil, fmt.Errorf("failed to get concert: %w", err)
		}
		if concert == nil {
			return nil, apperrors.ErrConcertNotFound
		}
	}

	tickets, err := s.repos.Tickets.List(ctx, concertID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}
