// Package service holds the business logic between the HTTP handlers
// and the repositories. The booking path is the heart of the system:
// everything it does to seat and ticket state happens inside a single
// database transaction.
package service

import (
	"context"

	"ovation/internal/cache"
	"ovation/internal/database"
	"ovation/internal/messaging"
	"ovation/internal/models"
	"ovation/internal/repository"
	"ovation/internal/search"
)

// ConcertService manages the concert catalog.
type ConcertService interface {
	Create(ctx context.Context, req models.CreateConcertRequest) (int64, error)
	List(ctx context.Context, query, date string) ([]models.ConcertSummary, error)
	Get(ctx context.Context, id int64) (*models.ConcertDetail, error)
}

// SeatService exposes the seat map of a concert.
type SeatService interface {
	MapByConcert(ctx context.Context, concertID int64, section string) (models.SeatMap, error)
}

// TicketService books seats and reads back tickets.
type TicketService interface {
	Book(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error)
	Get(ctx context.Context, id int64) (*models.TicketDetail, error)
	List(ctx context.Context, concertID int64) ([]models.TicketSummary, error)
}

// Services aggregates the service layer for the HTTP handlers.
type Services struct {
	Concerts ConcertService
	Seats    SeatService
	Tickets  TicketService
}

// NewServices wires the services. The NATS, search and cache clients
// may be nil; the services degrade to database-only operation.
func NewServices(
	db *database.DB,
	repos *repository.Repositories,
	nats *messaging.NATSClient,
	es *search.ElasticsearchClient,
	valkey *cache.ValkeyClient,
) *Services {
	return &Services{
		Concerts: &concertService{repos: repos, nats: nats, search: es, cache: valkey},
		Seats:    &seatService{repos: repos},
		Tickets:  &ticketService{db: db, repos: repos, nats: nats, cache: valkey},
	}
}
