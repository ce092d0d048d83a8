package consumers

import (
	"context"
	"encoding/json"
	"log/slog"

	"ovation/internal/models"
	"ovation/internal/repository"
	"ovation/internal/search"

	"github.com/nats-io/stan.go"
)

type Handlers struct {
	repos  *repository.Repositories
	search *search.ElasticsearchClient
}

func NewHandlers(repos *repository.Repositories, esClient *search.ElasticsearchClient) *Handlers {
	return &Handlers{
		repos:  repos,
		search: esClient,
	}
}

// HandleTicketBooked re-indexes the concert so search results show the
// post-booking availability counters.
func (h *Handlers) HandleTicketBooked(m *stan.Msg) {
	var event models.TicketBookedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal ticket booked event", "error", err)
		return
	}

	slog.Info("Processing ticket booked event",
		"ticket_id", event.TicketID,
		"concert_id", event.ConcertID,
		"seat_count", event.SeatCount,
	)

	if err := h.reindexConcert(context.Background(), event.ConcertID); err != nil {
		slog.Error("Failed to reindex concert", "concert_id", event.ConcertID, "error", err)
		return
	}

	m.Ack()
}

// HandleConcertCreated indexes a newly listed concert.
func (h *Handlers) HandleConcertCreated(m *stan.Msg) {
	var event models.ConcertCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal concert created event", "error", err)
		return
	}

	slog.Info("Processing concert created event", "concert_id", event.ConcertID, "name", event.Name)

	if err := h.reindexConcert(context.Background(), event.ConcertID); err != nil {
		slog.Error("Failed to index concert", "concert_id", event.ConcertID, "error", err)
		return
	}

	m.Ack()
}

func (h *Handlers) reindexConcert(ctx context.Context, concertID int64) error {
	concert, err := h.repos.Concerts.GetByID(ctx, concertID)
	if err != nil {
		return err
	}
	if concert == nil {
		slog.Warn("Concert no longer exists, skipping index", "concert_id", concertID)
		return nil
	}

	summary := models.ConcertSummary{
		ID:             concert.ID,
		Name:           concert.Name,
		Venue:          concert.Venue,
		Date:           concert.Date.Format("2006-01-02"),
		Time:           concert.Time,
		Price:          float64(concert.PriceCents) / 100.0,
		TotalSeats:     concert.TotalSeats,
		AvailableSeats: concert.AvailableSeats,
	}

	return h.search.IndexConcert(ctx, summary)
}
