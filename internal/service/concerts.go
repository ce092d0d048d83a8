package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"ovation/internal/apperrors"
	"ovation/internal/cache"
	"ovation/internal/logger"
	"ovation/internal/messaging"
	"ovation/internal/models"
	"ovation/internal/repository"
	"ovation/internal/search"
)

type concertService struct {
	repos  *repository.Repositories
	nats   *messaging.NATSClient
	search *search.ElasticsearchClient
	cache  *cache.ValkeyClient
}

// Create stores a new concert and kicks off the post-commit side
// effects: event publication, search indexing and cache invalidation.
// Side-effect failures are logged, never surfaced; the concert exists
// once the insert succeeds.
func (s *concertService) Create(ctx context.Context, req models.CreateConcertRequest) (int64, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return 0, apperrors.ErrInvalidDate
	}

	showTime := req.Time
	if showTime == "" {
		showTime = "20:00"
	}

	concert := &models.Concert{
		Name:           req.Name,
		Venue:          req.Venue,
		Date:           date,
		Time:           showTime,
		PriceCents:     int64(math.Round(req.Price * 100)),
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
	}

	if err := s.repos.Concerts.Create(ctx, concert); err != nil {
		return 0, fmt.Errorf("failed to create concert: %w", err)
	}

	log := logger.WithContext(ctx)

	if s.nats != nil {
		event := models.ConcertCreatedEvent{
			ConcertID: concert.ID,
			Name:      concert.Name,
			Timestamp: time.Now().UTC(),
		}
		if err := s.nats.Publish(models.EventConcertCreated, event); err != nil {
			log.Warn("Failed to publish concert created event", "concert_id", concert.ID, "error", err)
		}
	}

	if s.search != nil {
		if err := s.search.IndexConcert(ctx, summaryFromConcert(*concert)); err != nil {
			log.Warn("Failed to index concert", "concert_id", concert.ID, "error", err)
		}
	}

	if s.cache != nil {
		if err := s.cache.InvalidateConcertList(ctx); err != nil {
			log.Warn("Failed to invalidate concert list cache", "error", err)
		}
	}

	return concert.ID, nil
}

// List returns the concert catalog. Full-text queries go through
// Elasticsearch when it is wired; otherwise the database's ILIKE
// filter answers.
func (s *concertService) List(ctx context.Context, query, date string) ([]models.ConcertSummary, error) {
	if s.search != nil && (query != "" || date != "") {
		summaries, err := s.search.Search(ctx, query, date)
		if err == nil {
			return summaries, nil
		}
		logger.WithContext(ctx).Warn("Search failed, falling back to database", "error", err)
	}

	concerts, err := s.repos.Concerts.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list concerts: %w", err)
	}

	summaries := make([]models.ConcertSummary, 0, len(concerts))
	for _, concert := range concerts {
		summary := summaryFromConcert(concert)
		if date != "" && summary.Date != date {
			continue
		}
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Get returns a concert with its per-section availability breakdown.
func (s *concertService) Get(ctx context.Context, id int64) (*models.ConcertDetail, error) {
	concert, err := s.repos.Concerts.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get concert: %w", err)
	}
	if concert == nil {
		return nil, apperrors.ErrConcertNotFound
	}

	sections, err := s.repos.Concerts.SectionBreakdown(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get section breakdown: %w", err)
	}

	return &models.ConcertDetail{
		ConcertSummary: summaryFromConcert(*concert),
		SectionsCount:  len(sections),
		Sections:       sections,
	}, nil
}

func summaryFromConcert(c models.Concert) models.ConcertSummary {
	return models.ConcertSummary{
		ID:             c.ID,
		Name:           c.Name,
		Venue:          c.Venue,
		Date:           c.Date.Format("2006-01-02"),
		Time:           c.Time,
		Price:          float64(c.PriceCents) / 100.0,
		TotalSeats:     c.TotalSeats,
		AvailableSeats: c.AvailableSeats,
	}
}
