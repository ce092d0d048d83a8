package service

import (
	"context"
	"fmt"

	"ovation/internal/apperrors"
	"ovation/internal/models"
	"ovation/internal/repository"
)

type seatService struct {
	repos *repository.Repositories
}

// MapByConcert returns the concert's seats grouped section -> row ->
// seats, in deterministic seat order within each row.
func (s *seatService) MapByConcert(ctx context.Context, concertID int64, section string) (models.SeatMap, error) {
	concert, err := s.repos.Concerts.GetByID(ctx, concertID)
	if err != nil {
		return nil, fmt.Errorf("failed to get concert: %w", err)
	}
	if concert == nil {
		return nil, apperrors.ErrConcertNotFound
	}

	seats, err := s.repos.Seats.GetByConcertID(ctx, concertID, section)
	if err != nil {
		return nil, fmt.Errorf("failed to get seats: %w", err)
	}

	return groupSeats(seats), nil
}

func groupSeats(seats []models.Seat) models.SeatMap {
	seatMap := models.SeatMap{}
	for _, seat := range seats {
		rows, ok := seatMap[seat.Section]
		if !ok {
			rows = map[int][]models.SeatItem{}
			seatMap[seat.Section] = rows
		}
		rows[seat.Row] = append(rows[seat.Row], models.SeatItem{
			ID:          seat.ID,
			Section:     seat.Section,
			Row:         seat.Row,
			Number:      seat.Number,
			Label:       seat.Label(),
			IsAvailable: seat.IsAvailable,
		})
	}
	return seatMap
}
