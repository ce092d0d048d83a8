package service

import (
	"context"
	"testing"
	"time"

	"ovation/internal/apperrors"
	"ovation/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateRejectsBadDate(t *testing.T) {
	svc := &concertService{}

	for _, date := range []string{"", "31-12-2026", "2026/12/31", "not a date"} {
		_, err := svc.Create(context.Background(), models.CreateConcertRequest{
			Name:  "Symphony Night",
			Venue: "City Hall",
			Date:  date,
			Price: 75.50,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidDate, "date %q", date)
	}
}

func TestSummaryFromConcert(t *testing.T) {
	concert := models.Concert{
		ID:             7,
		Name:           "Symphony Night",
		Venue:          "City Hall",
		Date:           time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		Time:           "19:30",
		PriceCents:     7550,
		TotalSeats:     200,
		AvailableSeats: 137,
	}

	summary := summaryFromConcert(concert)

	assert.Equal(t, int64(7), summary.ID)
	assert.Equal(t, "2026-12-31", summary.Date)
	assert.Equal(t, 75.50, summary.Price)
	assert.Equal(t, 200, summary.TotalSeats)
	assert.Equal(t, 137, summary.AvailableSeats)
}
