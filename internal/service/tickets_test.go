package service

import (
	"context"
	"errors"
	"testing"

	"ovation/internal/apperrors"
	"ovation/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCheckSeatSet(t *testing.T) {
	available := func(id int64, row int, number string) models.Seat {
		return models.Seat{ID: id, Section: "A", Row: row, Number: number, IsAvailable: true}
	}
	taken := func(id int64, row int, number string) models.Seat {
		return models.Seat{ID: id, Section: "A", Row: row, Number: number, IsAvailable: false}
	}

	t.Run("all seats valid and available", func(t *testing.T) {
		err := checkSeatSet([]int64{1, 2}, []models.Seat{available(1, 1, "1"), available(2, 1, "2")})
		assert.NoError(t, err)
	})

	t.Run("unknown seat id", func(t *testing.T) {
		err := checkSeatSet([]int64{1, 999}, []models.Seat{available(1, 1, "1")})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeatSet)
	})

	t.Run("seat from another concert", func(t *testing.T) {
		// The lock query filters by concert, so a foreign seat simply
		// does not come back.
		err := checkSeatSet([]int64{1, 2}, []models.Seat{available(1, 1, "1")})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeatSet)
	})

	t.Run("duplicate seat ids collapse to fewer rows", func(t *testing.T) {
		err := checkSeatSet([]int64{1, 1}, []models.Seat{available(1, 1, "1")})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeatSet)
	})

	t.Run("first unavailable seat is reported", func(t *testing.T) {
		err := checkSeatSet([]int64{1, 2, 3}, []models.Seat{
			available(1, 1, "1"),
			taken(2, 1, "2"),
			taken(3, 1, "3"),
		})

		var seatErr *apperrors.SeatUnavailableError
		assert.ErrorAs(t, err, &seatErr)
		assert.Equal(t, "A-12", seatErr.Label)
	})

	t.Run("invalid set wins over unavailable seat", func(t *testing.T) {
		// Count mismatch is checked before availability.
		err := checkSeatSet([]int64{1, 999}, []models.Seat{taken(1, 1, "1")})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSeatSet)
	})
}

func TestBookRejectsEmptySelection(t *testing.T) {
	svc := &ticketService{}

	resp, err := svc.Book(context.Background(), models.BookTicketRequest{
		ConcertID:     1,
		SeatIDs:       nil,
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, apperrors.ErrEmptySelection)
}

func TestTicketBookedEventCarriesStoredCents(t *testing.T) {
	// 2^53+1 is not representable as float64; a cents value rebuilt
	// from the response's float price would come back wrong.
	const totalCents = int64(9007199254740993)

	req := models.BookTicketRequest{ConcertID: 2, SeatIDs: []int64{10, 11, 12}}
	resp := &models.BookTicketResponse{
		TicketID:   42,
		TotalPrice: float64(totalCents) / 100.0,
		SeatCount:  3,
	}

	event := ticketBookedEvent(req, resp, totalCents)

	assert.Equal(t, totalCents, event.TotalPriceCents)
	assert.Equal(t, int64(42), event.TicketID)
	assert.Equal(t, int64(2), event.ConcertID)
	assert.Equal(t, []int64{10, 11, 12}, event.SeatIDs)
	assert.Equal(t, 3, event.SeatCount)
	assert.False(t, event.Timestamp.IsZero())
}

func TestBookingOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"success", nil, "confirmed"},
		{"empty selection", apperrors.ErrEmptySelection, "empty_selection"},
		{"invalid seats", apperrors.ErrInvalidSeatSet, "invalid_seats"},
		{"missing concert", apperrors.ErrConcertNotFound, "concert_not_found"},
		{"seat taken", &apperrors.SeatUnavailableError{Label: "A-1"}, "seat_taken"},
		{"store failure", errors.New("driver: bad connection"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, bookingOutcome(tt.err))
		})
	}
}
