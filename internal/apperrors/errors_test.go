package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatUnavailableError(t *testing.T) {
	err := &SeatUnavailableError{Label: "A-12B"}
	assert.Equal(t, "seat A-12B is no longer available", err.Error())

	var seatErr *SeatUnavailableError
	assert.True(t, errors.As(err, &seatErr))
	assert.Equal(t, "A-12B", seatErr.Label)
}

func TestSeatUnavailableErrorSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("booking failed: %w", &SeatUnavailableError{Label: "B-3"})

	var seatErr *SeatUnavailableError
	assert.True(t, errors.As(wrapped, &seatErr))
	assert.Equal(t, "B-3", seatErr.Label)
}

func TestIsUserError(t *testing.T) {
	assert.True(t, IsUserError(ErrInvalidDate))
	assert.True(t, IsUserError(ErrEmptySelection))
	assert.True(t, IsUserError(ErrInvalidSeatSet))
	assert.True(t, IsUserError(ErrConcertNotFound))
	assert.True(t, IsUserError(ErrTicketNotFound))
	assert.True(t, IsUserError(&SeatUnavailableError{Label: "A-1"}))

	assert.True(t, IsUserError(fmt.Errorf("context: %w", ErrInvalidSeatSet)))

	assert.False(t, IsUserError(errors.New("connection refused")))
	assert.False(t, IsUserError(nil))
}
