// Package apperrors defines the booking error taxonomy. Every error here
// is user-correctable; anything else that comes out of the booking path
// is a store failure and is surfaced generically.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate     = errors.New("invalid date format, expected YYYY-MM-DD")
	ErrEmptySelection  = errors.New("please select at least one seat")
	ErrInvalidSeatSet  = errors.New("some seats are invalid")
	ErrConcertNotFound = errors.New("concert not found")
	ErrTicketNotFound  = errors.New("ticket not found")
)

// SeatUnavailableError reports the first already-claimed seat in a
// booking request so the buyer knows which seat to drop and retry.
type SeatUnavailableError struct {
	Label string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %s is no longer available", e.Label)
}

// IsUserError reports whether the error belongs to the user-correctable
// taxonomy, as opposed to an underlying store failure.
func IsUserError(err error) bool {
	var seatErr *SeatUnavailableError
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrEmptySelection) ||
		errors.Is(err, ErrInvalidSeatSet) ||
		errors.Is(err, ErrConcertNotFound) ||
		errors.Is(err, ErrTicketNotFound) ||
		errors.As(err, &seatErr)
}
