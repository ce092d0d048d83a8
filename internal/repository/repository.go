package repository

import (
	"ovation/internal/database"
)

type Repositories struct {
	Concerts *ConcertRepository
	Seats    *SeatRepository
	Tickets  *TicketRepository
}

func NewRepositories(db *database.DB) *Repositories {
	return &Repositories{
		Concerts: NewConcertRepository(db),
		Seats:    NewSeatRepository(db),
		Tickets:  NewTicketRepository(db),
	}
}
