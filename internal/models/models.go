package models

// CreateConcertRequest - модель для создания концерта
type CreateConcertRequest struct {
	Name       string  `json:"name" binding:"required"`
	Venue      string  `json:"venue" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	Time       string  `json:"time"`
	TotalSeats int     `json:"total_seats"`
	Price      float64 `json:"price" binding:"required"`
}

// CreateConcertResponse - модель ответа при создании концерта
type CreateConcertResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id"`
}

// ConcertSummary - элемент списка концертов с кешированными счетчиками мест
type ConcertSummary struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Venue          string  `json:"venue"`
	Date           string  `json:"date"`
	Time           string  `json:"time"`
	Price          float64 `json:"price"`
	TotalSeats     int     `json:"total_seats"`
	AvailableSeats int     `json:"available_seats"`
}

// SectionAvailability - счетчики доступности мест по секции
type SectionAvailability struct {
	Section   string `json:"section"`
	Total     int    `json:"total"`
	Available int    `json:"available"`
}

// ConcertDetail - концерт с разбивкой по секциям
type ConcertDetail struct {
	ConcertSummary
	SectionsCount int                   `json:"sections_count"`
	Sections      []SectionAvailability `json:"sections"`
}

// SeatItem - место в ответе просмотра зала
type SeatItem struct {
	ID          int64  `json:"id"`
	Section     string `json:"section"`
	Row         int    `json:"row"`
	Number      string `json:"number"`
	Label       string `json:"label"`
	IsAvailable bool   `json:"is_available"`
}

// SeatMap - места концерта, сгруппированные секция -> ряд -> места
type SeatMap map[string]map[int][]SeatItem

// BookTicketRequest - модель запроса бронирования мест
type BookTicketRequest struct {
	ConcertID     int64   `json:"concert_id" binding:"required"`
	SeatIDs       []int64 `json:"seat_ids"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required"`
	CustomerPhone *string `json:"customer_phone"`
}

// BookTicketResponse - модель ответа при успешном бронировании
type BookTicketResponse struct {
	Success    bool    `json:"success"`
	TicketID   int64   `json:"ticket_id"`
	TotalPrice float64 `json:"total_price"`
	SeatCount  int     `json:"seat_count"`
}

// TicketSummary - элемент списка билетов с агрегированными местами
type TicketSummary struct {
	ID            int64   `json:"id"`
	ConcertID     int64   `json:"concert_id"`
	ConcertName   string  `json:"concert_name"`
	CustomerName  string  `json:"customer_name"`
	CustomerEmail string  `json:"customer_email"`
	TotalPrice    float64 `json:"total_price"`
	BookingStatus string  `json:"booking_status"`
	BookingDate   string  `json:"booking_date"`
	Seats         string  `json:"seats"`
}

// TicketDetail - билет с данными концерта
type TicketDetail struct {
	TicketSummary
	Venue         string  `json:"venue"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	CustomerPhone *string `json:"customer_phone"`
}
