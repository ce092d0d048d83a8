package handlers

import (
	"net/http"
	"strconv"

	"ovation/internal/logger"
	"ovation/internal/models"

	"github.com/gin-gonic/gin"
)

// BookTicket - POST /api/tickets
// Забронировать места; вся бронь проходит в одной транзакции
func (h *Handlers) BookTicket(c *gin.Context) {
	var req models.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	resp, err := h.services.Tickets.Book(c.Request.Context(), req)
	if err != nil {
		logger.WithContext(c.Request.Context()).Warn("Booking rejected",
			"concert_id", req.ConcertID,
			"seat_count", len(req.SeatIDs),
			"error", err,
		)
		respondError(c, err, "failed to book tickets")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTicket - GET /api/tickets/:id
// Получить билет с данными концерта и списком мест
func (h *Handlers) GetTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid ticket id"})
		return
	}

	ticket, err := h.services.Tickets.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get ticket")
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// ListTickets - GET /api/tickets
// Получить все билеты, новые первыми
func (h *Handlers) ListTickets(c *gin.Context) {
	tickets, err := h.services.Tickets.List(c.Request.Context(), 0)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to list tickets", "error", err)
		respondError(c, err, "failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}

// ListTicketsByConcert - GET /api/tickets/concert/:id
// Получить билеты одного концерта
func (h *Handlers) ListTicketsByConcert(c *gin.Context) {
	concertID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid concert id"})
		return
	}

	tickets, err := h.services.Tickets.List(c.Request.Context(), concertID)
	if err != nil {
		respondError(c, err, "failed to list tickets")
		return
	}

	c.JSON(http.StatusOK, tickets)
}
