package handlers

import (
	"net/http"
	"strconv"

	"ovation/internal/logger"

	"github.com/gin-gonic/gin"
)

// ListSeats - GET /api/seats/concert/:id
// Получить карту мест концерта, опционально по одной секции
func (h *Handlers) ListSeats(c *gin.Context) {
	concertID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid concert id"})
		return
	}

	section := c.Query("section")

	seatMap, err := h.services.Seats.MapByConcert(c.Request.Context(), concertID, section)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to list seats", "concert_id", concertID, "error", err)
		respondError(c, err, "failed to list seats")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"concert_id": concertID,
		"seats":      seatMap,
	})
}
