package handlers

import (
	"net/http"
	"strconv"

	"ovation/internal/logger"
	"ovation/internal/models"

	"github.com/gin-gonic/gin"
)

// CreateConcert - POST /api/concerts
// Создать концерт
func (h *Handlers) CreateConcert(c *gin.Context) {
	var req models.CreateConcertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	id, err := h.services.Concerts.Create(c.Request.Context(), req)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to create concert", "error", err)
		respondError(c, err, "failed to create concert")
		return
	}

	c.JSON(http.StatusCreated, models.CreateConcertResponse{Success: true, ID: id})
}

// ListConcerts - GET /api/concerts
// Получить список концертов; запросы без фильтров отдаются из кеша
func (h *Handlers) ListConcerts(c *gin.Context) {
	query := c.Query("query")
	date := c.Query("date")

	cacheable := query == "" && date == ""

	if cacheable && h.valkeyClient != nil {
		if raw, err := h.valkeyClient.GetConcertListRaw(c.Request.Context()); err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	concerts, err := h.services.Concerts.List(c.Request.Context(), query, date)
	if err != nil {
		logger.WithContext(c.Request.Context()).Error("Failed to list concerts", "error", err)
		respondError(c, err, "failed to list concerts")
		return
	}

	if cacheable && h.valkeyClient != nil {
		if err := h.valkeyClient.SetConcertList(c.Request.Context(), concerts); err != nil {
			logger.WithContext(c.Request.Context()).Warn("Failed to cache concert list", "error", err)
		}
	}

	c.JSON(http.StatusOK, concerts)
}

// GetConcert - GET /api/concerts/:id
// Получить концерт с разбивкой по секциям
func (h *Handlers) GetConcert(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid concert id"})
		return
	}

	concert, err := h.services.Concerts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "failed to get concert")
		return
	}

	c.JSON(http.StatusOK, concert)
}
