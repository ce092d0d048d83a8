package handlers

import (
	"errors"
	"net/http"

	"ovation/internal/apperrors"
	"ovation/internal/cache"
	"ovation/internal/database"
	"ovation/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services     *service.Services
	db           *database.DB
	valkeyClient *cache.ValkeyClient
}

func NewHandlers(services *service.Services, db *database.DB, valkeyClient *cache.ValkeyClient) *Handlers {
	return &Handlers{
		services:     services,
		db:           db,
		valkeyClient: valkeyClient,
	}
}

// HealthCheck - GET /health
// Проверка состояния сервиса и пула соединений БД
func (h *Handlers) HealthCheck(c *gin.Context) {
	health := h.db.HealthCheck(c.Request.Context())

	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, health)
}

// respondError переводит ошибки бизнес-логики в HTTP статусы.
// Всё, что не входит в известную таксономию, отдается как 500 с
// обезличенным сообщением.
func respondError(c *gin.Context, err error, fallback string) {
	var seatErr *apperrors.SeatUnavailableError

	switch {
	case errors.Is(err, apperrors.ErrInvalidDate),
		errors.Is(err, apperrors.ErrEmptySelection),
		errors.Is(err, apperrors.ErrInvalidSeatSet):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, apperrors.ErrConcertNotFound),
		errors.Is(err, apperrors.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
	case errors.As(err, &seatErr):
		c.JSON(http.StatusConflict, gin.H{"success": false, "error": seatErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": fallback})
	}
}
