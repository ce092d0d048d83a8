package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ovation/internal/apperrors"
	"ovation/internal/models"
	"ovation/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubConcertService struct {
	createFn func(ctx context.Context, req models.CreateConcertRequest) (int64, error)
	listFn   func(ctx context.Context, query, date string) ([]models.ConcertSummary, error)
	getFn    func(ctx context.Context, id int64) (*models.ConcertDetail, error)
}

func (s *stubConcertService) Create(ctx context.Context, req models.CreateConcertRequest) (int64, error) {
	return s.createFn(ctx, req)
}

func (s *stubConcertService) List(ctx context.Context, query, date string) ([]models.ConcertSummary, error) {
	return s.listFn(ctx, query, date)
}

func (s *stubConcertService) Get(ctx context.Context, id int64) (*models.ConcertDetail, error) {
	return s.getFn(ctx, id)
}

type stubSeatService struct {
	mapFn func(ctx context.Context, concertID int64, section string) (models.SeatMap, error)
}

func (s *stubSeatService) MapByConcert(ctx context.Context, concertID int64, section string) (models.SeatMap, error) {
	return s.mapFn(ctx, concertID, section)
}

type stubTicketService struct {
	bookFn func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error)
	getFn  func(ctx context.Context, id int64) (*models.TicketDetail, error)
	listFn func(ctx context.Context, concertID int64) ([]models.TicketSummary, error)
}

func (s *stubTicketService) Book(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
	return s.bookFn(ctx, req)
}

func (s *stubTicketService) Get(ctx context.Context, id int64) (*models.TicketDetail, error) {
	return s.getFn(ctx, id)
}

func (s *stubTicketService) List(ctx context.Context, concertID int64) ([]models.TicketSummary, error) {
	return s.listFn(ctx, concertID)
}

func setupRouter(services *service.Services) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(services, nil, nil)

	r := gin.New()
	api := r.Group("/api")
	{
		concerts := api.Group("/concerts")
		{
			concerts.POST("", h.CreateConcert)
			concerts.GET("", h.ListConcerts)
			concerts.GET("/:id", h.GetConcert)
		}

		seats := api.Group("/seats")
		{
			seats.GET("/concert/:id", h.ListSeats)
		}

		tickets := api.Group("/tickets")
		{
			tickets.POST("", h.BookTicket)
			tickets.GET("", h.ListTickets)
			tickets.GET("/:id", h.GetTicket)
			tickets.GET("/concert/:id", h.ListTicketsByConcert)
		}
	}

	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookTicket(t *testing.T) {
	validRequest := models.BookTicketRequest{
		ConcertID:     1,
		SeatIDs:       []int64{10, 11},
		CustomerName:  "Alice",
		CustomerEmail: "alice@example.com",
	}

	t.Run("success returns 201", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			bookFn: func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
				return &models.BookTicketResponse{Success: true, TicketID: 42, TotalPrice: 151.00, SeatCount: 2}, nil
			},
		}})

		w := postJSON(t, r, "/api/tickets", validRequest)
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp models.BookTicketResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(42), resp.TicketID)
		assert.Equal(t, 151.00, resp.TotalPrice)
		assert.Equal(t, 2, resp.SeatCount)
	})

	t.Run("seat taken returns 409", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			bookFn: func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
				return nil, &apperrors.SeatUnavailableError{Label: "A-12"}
			},
		}})

		w := postJSON(t, r, "/api/tickets", validRequest)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "seat A-12 is no longer available")
	})

	t.Run("invalid seat set returns 400", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			bookFn: func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
				return nil, apperrors.ErrInvalidSeatSet
			},
		}})

		w := postJSON(t, r, "/api/tickets", validRequest)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty selection returns 400", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			bookFn: func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
				return nil, apperrors.ErrEmptySelection
			},
		}})

		empty := validRequest
		empty.SeatIDs = nil
		w := postJSON(t, r, "/api/tickets", empty)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "please select at least one seat")
	})

	t.Run("unknown concert returns 404", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			bookFn: func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
				return nil, apperrors.ErrConcertNotFound
			},
		}})

		w := postJSON(t, r, "/api/tickets", validRequest)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing customer fields rejected by binding", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			bookFn: func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		}})

		w := postJSON(t, r, "/api/tickets", map[string]interface{}{
			"concert_id": 1,
			"seat_ids":   []int64{10},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store failure returns generic 500", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			bookFn: func(ctx context.Context, req models.BookTicketRequest) (*models.BookTicketResponse, error) {
				return nil, errors.New("pq: deadlock detected")
			},
		}})

		w := postJSON(t, r, "/api/tickets", validRequest)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "failed to book tickets")
		assert.NotContains(t, w.Body.String(), "deadlock")
	})
}

func TestGetTicket(t *testing.T) {
	t.Run("not found returns 404", func(t *testing.T) {
		r := setupRouter(&service.Services{Tickets: &stubTicketService{
			getFn: func(ctx context.Context, id int64) (*models.TicketDetail, error) {
				return nil, apperrors.ErrTicketNotFound
			},
		}})

		w := getPath(r, "/api/tickets/7")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		r := setupRouter(&service.Services{})

		w := getPath(r, "/api/tickets/abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateConcert(t *testing.T) {
	t.Run("success returns 201", func(t *testing.T) {
		r := setupRouter(&service.Services{Concerts: &stubConcertService{
			createFn: func(ctx context.Context, req models.CreateConcertRequest) (int64, error) {
				assert.Equal(t, "Symphony Night", req.Name)
				return 5, nil
			},
		}})

		w := postJSON(t, r, "/api/concerts", models.CreateConcertRequest{
			Name:       "Symphony Night",
			Venue:      "City Hall",
			Date:       "2026-12-31",
			Time:       "19:30",
			TotalSeats: 200,
			Price:      75.50,
		})
		assert.Equal(t, http.StatusCreated, w.Code)

		var resp models.CreateConcertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(5), resp.ID)
	})

	t.Run("bad date returns 400", func(t *testing.T) {
		r := setupRouter(&service.Services{Concerts: &stubConcertService{
			createFn: func(ctx context.Context, req models.CreateConcertRequest) (int64, error) {
				return 0, apperrors.ErrInvalidDate
			},
		}})

		w := postJSON(t, r, "/api/concerts", models.CreateConcertRequest{
			Name:  "Symphony Night",
			Venue: "City Hall",
			Date:  "31-12-2026",
			Price: 75.50,
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListConcerts(t *testing.T) {
	r := setupRouter(&service.Services{Concerts: &stubConcertService{
		listFn: func(ctx context.Context, query, date string) ([]models.ConcertSummary, error) {
			assert.Equal(t, "symphony", query)
			return []models.ConcertSummary{{ID: 1, Name: "Symphony Night"}}, nil
		},
	}})

	w := getPath(r, "/api/concerts?query=symphony")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.ConcertSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Symphony Night", resp[0].Name)
}

func TestGetConcert(t *testing.T) {
	t.Run("unknown concert returns 404", func(t *testing.T) {
		r := setupRouter(&service.Services{Concerts: &stubConcertService{
			getFn: func(ctx context.Context, id int64) (*models.ConcertDetail, error) {
				return nil, apperrors.ErrConcertNotFound
			},
		}})

		w := getPath(r, "/api/concerts/99")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns section breakdown", func(t *testing.T) {
		r := setupRouter(&service.Services{Concerts: &stubConcertService{
			getFn: func(ctx context.Context, id int64) (*models.ConcertDetail, error) {
				return &models.ConcertDetail{
					ConcertSummary: models.ConcertSummary{ID: id, Name: "Symphony Night"},
					SectionsCount:  2,
					Sections: []models.SectionAvailability{
						{Section: "A", Total: 100, Available: 40},
						{Section: "B", Total: 100, Available: 97},
					},
				}, nil
			},
		}})

		w := getPath(r, "/api/concerts/1")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp models.ConcertDetail
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 2, resp.SectionsCount)
		assert.Equal(t, "A", resp.Sections[0].Section)
	})
}

func TestListSeats(t *testing.T) {
	r := setupRouter(&service.Services{Seats: &stubSeatService{
		mapFn: func(ctx context.Context, concertID int64, section string) (models.SeatMap, error) {
			assert.Equal(t, int64(3), concertID)
			assert.Equal(t, "A", section)
			return models.SeatMap{
				"A": {1: []models.SeatItem{{ID: 1, Section: "A", Row: 1, Number: "1", Label: "A-11", IsAvailable: true}}},
			}, nil
		},
	}})

	w := getPath(r, "/api/seats/concert/3?section=A")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"A-11"`)
}

func TestListTicketsByConcert(t *testing.T) {
	r := setupRouter(&service.Services{Tickets: &stubTicketService{
		listFn: func(ctx context.Context, concertID int64) ([]models.TicketSummary, error) {
			assert.Equal(t, int64(9), concertID)
			return []models.TicketSummary{{ID: 1, ConcertID: 9, Seats: "A-11, A-12"}}, nil
		},
	}})

	w := getPath(r, "/api/tickets/concert/9")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []models.TicketSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "A-11, A-12", resp[0].Seats)
}
