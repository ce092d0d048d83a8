package api

import (
	"ovation/internal/cache"
	"ovation/internal/config"
	"ovation/internal/database"
	"ovation/internal/handlers"
	"ovation/internal/logger"
	"ovation/internal/messaging"
	"ovation/internal/middleware"
	"ovation/internal/repository"
	"ovation/internal/search"
	"ovation/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server представляет HTTP сервер API
type Server struct {
	router   *gin.Engine
	config   *config.Config
	db       *database.DB
	nats     *messaging.NATSClient
	es       *search.ElasticsearchClient
	valkey   *cache.ValkeyClient
	services *service.Services
	repos    *repository.Repositories
}

// NewServer создает новый экземпляр сервера. База данных обязательна;
// NATS, Elasticsearch и Valkey опциональны - без них сервер работает
// только с базой.
func NewServer(cfg *config.Config) *Server {
	// Устанавливаем режим Gin
	gin.SetMode(cfg.GinMode)

	log := logger.Get()

	// Подключаемся к базе данных
	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	// Запускаем миграции
	if err := db.RunMigrations(); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	// Подключаемся к NATS
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		log.Warn("NATS unavailable, events disabled", "error", err)
		natsClient = nil
	}

	// Подключаемся к Elasticsearch
	esClient, err := search.NewElasticsearchClient(cfg.Search)
	if err != nil {
		log.Warn("Elasticsearch unavailable, falling back to database search", "error", err)
		esClient = nil
	}

	// Подключаемся к Valkey
	valkeyClient, err := cache.NewValkeyClient()
	if err != nil {
		log.Warn("Valkey unavailable, list caching disabled", "error", err)
		valkeyClient = nil
	}

	// Создаем репозитории и сервисы
	repos := repository.NewRepositories(db)
	services := service.NewServices(db, repos, natsClient, esClient, valkeyClient)

	// Создаем роутер
	router := gin.New()

	// Применяем middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())

	// Создаем сервер
	server := &Server{
		router:   router,
		config:   cfg,
		db:       db,
		nats:     natsClient,
		es:       esClient,
		valkey:   valkeyClient,
		services: services,
		repos:    repos,
	}

	// Настраиваем роуты
	server.setupRoutes()

	return server
}

// setupRoutes настраивает все API роуты
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.db, s.valkey)

	// API routes
	api := s.router.Group("/api")
	{
		// Concerts endpoints
		concerts := api.Group("/concerts")
		{
			concerts.POST("", h.CreateConcert)
			concerts.GET("", h.ListConcerts)
			concerts.GET("/:id", h.GetConcert)
		}

		// Seats endpoints
		seats := api.Group("/seats")
		{
			seats.GET("/concert/:id", h.ListSeats)
		}

		// Tickets endpoints
		tickets := api.Group("/tickets")
		{
			tickets.POST("", h.BookTicket)
			tickets.GET("", h.ListTickets)
			tickets.GET("/:id", h.GetTicket)
			tickets.GET("/concert/:id", h.ListTicketsByConcert)
		}
	}

	// Health check endpoint
	s.router.GET("/health", h.HealthCheck)

	// Prometheus metrics
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// GetRouter возвращает роутер для тестирования
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup закрывает соединения
func (s *Server) Cleanup() error {
	log := logger.Get()

	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			log.Error("Error closing NATS connection", "error", err)
		}
	}

	if s.valkey != nil {
		if err := s.valkey.Close(); err != nil {
			log.Error("Error closing Valkey connection", "error", err)
		}
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			log.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
