package consumers

import (
	"context"
	"log/slog"

	"ovation/internal/config"
	"ovation/internal/database"
	"ovation/internal/messaging"
	"ovation/internal/models"
	"ovation/internal/repository"
	"ovation/internal/search"
)

// ConsumerService keeps the Elasticsearch index in step with the
// database by replaying booking and concert events off NATS.
type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	// Connect to database
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	// Connect to NATS
	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		return nil, err
	}

	// Connect to Elasticsearch
	esClient, err := search.NewElasticsearchClient(cfg.Search)
	if err != nil {
		return nil, err
	}

	// Create repositories
	repos := repository.NewRepositories(db)

	// Create handlers
	handlers := NewHandlers(repos, esClient)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: handlers,
	}, nil
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	// Subscribe to booking events
	_, err := cs.nats.SubscribeQueue(models.EventTicketBooked, "consumers", cs.handlers.HandleTicketBooked)
	if err != nil {
		return err
	}

	// Subscribe to concert events
	_, err = cs.nats.SubscribeQueue(models.EventConcertCreated, "consumers", cs.handlers.HandleConcertCreated)
	if err != nil {
		return err
	}

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
