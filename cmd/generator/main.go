package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ovation/internal/config"
	"ovation/internal/database"
	"ovation/internal/models"
	"ovation/internal/repository"
)

var (
	clearExisting = flag.Bool("clear", false, "Clear existing seats before generating new ones")
	concertID     = flag.Int64("concert", 0, "Generate seats only for specific concert ID (0 = all concerts)")
	sections      = flag.String("sections", "A,B,C", "Comma-separated section names")
	rowsPerSect   = flag.Int("rows", 10, "Rows per section")
	seatsPerRow   = flag.Int("seats", 20, "Seats per row")
	dryRun        = flag.Bool("dry-run", false, "Show what would be generated without making changes")
)

type SeatGenerator struct {
	db    *database.DB
	repos *repository.Repositories
}

func main() {
	flag.Parse()

	slog.Info("Starting seat generator...")

	cfg := config.Load()
	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	generator := &SeatGenerator{
		db:    db,
		repos: repository.NewRepositories(db),
	}

	if err := generator.GenerateSeats(context.Background()); err != nil {
		slog.Error("Failed to generate seats", "error", err)
		os.Exit(1)
	}

	slog.Info("Seat generation completed successfully!")
}

func (g *SeatGenerator) GenerateSeats(ctx context.Context) error {
	concerts, err := g.getConcertsForSeatGeneration(ctx)
	if err != nil {
		return fmt.Errorf("failed to get concerts: %w", err)
	}

	if len(concerts) == 0 {
		slog.Info("No concerts found for seat generation")
		return nil
	}

	slog.Info("Found concerts for seat generation", "count", len(concerts))

	sectionNames := splitSections(*sections)

	for _, concert := range concerts {
		if err := g.generateSeatsForConcert(ctx, concert, sectionNames); err != nil {
			slog.Error("Failed to generate seats for concert", "concert_id", concert.ID, "name", concert.Name, "error", err)
			continue
		}
		slog.Info("Generated seats for concert", "concert_id", concert.ID, "name", concert.Name)
	}

	return nil
}

func (g *SeatGenerator) getConcertsForSeatGeneration(ctx context.Context) ([]models.Concert, error) {
	if *concertID > 0 {
		concert, err := g.repos.Concerts.GetByID(ctx, *concertID)
		if err != nil {
			return nil, err
		}
		if concert == nil {
			return nil, fmt.Errorf("concert %d not found", *concertID)
		}
		return []models.Concert{*concert}, nil
	}

	return g.repos.Concerts.List(ctx, "")
}

func (g *SeatGenerator) generateSeatsForConcert(ctx context.Context, concert models.Concert, sectionNames []string) error {
	existing, err := g.repos.Seats.CountByConcert(ctx, concert.ID)
	if err != nil {
		return err
	}

	planned := len(sectionNames) * (*rowsPerSect) * (*seatsPerRow)

	if *dryRun {
		slog.Info("Dry run",
			"concert_id", concert.ID,
			"existing_seats", existing,
			"planned_seats", planned,
			"clear", *clearExisting,
		)
		return nil
	}

	if *clearExisting && existing > 0 {
		if err := g.repos.Seats.DeleteByConcert(ctx, concert.ID); err != nil {
			return fmt.Errorf("failed to clear seats: %w", err)
		}
		slog.Info("Cleared existing seats", "concert_id", concert.ID, "count", existing)
	}

	if err := g.repos.Seats.CreateGrid(ctx, concert.ID, sectionNames, *rowsPerSect, *seatsPerRow); err != nil {
		return fmt.Errorf("failed to create seat grid: %w", err)
	}

	// Seat counters on the concert follow the seat rows
	if err := g.repos.Concerts.SyncSeatCounts(ctx, concert.ID); err != nil {
		return fmt.Errorf("failed to sync seat counts: %w", err)
	}

	return nil
}

func splitSections(raw string) []string {
	var names []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}
