package main

import (
	"context"
	"log"
	"time"

	"github.com/johnquangdev/fireflies-bridge/internal/adapter/repository"
	"github.com/johnquangdev/fireflies-bridge/internal/infrastructure/database"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	log.Println("🔄 Applying migrations...")
	if _, err := database.Migrate(db, cfg.Database.Driver); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	// Every project referenced by a meeting gets a project row so it can be refreshed later
	log.Println("🔄 Backfilling projects from meetings...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	meetingRepo := repository.NewMeetingRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	projectIDs, err := meetingRepo.DistinctProjectIDs(ctx)
	if err != nil {
		log.Fatalf("Failed to list project ids: %v", err)
	}

	created := 0
	now := time.Now().UTC()
	for _, projectID := range projectIDs {
		ok, err := projectRepo.EnsureExists(ctx, projectID, now)
		if err != nil {
			log.Fatalf("Failed to backfill project %s: %v", projectID, err)
		}
		if ok {
			created++
		}
	}

	log.Printf("✅ Backfilled %d of %d project(s)", created, len(projectIDs))
}
