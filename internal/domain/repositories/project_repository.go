package repositories

import (
	"context"
	"time"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// ProjectRepository defines the interface for cached project data access
type ProjectRepository interface {
	// FindByProjectID retrieves a project by its external identifier, (nil, nil) when absent
	FindByProjectID(ctx context.Context, projectID string) (*entities.Project, error)

	// UpsertBrief creates the project if absent and overwrites requirements/questions,
	// stamping last_updated with now. Returns the stored row.
	UpsertBrief(ctx context.Context, brief entities.ProjectBrief, now time.Time) (*entities.Project, error)

	// SaveReport persists the validation report and last_updated of an existing project
	SaveReport(ctx context.Context, project *entities.Project) error

	// EnsureExists creates an empty, already-stale project row if none exists.
	// Reports whether a row was created.
	EnsureExists(ctx context.Context, projectID string, now time.Time) (bool, error)
}
