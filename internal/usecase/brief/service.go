package brief

import (
	"context"
	"time"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// Completer is a chat completion backend
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// Service defines the interface for project brief validation
type Service interface {
	// Validate reviews the stored brief of a project, reusing a recent report unless force is set
	Validate(ctx context.Context, projectID string, force bool) (*ValidationResult, error)
}

// Ensure ValidatorService implements Service interface
var _ Service = (*ValidatorService)(nil)

// Options configures the validator
type Options struct {
	Enabled  bool
	CacheTTL time.Duration
}

// ValidationResult is a validation report and whether it came from the project row
type ValidationResult struct {
	ProjectID   string                    `json:"project_id"`
	Report      entities.ValidationReport `json:"validation_report"`
	Cached      bool                      `json:"cached"`
	ValidatedAt time.Time                 `json:"validated_at"`
}
