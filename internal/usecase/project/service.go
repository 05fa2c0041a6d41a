package project

import (
	"context"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// BriefSource is the external system of record for project briefs
type BriefSource interface {
	GetProjectBrief(ctx context.Context, projectID string) (*entities.ProjectBrief, error)
}

// Service defines the interface for project use case
type Service interface {
	// GetProjectData returns the cached project, refreshing it from the brief source once stale
	GetProjectData(ctx context.Context, projectID string) (*ProjectView, error)
}

// Ensure ProjectService implements Service interface
var _ Service = (*ProjectService)(nil)

// Source tells where a ProjectView came from
type Source string

const (
	SourceCache      Source = "cache"
	SourceUpstream   Source = "upstream"
	SourceStaleCache Source = "stale_cache"
)

// ProjectView is a project row plus the path it was served from
type ProjectView struct {
	Project *entities.Project
	Source  Source
}
