package project

import (
	"context"
	stdErrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/repositories"
	"github.com/johnquangdev/fireflies-bridge/pkg/fallback"
)

// DefaultCacheTTL is how long a refreshed project is served without asking the brief source
const DefaultCacheTTL = time.Hour

// ProjectService handles project cache business logic
type ProjectService struct {
	projectRepo repositories.ProjectRepository
	source      BriefSource
	ttl         time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewProjectService creates a new project service. A non-positive ttl uses DefaultCacheTTL.
func NewProjectService(
	projectRepo repositories.ProjectRepository,
	source BriefSource,
	ttl time.Duration,
	logger *zap.Logger,
) *ProjectService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProjectService{
		projectRepo: projectRepo,
		source:      source,
		ttl:         ttl,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetProjectData returns the cached project while fresh. A stale or missing row is refreshed
// from the brief source; if that fails the stale row is served instead.
func (s *ProjectService) GetProjectData(ctx context.Context, projectID string) (*ProjectView, error) {
	cached, err := s.projectRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find project", err)
	}

	now := s.now()
	if cached != nil && cached.IsFresh(now, s.ttl) {
		return &ProjectView{Project: cached, Source: SourceCache}, nil
	}

	return fallback.Do(
		func() (*ProjectView, error) {
			return s.refresh(ctx, projectID, now)
		},
		func(err error) (*ProjectView, error) {
			var appErr errors.AppError
			if stdErrors.As(err, &appErr) {
				return nil, err
			}
			if cached == nil {
				s.logger.Warn("Project data unavailable",
					zap.String("project_id", projectID),
					zap.Error(err),
				)
				return nil, errors.ErrProjectNotFound(projectID)
			}
			s.logger.Warn("Serving stale project data",
				zap.String("project_id", projectID),
				zap.Time("last_updated", cached.LastUpdated),
				zap.Error(err),
			)
			return &ProjectView{Project: cached, Source: SourceStaleCache}, nil
		},
	)
}

func (s *ProjectService) refresh(ctx context.Context, projectID string, now time.Time) (*ProjectView, error) {
	brief, err := s.source.GetProjectBrief(ctx, projectID)
	if err != nil {
		return nil, err
	}
	brief.ProjectID = projectID

	stored, err := s.projectRepo.UpsertBrief(ctx, *brief, now)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("upsert project", err)
	}

	s.logger.Info("Project data refreshed", zap.String("project_id", projectID))
	return &ProjectView{Project: stored, Source: SourceUpstream}, nil
}
