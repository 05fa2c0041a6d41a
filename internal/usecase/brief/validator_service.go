package brief

import (
	"context"
	stdErrors "errors"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/repositories"
)

// DefaultCacheTTL is how long a stored report is reused without a new completion call
const DefaultCacheTTL = 72 * time.Hour

// ValidatorService handles brief validation business logic
type ValidatorService struct {
	projectRepo repositories.ProjectRepository
	completer   Completer
	opts        Options
	logger      *zap.Logger
	now         func() time.Time
}

// NewValidatorService creates a new brief validator
func NewValidatorService(
	projectRepo repositories.ProjectRepository,
	completer Completer,
	opts Options,
	logger *zap.Logger,
) *ValidatorService {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ValidatorService{
		projectRepo: projectRepo,
		completer:   completer,
		opts:        opts,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Validate reviews the stored brief of a project against the reference template.
// Only successful reports and quota-exhaustion markers are persisted.
func (s *ValidatorService) Validate(ctx context.Context, projectID string, force bool) (*ValidationResult, error) {
	if !s.opts.Enabled {
		return nil, errors.ErrValidationDisabled()
	}
	if s.completer == nil || !s.completer.Configured() {
		return nil, errors.ErrNotConfigured("OPENAI_API_KEY")
	}

	project, err := s.projectRepo.FindByProjectID(ctx, projectID)
	if err != nil {
		return nil, errors.ErrDBQueryFailed("find project", err)
	}
	if project == nil {
		return nil, errors.ErrProjectNotFound(projectID)
	}
	if !project.HasRequirements() {
		return nil, errors.ErrProjectNoRequirements(projectID)
	}

	now := s.now()
	if !force {
		if cached, producedAt := s.cachedReport(project, now); cached != nil {
			return &ValidationResult{
				ProjectID:   projectID,
				Report:      cached,
				Cached:      true,
				ValidatedAt: producedAt,
			}, nil
		}
	}

	userMessage, err := BuildUserMessage(project)
	if err != nil {
		return nil, errors.ErrInternal(err)
	}

	raw, err := s.completer.Complete(ctx, SystemPrompt, userMessage)
	if err != nil {
		if stdErrors.Is(err, entities.ErrQuotaExceeded) {
			s.storeQuotaMarker(ctx, project, err, now)
			return nil, errors.ErrValidationQuotaExceeded(err)
		}
		s.logger.Error("Brief validation call failed", zap.String("project_id", projectID), zap.Error(err))
		return nil, errors.ErrExternalAPIFailed("openai", err)
	}

	report, err := ParseReport(raw)
	if err != nil {
		s.logger.Error("Failed to parse validation results", zap.String("project_id", projectID), zap.Error(err))
		return nil, errors.ErrValidationParseFailed(raw, err)
	}
	if marker, ok := report.ErrorMarker(); ok {
		return nil, errors.ErrValidationRejected(marker)
	}

	if err := project.SetReport(report, now); err != nil {
		return nil, errors.ErrInternal(err)
	}
	if err := s.projectRepo.SaveReport(ctx, project); err != nil {
		return nil, errors.ErrDBQueryFailed("save validation report", err)
	}

	s.logger.Info("Project brief validated", zap.String("project_id", projectID))
	return &ValidationResult{
		ProjectID:   projectID,
		Report:      report,
		ValidatedAt: now,
	}, nil
}

// cachedReport returns the stored report and when it was produced while it is inside the cache window.
// A quota marker is aged from its own timestamp, a real report from last_updated.
func (s *ValidatorService) cachedReport(project *entities.Project, now time.Time) (entities.ValidationReport, time.Time) {
	report, err := project.Report()
	if err != nil {
		s.logger.Warn("Ignoring unreadable stored validation report",
			zap.String("project_id", project.ProjectID),
			zap.Error(err),
		)
		return nil, time.Time{}
	}
	if report == nil {
		return nil, time.Time{}
	}

	producedAt := project.LastUpdated
	if report.IsQuotaExceeded() {
		recordedAt, ok := report.RecordedAt()
		if !ok {
			return nil, time.Time{}
		}
		producedAt = recordedAt
	}
	if now.Sub(producedAt) >= s.opts.CacheTTL {
		return nil, time.Time{}
	}
	return report, producedAt
}

// storeQuotaMarker records quota exhaustion unless a successful report is already stored.
// The marker keeps its own timestamp; last_updated only moves when a report is recomputed.
func (s *ValidatorService) storeQuotaMarker(ctx context.Context, project *entities.Project, cause error, now time.Time) {
	if existing, err := project.Report(); err == nil && existing.IsSuccessful() {
		s.logger.Warn("Completion quota exceeded, keeping stored report",
			zap.String("project_id", project.ProjectID),
			zap.Error(cause),
		)
		return
	}

	s.logger.Warn("Completion quota exceeded, caching marker", zap.String("project_id", project.ProjectID), zap.Error(cause))
	if err := project.SetMarker(entities.NewQuotaExceededReport(cause.Error(), now)); err != nil {
		return
	}
	if err := s.projectRepo.SaveReport(ctx, project); err != nil {
		s.logger.Error("Failed to store quota marker", zap.String("project_id", project.ProjectID), zap.Error(err))
	}
}
