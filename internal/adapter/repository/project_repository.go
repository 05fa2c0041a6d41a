package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/repositories"
)

// projectRepository implements the ProjectRepository interface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) repositories.ProjectRepository {
	return &projectRepository{db: db}
}

// FindByProjectID retrieves a project by its external ID
func (r *projectRepository) FindByProjectID(ctx context.Context, projectID string) (*entities.Project, error) {
	var project entities.Project
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &project, nil
}

// UpsertBrief inserts or overwrites the brief fields of a project
func (r *projectRepository) UpsertBrief(ctx context.Context, brief entities.ProjectBrief, now time.Time) (*entities.Project, error) {
	project := &entities.Project{
		ProjectID:    brief.ProjectID,
		Requirements: brief.Requirements,
		Questions:    brief.Questions,
		LastUpdated:  now,
		CreatedAt:    now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "project_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"requirements", "questions", "last_updated"}),
		}).
		Create(project).Error
	if err != nil {
		return nil, err
	}

	// Conflicting inserts do not report the existing row's ID or report; read it back.
	return r.FindByProjectID(ctx, brief.ProjectID)
}

// SaveReport persists the validation report of an existing project
func (r *projectRepository) SaveReport(ctx context.Context, project *entities.Project) error {
	if project == nil {
		return errors.New("project cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.Project{}).
		Where("project_id = ?", project.ProjectID).
		Updates(map[string]interface{}{
			"validation_report": project.ValidationReport,
			"last_updated":      project.LastUpdated,
		}).Error
}

// EnsureExists creates an empty project row if none exists. last_updated is left at
// the Unix epoch so the first read still refreshes from the project-data service.
func (r *projectRepository) EnsureExists(ctx context.Context, projectID string, now time.Time) (bool, error) {
	project := &entities.Project{
		ProjectID:   projectID,
		LastUpdated: time.Unix(0, 0).UTC(),
		CreatedAt:   now,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "project_id"}}, DoNothing: true}).
		Create(project)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
