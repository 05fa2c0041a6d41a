package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its internal ID
func (r *meetingRepository) FindByID(ctx context.Context, id uint) (*entities.Meeting, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

// FindByTranscriptID retrieves a meeting by its Fireflies transcript ID
func (r *meetingRepository) FindByTranscriptID(ctx context.Context, transcriptID string) (*entities.Meeting, error) {
	return r.first(r.db.WithContext(ctx).Where("meeting_id = ?", transcriptID).Order("id ASC"))
}

// FindByURL retrieves the first meeting recorded for a URL
func (r *meetingRepository) FindByURL(ctx context.Context, meetingURL string) (*entities.Meeting, error) {
	return r.first(r.db.WithContext(ctx).Where("meeting_url = ?", meetingURL).Order("id ASC"))
}

// FindPendingByURL retrieves the newest meeting for a URL still waiting for its transcript
func (r *meetingRepository) FindPendingByURL(ctx context.Context, meetingURL string) (*entities.Meeting, error) {
	return r.first(r.db.WithContext(ctx).
		Where("meeting_url = ?", meetingURL).
		Where("(transcription IS NULL OR transcription = '')").
		Order("id DESC"))
}

// ListByProject retrieves all meetings for a project, newest first
func (r *meetingRepository) ListByProject(ctx context.Context, projectID string) ([]*entities.Meeting, error) {
	var meetings []*entities.Meeting
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("meeting_datetime DESC").
		Order("id DESC").
		Find(&meetings).Error
	if err != nil {
		return nil, err
	}
	return meetings, nil
}

// DistinctProjectIDs lists the project IDs referenced by meetings
func (r *meetingRepository) DistinctProjectIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Distinct("project_id").
		Order("project_id").
		Pluck("project_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Update saves a meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	if meeting == nil {
		return errors.New("meeting cannot be nil")
	}
	return r.db.WithContext(ctx).Save(meeting).Error
}

func (r *meetingRepository) first(q *gorm.DB) (*entities.Meeting, error) {
	var meeting entities.Meeting
	if err := q.First(&meeting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meeting, nil
}
