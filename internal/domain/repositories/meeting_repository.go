package repositories

import (
	"context"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access.
// Lookups return (nil, nil) when no row matches.
type MeetingRepository interface {
	// Create inserts a new meeting and assigns its ID
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its internal numeric ID
	FindByID(ctx context.Context, id uint) (*entities.Meeting, error)

	// FindByTranscriptID retrieves a meeting by its Fireflies transcript ID
	FindByTranscriptID(ctx context.Context, transcriptID string) (*entities.Meeting, error)

	// FindByURL retrieves the first meeting recorded for a meeting URL
	FindByURL(ctx context.Context, meetingURL string) (*entities.Meeting, error)

	// FindPendingByURL retrieves the newest meeting for a URL that has no transcript yet
	FindPendingByURL(ctx context.Context, meetingURL string) (*entities.Meeting, error)

	// ListByProject retrieves all meetings of a project, newest first
	ListByProject(ctx context.Context, projectID string) ([]*entities.Meeting, error)

	// DistinctProjectIDs lists every project ID referenced by a meeting
	DistinctProjectIDs(ctx context.Context) ([]string, error)

	// Update saves all fields of an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error
}
