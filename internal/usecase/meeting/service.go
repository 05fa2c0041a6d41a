package meeting

import (
	"context"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// TranscriptProvider is the transcription service the bot and transcripts come from
type TranscriptProvider interface {
	AddBotToMeeting(ctx context.Context, meetingLink string, title *string, duration *int) error
	GetTranscript(ctx context.Context, transcriptID string) (*entities.TranscriptData, error)
}

// Service defines the interface for meeting use case
type Service interface {
	// CreateMeeting invites the transcription bot and records the meeting
	CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error)

	// HandleTranscriptionCompleted fetches a finished transcript and stores it on its meeting
	HandleTranscriptionCompleted(ctx context.Context, transcriptID string) (*entities.Meeting, error)

	// GetMeeting resolves a transcript ID or internal ID to a meeting, pulling a missing transcript if possible
	GetMeeting(ctx context.Context, identifier string) (*entities.Meeting, error)

	// ListProjectMeetings retrieves all meetings of a project, newest first
	ListProjectMeetings(ctx context.Context, projectID string) ([]*entities.Meeting, error)

	// UpdateMeeting overwrites selected fields of a meeting (development tooling)
	UpdateMeeting(ctx context.Context, id uint, input UpdateMeetingInput) (*entities.Meeting, error)

	// InjectTranscript stores a transcript on the meeting with the given URL (development tooling)
	InjectTranscript(ctx context.Context, input InjectTranscriptInput) (*entities.Meeting, error)
}

// Ensure MeetingService implements Service interface
var _ Service = (*MeetingService)(nil)

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	ProjectID  string
	MeetingURL string
	Title      *string
	Duration   *int
}

// UpdateMeetingInput carries the fields to overwrite; nil fields are left untouched
type UpdateMeetingInput struct {
	TranscriptID  *string
	Transcription *string
	MeetingURL    *string
}

// InjectTranscriptInput represents a transcript delivered out of band
type InjectTranscriptInput struct {
	MeetingURL    string
	TranscriptID  string
	Transcription string
}
