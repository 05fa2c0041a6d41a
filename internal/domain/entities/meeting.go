package entities

import (
	"strconv"
	"strings"
	"time"
)

// GoogleMeetURLPrefix is the only meeting link prefix the Fireflies bot is invited to
const GoogleMeetURLPrefix = "https://meet.google.com/"

// Meeting is a meeting the Fireflies bot was invited to, keyed externally by its URL
type Meeting struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ProjectID       string    `gorm:"type:varchar(50);not null;index" json:"project_id"`
	TranscriptID    *string   `gorm:"column:meeting_id;type:varchar(50);index" json:"meeting_id"`
	MeetingURL      string    `gorm:"type:text;not null;index" json:"meeting_url"`
	Title           *string   `gorm:"type:varchar(255)" json:"title,omitempty"`
	Transcription   *string   `gorm:"type:text" json:"transcription"`
	MeetingDatetime time.Time `json:"meeting_datetime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting awaiting its transcript
func NewMeeting(projectID, meetingURL string, title *string) *Meeting {
	return &Meeting{
		ProjectID:       projectID,
		MeetingURL:      meetingURL,
		Title:           title,
		MeetingDatetime: time.Now().UTC(),
	}
}

// IsGoogleMeetURL reports whether url points at a Google Meet session
func IsGoogleMeetURL(url string) bool {
	return strings.HasPrefix(url, GoogleMeetURLPrefix)
}

// HasTranscription reports whether the transcript body has been populated
func (m *Meeting) HasTranscription() bool {
	return m.Transcription != nil && *m.Transcription != ""
}

// HasTranscriptID reports whether a Fireflies transcript ID is attached
func (m *Meeting) HasTranscriptID() bool {
	return m.TranscriptID != nil && *m.TranscriptID != ""
}

// InternalID returns the numeric ID in its canonical string form
func (m *Meeting) InternalID() string {
	return strconv.FormatUint(uint64(m.ID), 10)
}

// ApplyTranscript attaches the transcript ID and body together
func (m *Meeting) ApplyTranscript(transcriptID, text string) {
	m.TranscriptID = &transcriptID
	m.Transcription = &text
}
