package meeting

import "time"

// CreateMeetingResponse is returned after the bot was invited and the meeting stored
type CreateMeetingResponse struct {
	Status     string `json:"status"`
	ID         uint   `json:"id"`
	ProjectID  string `json:"project_id"`
	MeetingURL string `json:"meeting_url"`
}

// MeetingResponse represents a stored meeting
type MeetingResponse struct {
	ID              uint      `json:"id"`
	ProjectID       string    `json:"project_id"`
	MeetingID       *string   `json:"meeting_id"`
	MeetingURL      string    `json:"meeting_url"`
	Title           *string   `json:"title,omitempty"`
	Transcription   *string   `json:"transcription"`
	MeetingDatetime time.Time `json:"meeting_datetime"`
}

// MeetingListResponse lists the meetings of a project
type MeetingListResponse struct {
	ProjectID string             `json:"project_id"`
	Meetings  []*MeetingResponse `json:"meetings"`
	Total     int                `json:"total"`
}

// AdminMeetingResponse wraps a meeting changed by development tooling
type AdminMeetingResponse struct {
	Status  string           `json:"status"`
	Meeting *MeetingResponse `json:"meeting"`
}
