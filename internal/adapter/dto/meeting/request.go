package meeting

// CreateMeetingRequest represents the request to invite the bot to a meeting
type CreateMeetingRequest struct {
	ProjectID     string  `json:"project_id" validate:"required"`
	GoogleMeetURL string  `json:"google_meet_url" validate:"required"`
	Title         *string `json:"title,omitempty"`
	Duration      *int    `json:"duration,omitempty" validate:"omitempty,min=1"`
}

// WebhookEvent is the Fireflies webhook payload
type WebhookEvent struct {
	EventType         string `json:"eventType"`
	MeetingID         string `json:"meetingId"`
	ClientReferenceID string `json:"clientReferenceId,omitempty"`
}

// UpdateMeetingRequest patches a meeting from development tooling
type UpdateMeetingRequest struct {
	MeetingID     *string `json:"meeting_id,omitempty"`
	Transcription *string `json:"transcription,omitempty"`
	MeetingURL    *string `json:"meeting_url,omitempty"`
}

// InjectTranscriptRequest stores a transcript on a meeting found by URL
type InjectTranscriptRequest struct {
	MeetingURL    string `json:"meeting_url" validate:"required"`
	MeetingID     string `json:"meeting_id" validate:"required"`
	Transcription string `json:"transcription" validate:"required"`
}
