package presenter

import (
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/dto/meeting"
	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}
	return &meeting.MeetingResponse{
		ID:              m.ID,
		ProjectID:       m.ProjectID,
		MeetingID:       m.TranscriptID,
		MeetingURL:      m.MeetingURL,
		Title:           m.Title,
		Transcription:   m.Transcription,
		MeetingDatetime: m.MeetingDatetime,
	}
}

// ToCreateMeetingResponse converts a newly created meeting to CreateMeetingResponse DTO
func ToCreateMeetingResponse(m *entities.Meeting) *meeting.CreateMeetingResponse {
	return &meeting.CreateMeetingResponse{
		Status:     "ok",
		ID:         m.ID,
		ProjectID:  m.ProjectID,
		MeetingURL: m.MeetingURL,
	}
}

// ToMeetingListResponse converts a project's meetings to MeetingListResponse DTO
func ToMeetingListResponse(projectID string, meetings []*entities.Meeting) *meeting.MeetingListResponse {
	items := make([]*meeting.MeetingResponse, len(meetings))
	for i, m := range meetings {
		items[i] = ToMeetingResponse(m)
	}
	return &meeting.MeetingListResponse{
		ProjectID: projectID,
		Meetings:  items,
		Total:     len(items),
	}
}

// ToAdminMeetingResponse wraps a meeting changed through development tooling
func ToAdminMeetingResponse(status string, m *entities.Meeting) *meeting.AdminMeetingResponse {
	return &meeting.AdminMeetingResponse{
		Status:  status,
		Meeting: ToMeetingResponse(m),
	}
}
