package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/dto/meeting"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/meeting"
)

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	meetingService meetingUsecase.Service
	logger         *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService meetingUsecase.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// CreateMeeting handles POST /meetings
// @Summary      Invite the Fireflies bot to a meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting to record"
// @Success      201      {object}  meeting.CreateMeetingResponse
// @Failure      400      {object}  map[string]interface{}  "Invalid body, URL or bot invite failure"
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	var req meeting.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		ProjectID:  req.ProjectID,
		MeetingURL: req.GoogleMeetURL,
		Title:      req.Title,
		Duration:   req.Duration,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, http.StatusCreated, presenter.ToCreateMeetingResponse(m))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get a meeting by Fireflies transcript ID or internal ID
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Transcript ID or numeric meeting ID"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	m, err := h.meetingService.GetMeeting(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingResponse(m))
}

// ListProjectMeetings handles GET /projects/:id/meetings
// @Summary      List the meetings of a project
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  meeting.MeetingListResponse
// @Router       /projects/{id}/meetings [get]
func (h *Meeting) ListProjectMeetings(c echo.Context) error {
	projectID := c.Param("id")
	meetings, err := h.meetingService.ListProjectMeetings(c.Request().Context(), projectID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToMeetingListResponse(projectID, meetings))
}
