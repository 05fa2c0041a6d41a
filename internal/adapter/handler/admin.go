package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/dto/meeting"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/presenter"
	meetingUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/meeting"
)

// Admin handles development-only test utility requests
type Admin struct {
	meetingService meetingUsecase.Service
	resetDB        func() error
	logger         *zap.Logger
}

// NewAdminHandler creates a new admin handler. resetDB drops and recreates every table.
func NewAdminHandler(meetingService meetingUsecase.Service, resetDB func() error, logger *zap.Logger) *Admin {
	return &Admin{
		meetingService: meetingService,
		resetDB:        resetDB,
		logger:         logger,
	}
}

// ResetDB handles POST /test-utils/reset-db
func (h *Admin) ResetDB(c echo.Context) error {
	if err := h.resetDB(); err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("reset database", err))
	}
	h.logger.Warn("Database reset", zap.String("request_id", getRequestID(c)))
	return HandleSuccess(h.logger, c, http.StatusOK, map[string]string{"status": "Database reset successfully"})
}

// UpdateMeeting handles PUT /test-utils/meetings/:id
func (h *Admin) UpdateMeeting(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMeetingNotFound(c.Param("id")))
	}

	var req meeting.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if req.MeetingID == nil && req.Transcription == nil && req.MeetingURL == nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("No data provided"))
	}

	m, err := h.meetingService.UpdateMeeting(c.Request().Context(), uint(id), meetingUsecase.UpdateMeetingInput{
		TranscriptID:  req.MeetingID,
		Transcription: req.Transcription,
		MeetingURL:    req.MeetingURL,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAdminMeetingResponse("Meeting updated", m))
}

// InjectTranscript handles POST /test-utils/inject-transcript
func (h *Admin) InjectTranscript(c echo.Context) error {
	var req meeting.InjectTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.InjectTranscript(c.Request().Context(), meetingUsecase.InjectTranscriptInput{
		MeetingURL:    req.MeetingURL,
		TranscriptID:  req.MeetingID,
		Transcription: req.Transcription,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToAdminMeetingResponse("Transcript injected successfully", m))
}
