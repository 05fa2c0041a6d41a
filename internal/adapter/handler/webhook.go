package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/dto/meeting"
	meetingUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/meeting"
	"github.com/johnquangdev/fireflies-bridge/pkg/ai"
)

// EventTranscriptionCompleted is the only Fireflies event that carries work
const EventTranscriptionCompleted = "Transcription completed"

// maxWebhookBody bounds the payload read before signature verification
const maxWebhookBody int64 = 1 << 20

// SignatureVerifier checks the signature of a raw webhook body
type SignatureVerifier interface {
	Verify(payload []byte, signature string) bool
}

// WebhookHandler handles Fireflies webhook events
type WebhookHandler struct {
	meetingService meetingUsecase.Service
	verifier       SignatureVerifier
	logger         *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(meetingService meetingUsecase.Service, verifier SignatureVerifier, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		meetingService: meetingService,
		verifier:       verifier,
		logger:         logger,
	}
}

// HandleFirefliesWebhook handles POST /webhook
// @Summary      Fireflies webhook
// @Description  Receives transcription events signed with X-Hub-Signature (hex HMAC-SHA256 of the body)
// @Tags         Webhooks
// @Accept       json
// @Produce      plain
// @Success      200  {string}  string  "OK"
// @Failure      400  {object}  map[string]interface{}  "Malformed payload"
// @Failure      403  {object}  map[string]interface{}  "Invalid signature"
// @Failure      413  {object}  map[string]interface{}  "Body over 1 MiB"
// @Failure      404  {object}  map[string]interface{}  "Transcript or meeting not found"
// @Router       /webhook [post]
func (h *WebhookHandler) HandleFirefliesWebhook(c echo.Context) error {
	// One extra byte tells an oversized body apart from one exactly at the limit
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody+1))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if int64(len(body)) > maxWebhookBody {
		return HandleError(h.logger, c, errors.ErrPayloadTooLarge(maxWebhookBody))
	}

	if !h.verifier.Verify(body, c.Request().Header.Get(ai.SignatureHeader)) {
		return HandleError(h.logger, c, errors.ErrInvalidSignature())
	}

	var event *meeting.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil || event == nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	h.logger.Info("Received webhook event",
		zap.String("request_id", getRequestID(c)),
		zap.String("event_type", event.EventType),
	)

	if event.EventType != EventTranscriptionCompleted {
		return c.String(http.StatusOK, "OK")
	}
	if event.MeetingID == "" {
		return HandleError(h.logger, c, errors.ErrMissingField("meetingId"))
	}

	if _, err := h.meetingService.HandleTranscriptionCompleted(c.Request().Context(), event.MeetingID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return c.String(http.StatusOK, "OK")
}
