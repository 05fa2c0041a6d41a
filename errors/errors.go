package errors

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// AppError is the application error type returned by usecases and rendered by handlers
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrInvalidArgument(message string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_ARGUMENT,
		Message:  message,
	}
}

func ErrNotFound(resource string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_NOT_FOUND,
		Message:  fmt.Sprintf("%s not found", resource),
	}
}

func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid JSON body",
	}
}

func ErrMissingField(field string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_FIELD,
		Message:  fmt.Sprintf("Missing required field: %s", field),
	}.WithDetail("field", field)
}

func ErrPayloadTooLarge(limit int64) AppError {
	return AppError{
		HTTPCode: http.StatusRequestEntityTooLarge,
		Code:     ErrorCode_PAYLOAD_TOO_LARGE,
		Message:  "Request body too large",
	}.WithDetail("limit_bytes", strconv.FormatInt(limit, 10))
}

// Webhook Errors
func ErrInvalidSignature() AppError {
	return AppError{
		HTTPCode: http.StatusForbidden,
		Code:     ErrorCode_WEBHOOK_INVALID_SIGNATURE,
		Message:  "Invalid signature",
	}
}

// Meeting Errors
func ErrMeetingNotFound(identifier string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NOT_FOUND,
		Message:  "Meeting not found",
	}.WithDetail("meeting", identifier)
}

// ErrNoPendingMeeting reports a known meeting URL whose meetings all hold a transcript already
func ErrNoPendingMeeting(meetingURL string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_MEETING_NO_PENDING,
		Message:  "No pending meeting for URL",
	}.WithDetail("meeting_url", meetingURL)
}

func ErrInvalidMeetingURL(url string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MEETING_INVALID_URL,
		Message:  "Invalid Google Meet URL",
	}.WithDetail("meeting_url", url)
}

func ErrBotInviteFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MEETING_BOT_INVITE,
		Message:  "Failed to add Fireflies bot to the meeting",
	}
}

func ErrTranscriptNotFound(transcriptID string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_TRANSCRIPT_NOT_FOUND,
		Message:  "Failed to retrieve transcript",
	}.WithDetail("meeting_id", transcriptID)
}

// Project Errors
func ErrProjectNotFound(projectID string) AppError {
	return AppError{
		HTTPCode: http.StatusNotFound,
		Code:     ErrorCode_PROJECT_NOT_FOUND,
		Message:  "Failed to retrieve project data",
	}.WithDetail("project_id", projectID)
}

func ErrProjectNoRequirements(projectID string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_PROJECT_NO_REQUIREMENTS,
		Message:  "Project has no requirements to validate",
	}.WithDetail("project_id", projectID)
}

// Brief Validation Errors
func ErrValidationDisabled() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION_DISABLED,
		Message:  "Project brief validation is disabled",
	}
}

func ErrNotConfigured(setting string) AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_VALIDATION_NOT_CONFIGURED,
		Message:  fmt.Sprintf("%s is not configured", setting),
	}
}

func ErrValidationParseFailed(raw string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_VALIDATION_PARSE_FAILED,
		Message:  "Failed to parse validation results",
	}.WithDetail("raw_response", raw)
}

func ErrValidationQuotaExceeded(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_VALIDATION_QUOTA_EXCEEDED,
		Message:  "Completion API quota exceeded",
	}
}

func ErrValidationRejected(reason string) AppError {
	return AppError{
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_VALIDATION_UPSTREAM_FAILED,
		Message:  "Validation returned an error",
	}.WithDetail("reason", reason)
}

// Integration Errors
func ErrExternalAPIFailed(service string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTEGRATION_EXTERNAL_API_FAILED,
		Message:  fmt.Sprintf("External API call failed: %s", service),
	}
}

func ErrDBQueryFailed(query string, err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_DB_QUERY_FAILED,
		Message:  "Database query failed",
	}.WithDetail("query", query)
}
