package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
)

// errs is the body of every error response
type errs struct {
	Error       string            `json:"error"`
	Code        string            `json:"code"`
	Details     map[string]string `json:"details,omitempty"`
	RawResponse string            `json:"raw_response,omitempty"`
}

// getRequestID reads the request ID set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as JSON with the given status
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Debug("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}
	return c.JSON(status, data)
}

// HandleError centralizes error handling and logging.
// Server errors never expose their cause, except the raw model output of a failed validation parse.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Int("status", appErr.HTTPCode),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	body := errs{
		Error: appErr.Message,
		Code:  appErr.Code.String(),
	}
	switch {
	case appErr.Code == errors.ErrorCode_VALIDATION_PARSE_FAILED:
		body.RawResponse = appErr.Details["raw_response"]
	case appErr.HTTPCode < http.StatusInternalServerError:
		body.Details = appErr.Details
	}

	return c.JSON(appErr.HTTPCode, body)
}
