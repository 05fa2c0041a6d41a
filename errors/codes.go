package errors

// ErrorCode identifies the kind of failure carried by an AppError
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0
	ErrorCode_HTTP_OK     ErrorCode = 200

	// General
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_PERMISSION_DENIED ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1004
	ErrorCode_MISSING_FIELD     ErrorCode = 1005
	ErrorCode_PAYLOAD_TOO_LARGE ErrorCode = 1006

	// Webhook
	ErrorCode_WEBHOOK_INVALID_SIGNATURE ErrorCode = 2000

	// Meetings
	ErrorCode_MEETING_NOT_FOUND      ErrorCode = 3000
	ErrorCode_MEETING_INVALID_URL    ErrorCode = 3001
	ErrorCode_MEETING_BOT_INVITE     ErrorCode = 3002
	ErrorCode_TRANSCRIPT_NOT_FOUND   ErrorCode = 3003
	ErrorCode_TRANSCRIPT_UNAVAILABLE ErrorCode = 3004
	ErrorCode_MEETING_NO_PENDING     ErrorCode = 3005

	// Projects and brief validation
	ErrorCode_PROJECT_NOT_FOUND          ErrorCode = 4000
	ErrorCode_PROJECT_NO_REQUIREMENTS    ErrorCode = 4001
	ErrorCode_VALIDATION_DISABLED        ErrorCode = 4002
	ErrorCode_VALIDATION_NOT_CONFIGURED  ErrorCode = 4003
	ErrorCode_VALIDATION_PARSE_FAILED    ErrorCode = 4004
	ErrorCode_VALIDATION_QUOTA_EXCEEDED  ErrorCode = 4005
	ErrorCode_VALIDATION_UPSTREAM_FAILED ErrorCode = 4006

	// Integrations
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5000
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 5001
	ErrorCode_DB_QUERY_FAILED                 ErrorCode = 5002
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                     "UNSPECIFIED",
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_PERMISSION_DENIED:               "PERMISSION_DENIED",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_MISSING_FIELD:                   "MISSING_FIELD",
	ErrorCode_PAYLOAD_TOO_LARGE:               "PAYLOAD_TOO_LARGE",
	ErrorCode_WEBHOOK_INVALID_SIGNATURE:       "WEBHOOK_INVALID_SIGNATURE",
	ErrorCode_MEETING_NOT_FOUND:               "MEETING_NOT_FOUND",
	ErrorCode_MEETING_INVALID_URL:             "MEETING_INVALID_URL",
	ErrorCode_MEETING_BOT_INVITE:              "MEETING_BOT_INVITE",
	ErrorCode_TRANSCRIPT_NOT_FOUND:            "TRANSCRIPT_NOT_FOUND",
	ErrorCode_TRANSCRIPT_UNAVAILABLE:          "TRANSCRIPT_UNAVAILABLE",
	ErrorCode_MEETING_NO_PENDING:              "MEETING_NO_PENDING",
	ErrorCode_PROJECT_NOT_FOUND:               "PROJECT_NOT_FOUND",
	ErrorCode_PROJECT_NO_REQUIREMENTS:         "PROJECT_NO_REQUIREMENTS",
	ErrorCode_VALIDATION_DISABLED:             "VALIDATION_DISABLED",
	ErrorCode_VALIDATION_NOT_CONFIGURED:       "VALIDATION_NOT_CONFIGURED",
	ErrorCode_VALIDATION_PARSE_FAILED:         "VALIDATION_PARSE_FAILED",
	ErrorCode_VALIDATION_QUOTA_EXCEEDED:       "VALIDATION_QUOTA_EXCEEDED",
	ErrorCode_VALIDATION_UPSTREAM_FAILED:      "VALIDATION_UPSTREAM_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:        "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_QUERY_FAILED:                 "DB_QUERY_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
