package entities

import "time"

// ValidationReport is the structured output of a brief validation call
type ValidationReport map[string]interface{}

// QuotaExceededMarker is stored in the "error" key when the completion API ran out of quota
const QuotaExceededMarker = "quota_exceeded"

// ErrorMarker returns the report's "error" entry, if any
func (r ValidationReport) ErrorMarker() (string, bool) {
	if r == nil {
		return "", false
	}
	v, ok := r["error"]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "error", true
	}
	return s, true
}

// IsQuotaExceeded reports whether the report records an exhausted completion quota
func (r ValidationReport) IsQuotaExceeded() bool {
	marker, ok := r.ErrorMarker()
	return ok && marker == QuotaExceededMarker
}

// NewQuotaExceededReport builds the marker report persisted after a quota failure.
// The marker carries its own timestamp so storing it leaves the project's last_updated alone.
func NewQuotaExceededReport(message string, recordedAt time.Time) ValidationReport {
	return ValidationReport{
		"error":       QuotaExceededMarker,
		"message":     message,
		"recorded_at": recordedAt.UTC().Format(time.RFC3339),
	}
}

// RecordedAt returns the timestamp stored in a marker report
func (r ValidationReport) RecordedAt() (time.Time, bool) {
	raw, ok := r["recorded_at"].(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// IsSuccessful reports whether r is a real validation result rather than an error marker
func (r ValidationReport) IsSuccessful() bool {
	if r == nil {
		return false
	}
	_, failed := r.ErrorMarker()
	return !failed
}
