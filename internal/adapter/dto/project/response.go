package project

import "time"

// ProjectResponse represents cached project data
type ProjectResponse struct {
	ProjectID        string                 `json:"project_id"`
	Requirements     *string                `json:"requirements"`
	Questions        *string                `json:"questions"`
	ValidationReport map[string]interface{} `json:"validation_report,omitempty"`
	LastUpdated      time.Time              `json:"last_updated"`
	CreatedAt        time.Time              `json:"created_at"`
	Source           string                 `json:"source"`
	Validation       *ValidationResponse    `json:"validation,omitempty"`
	ValidationError  *ValidationError       `json:"validation_error,omitempty"`
}

// ValidationResponse represents a brief validation result
type ValidationResponse struct {
	ProjectID        string                 `json:"project_id"`
	ValidationReport map[string]interface{} `json:"validation_report"`
	Cached           bool                   `json:"cached"`
	ValidatedAt      time.Time              `json:"validated_at"`
}

// ValidationError describes why an inline validation did not produce a report
type ValidationError struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}
