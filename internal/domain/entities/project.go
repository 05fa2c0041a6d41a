package entities

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Project is the locally cached copy of a project brief from the project-data service
type Project struct {
	ID               uint           `gorm:"primaryKey" json:"-"`
	ProjectID        string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"project_id"`
	Requirements     *string        `gorm:"type:text" json:"requirements"`
	Questions        *string        `gorm:"type:text" json:"questions"`
	ValidationReport datatypes.JSON `json:"validation_report,omitempty"`
	LastUpdated      time.Time      `json:"last_updated"`
	CreatedAt        time.Time      `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// HasRequirements reports whether there is any requirements text to validate
func (p *Project) HasRequirements() bool {
	return p.Requirements != nil && *p.Requirements != ""
}

// IsFresh reports whether the row was refreshed within ttl of now
func (p *Project) IsFresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.LastUpdated) < ttl
}

// Report decodes the stored validation report, returning nil when none is stored
func (p *Project) Report() (ValidationReport, error) {
	if len(p.ValidationReport) == 0 {
		return nil, nil
	}
	var report ValidationReport
	if err := json.Unmarshal(p.ValidationReport, &report); err != nil {
		return nil, err
	}
	return report, nil
}

// SetReport stores report and stamps LastUpdated
func (p *Project) SetReport(report ValidationReport, now time.Time) error {
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	p.ValidationReport = datatypes.JSON(b)
	p.LastUpdated = now
	return nil
}

// SetMarker stores an error marker report without touching LastUpdated
func (p *Project) SetMarker(report ValidationReport) error {
	b, err := json.Marshal(report)
	if err != nil {
		return err
	}
	p.ValidationReport = datatypes.JSON(b)
	return nil
}

// ProjectBrief is the requirements/questions pair served by the project-data service
type ProjectBrief struct {
	ProjectID    string
	Requirements *string
	Questions    *string
}
