package presenter

import (
	stdErrors "errors"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/dto/project"
	"github.com/johnquangdev/fireflies-bridge/internal/usecase/brief"
	projectuc "github.com/johnquangdev/fireflies-bridge/internal/usecase/project"
)

// ToProjectResponse converts a ProjectView to ProjectResponse DTO.
// An unreadable stored report is omitted.
func ToProjectResponse(view *projectuc.ProjectView) *project.ProjectResponse {
	if view == nil || view.Project == nil {
		return nil
	}
	p := view.Project
	report, _ := p.Report()

	return &project.ProjectResponse{
		ProjectID:        p.ProjectID,
		Requirements:     p.Requirements,
		Questions:        p.Questions,
		ValidationReport: report,
		LastUpdated:      p.LastUpdated,
		CreatedAt:        p.CreatedAt,
		Source:           string(view.Source),
	}
}

// ToValidationResponse converts a ValidationResult to ValidationResponse DTO
func ToValidationResponse(res *brief.ValidationResult) *project.ValidationResponse {
	if res == nil {
		return nil
	}
	return &project.ValidationResponse{
		ProjectID:        res.ProjectID,
		ValidationReport: res.Report,
		Cached:           res.Cached,
		ValidatedAt:      res.ValidatedAt,
	}
}

// ToValidationError describes a failed inline validation without exposing internal causes
func ToValidationError(err error) *project.ValidationError {
	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = errors.ErrInternal(err)
	}
	return &project.ValidationError{
		Error:   appErr.Message,
		Code:    appErr.Code.String(),
		Details: appErr.Details,
	}
}
