package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/fireflies-bridge/errors"
	"github.com/johnquangdev/fireflies-bridge/internal/adapter/presenter"
	briefUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/brief"
	projectUsecase "github.com/johnquangdev/fireflies-bridge/internal/usecase/project"
)

// Project handles project-related HTTP requests
type Project struct {
	projectService   projectUsecase.Service
	validatorService briefUsecase.Service
	logger           *zap.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService projectUsecase.Service, validatorService briefUsecase.Service, logger *zap.Logger) *Project {
	return &Project{
		projectService:   projectService,
		validatorService: validatorService,
		logger:           logger,
	}
}

// GetProject handles GET /projects/:id
// @Summary      Get cached project data
// @Description  Serves the cached project brief, refreshing it hourly. validate=true adds a brief validation.
// @Tags         Projects
// @Produce      json
// @Param        id        path      string  true   "Project ID"
// @Param        validate  query     bool    false  "Include a brief validation"
// @Success      200  {object}  project.ProjectResponse
// @Failure      404  {object}  map[string]interface{}  "Project not found"
// @Router       /projects/{id} [get]
func (h *Project) GetProject(c echo.Context) error {
	ctx := c.Request().Context()
	projectID := c.Param("id")

	validate, err := parseBoolQuery(c, "validate")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	view, err := h.projectService.GetProjectData(ctx, projectID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	resp := presenter.ToProjectResponse(view)

	if validate {
		result, err := h.validatorService.Validate(ctx, projectID, false)
		if err != nil {
			h.logger.Warn("Inline brief validation failed",
				zap.String("project_id", projectID),
				zap.Error(err),
			)
			resp.ValidationError = presenter.ToValidationError(err)
		} else {
			resp.Validation = presenter.ToValidationResponse(result)
			resp.ValidationReport = result.Report
		}
	}

	return HandleSuccess(h.logger, c, http.StatusOK, resp)
}

// ValidateProject handles POST /projects/:id/validate
// @Summary      Validate a project brief
// @Description  Forces a new validation of the stored brief against the reference template
// @Tags         Projects
// @Produce      json
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  project.ValidationResponse
// @Failure      400  {object}  map[string]interface{}  "Validation disabled, not configured or no requirements"
// @Failure      404  {object}  map[string]interface{}  "Project not found"
// @Failure      500  {object}  map[string]interface{}  "Completion failed"
// @Router       /projects/{id}/validate [post]
func (h *Project) ValidateProject(c echo.Context) error {
	result, err := h.validatorService.Validate(c.Request().Context(), c.Param("id"), true)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, http.StatusOK, presenter.ToValidationResponse(result))
}

func parseBoolQuery(c echo.Context, name string) (bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, errors.ErrInvalidArgument("Invalid value for query parameter: " + name)
	}
	return v, nil
}
