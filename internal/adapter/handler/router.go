package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

// ServiceName is reported by the health check
const ServiceName = "fireflies-bridge"

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
	webhookHandler *WebhookHandler
	projectHandler *Project
	adminHandler   *Admin
}

// NewRouter creates a new router with all handlers. adminHandler may be nil.
func NewRouter(cfg *config.Config, meetingHandler *Meeting, webhookHandler *WebhookHandler, projectHandler *Project, adminHandler *Admin) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
		webhookHandler: webhookHandler,
		projectHandler: projectHandler,
		adminHandler:   adminHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	e.POST("/webhook", rt.webhookHandler.HandleFirefliesWebhook)

	meetings := e.Group("/meetings")
	meetings.POST("", rt.meetingHandler.CreateMeeting)
	meetings.GET("/:id", rt.meetingHandler.GetMeeting)

	projects := e.Group("/projects")
	projects.GET("/:id", rt.projectHandler.GetProject)
	projects.GET("/:id/meetings", rt.meetingHandler.ListProjectMeetings)
	projects.POST("/:id/validate", rt.projectHandler.ValidateProject)

	if rt.adminHandler != nil && rt.cfg.IsDevelopment() {
		rt.setupTestUtilRoutes(e.Group("/test-utils"))
	}
}

// setupTestUtilRoutes configures development-only routes that mutate data directly
func (rt *Router) setupTestUtilRoutes(g *echo.Group) {
	g.POST("/reset-db", rt.adminHandler.ResetDB)
	g.PUT("/meetings/:id", rt.adminHandler.UpdateMeeting)
	g.POST("/inject-transcript", rt.adminHandler.InjectTranscript)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"service":     ServiceName,
		"environment": rt.cfg.Server.Environment,
	})
}
