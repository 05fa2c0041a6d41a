// Package server assembles the Echo instance and its middleware stack.
package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpmw "github.com/johnquangdev/fireflies-bridge/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
	pkgvalidator "github.com/johnquangdev/fireflies-bridge/pkg/validator"
)

// New creates an Echo instance with request IDs, request logging, panic recovery and CORS
func New(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(httpmw.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Hub-Signature"},
	}))

	return e
}
