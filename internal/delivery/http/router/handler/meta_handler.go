package handler

import (
	"net/http"
	"time"

	"munch/config"
	"munch/internal/delivery/http/response"
	"munch/internal/util"

	"github.com/labstack/echo/v4"
)

// serviceVersion is reported by the about endpoint.
const serviceVersion = "0.1.0"

// MetaHandler serves the liveness and metadata endpoints.
type MetaHandler struct {
	cfg       *config.Config
	startedAt time.Time
}

// NewMetaHandler is the constructor for MetaHandler, injected by Fx.
func NewMetaHandler(cfg *config.Config) *MetaHandler {
	return &MetaHandler{
		cfg:       cfg,
		startedAt: time.Now(),
	}
}

// Status is a simple handler to check if the service is up.
func (h *MetaHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// About reports service metadata.
func (h *MetaHandler) About(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"service": h.cfg.Env.ServiceName,
		"env":     h.cfg.Env.Env,
		"version": serviceVersion,
		"uptime":  util.FormatDuration(time.Since(h.startedAt)),
	}, "Service metadata")
}
