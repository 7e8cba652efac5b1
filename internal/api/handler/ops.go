package handler

import (
	"net/http"

	"github.com/reiseplaner/reiseplaner/internal/api/models"
	"github.com/reiseplaner/reiseplaner/internal/api/response"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
	}
}

// HealthCheck handles GET /health - liveness check.
// The body is the fixed {"status":"ok"} wire contract.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{Status: models.HealthStatusOK})
}

// ReadinessCheck handles GET /ready - readiness check. The service has no
// external dependencies, so readiness equals liveness.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.Health{Status: models.HealthStatusOK})
}

// Version handles GET /version - build identification.
func (h *OpsHandler) Version(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, models.VersionInfo{
		Version:   h.version,
		BuildTime: h.buildTime,
	})
}
