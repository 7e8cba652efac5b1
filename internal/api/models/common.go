package models

// HealthStatus reported by the liveness and readiness endpoints.
const HealthStatusOK = "ok"

// Health is the body of GET /health and GET /ready.
type Health struct {
	Status string `json:"status"`
}

// VersionInfo is the body of GET /version.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
}
