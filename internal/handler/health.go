package handler

import (
	"net/http"
	"time"
)

type HealthHandler struct {
	version     string
	environment string
	startTime   time.Time
}

func NewHealthHandler(version, environment string) *HealthHandler {
	return &HealthHandler{
		version:     version,
		environment: environment,
		startTime:   time.Now(),
	}
}

type HealthResponse struct {
	Status        string `json:"status"`
	Version       string `json:"version"`
	Environment   string `json:"environment"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Version:       h.version,
		Environment:   h.environment,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	})
}
