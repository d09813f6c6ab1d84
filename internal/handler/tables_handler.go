package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{
		"name":        "Women Empowerment Hub",
		"description": "Empowering women through technology, education, and community",
	}, http.StatusOK)
}

type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Assistant string `json:"assistant"`
	Model     string `json:"model,omitempty"`
}

// HealthHandler always answers 200 while the process is serving; the body
// tells which dependencies are reachable.
func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "ok", Database: "up", Assistant: h.Assistant.Mode(), Model: h.Assistant.Model()}

	if err := h.TablesService.Ping(r.Context()); err != nil {
		h.Logger.Warn("health: database ping failed", zap.Error(err))
		resp.Database = "down"
	}

	writeSuccess(w, resp, http.StatusOK)
}

func (h *Handlers) TablesHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.TablesService.Summary(r.Context())
	if err != nil {
		h.Logger.Warn("list tables failed", zap.Error(err))
		WriteError(w, "Database is not reachable", http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, report, http.StatusOK)
}
