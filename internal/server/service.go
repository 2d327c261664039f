package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/database"
	"go.uber.org/zap"
)

type ResultsService struct {
	DBManager database.DBManager
	logger    *zap.Logger
}

func NewResultsService(dbManager database.DBManager, logger *zap.Logger) *ResultsService {
	return &ResultsService{DBManager: dbManager, logger: logger}
}

func (h *ResultsService) GetVersionSummary(w http.ResponseWriter, r *http.Request) {
	version := r.PathValue("version")
	if version == "" {
		http.Error(w, "Version is required in the URL path /results/{version}", http.StatusBadRequest)
		return
	}

	summary, err := h.DBManager.GetVersionSummary(version)
	if errors.Is(err, database.ErrVersionNotFound) {
		http.Error(w, "No results archived for version "+version, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("Failed to retrieve version summary", zap.String("version", version), zap.Error(err))
		http.Error(w, "Failed to retrieve version summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
