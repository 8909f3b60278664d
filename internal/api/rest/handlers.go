package rest

import (
	"encoding/json"
	"net/http"

	"github.com/fortuna/courtside/internal/store"
	"github.com/fortuna/courtside/internal/store/repository"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db     *store.Database
	ingest *repository.IngestRepository
}

// NewHandler creates a new handler
func NewHandler(db *store.Database) *Handler {
	return &Handler{
		db:     db,
		ingest: repository.NewIngestRepository(db),
	}
}

// HealthCheck reports service and database health.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.db.HealthCheck(); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unreachable", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "courtside",
	})
}

// GetStats returns aggregate counts of everything stored.
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	totals, err := h.ingest.Stats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to aggregate stats", err)
		return
	}

	respondJSON(w, http.StatusOK, totals)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
