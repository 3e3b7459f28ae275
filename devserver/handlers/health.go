// ABOUTME: HTTP handler for the health endpoint
// ABOUTME: Reports liveness and how many documents each collection holds

package handlers

import (
	"net/http"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/models"
)

// Health returns API status with per-collection document counts.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	counts := make(map[string]int, len(models.Schemas)+1)
	for _, s := range models.Schemas {
		counts[s.Name] = h.store.Count(s.Name)
	}
	counts[models.SizeTypes] = h.store.Count(models.SizeTypes)

	h.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:      "ok",
		Collections: counts,
	})
}
