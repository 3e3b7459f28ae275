// ABOUTME: JSON error response helper for middleware
// ABOUTME: Writes the same {"message": ...} body the handlers use

package middleware

import (
	"encoding/json"
	"net/http"
)

// WriteJSONError writes an error response as JSON with the given status code
func WriteJSONError(w http.ResponseWriter, message string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(struct {
		Message string `json:"message"`
	}{
		Message: message,
	})
}
