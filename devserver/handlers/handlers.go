// ABOUTME: HTTP handlers for the development catalog API
// ABOUTME: Holds shared dependencies and the JSON request/response helpers

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/config"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/middleware"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/models"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/store"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

type Handler struct {
	cfg         *config.Config
	store       *store.Store
	tokens      *middleware.Tokens
	authLimiter *middleware.RateLimiter
}

func NewHandler(cfg *config.Config, st *store.Store) *Handler {
	h := &Handler{
		cfg:   cfg,
		store: st,
	}

	if cfg != nil {
		h.tokens = middleware.NewTokens(cfg.JWTSecret, cfg.TokenTTL)
		h.authLimiter = middleware.NewRateLimiter(cfg.RateLimitAuth, time.Minute)
	}

	return h
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	h.writeJSON(w, code, models.ErrorResponse{Message: message})
}

// decodeBody reads a JSON request body into v. An empty body is an error.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			h.writeError(w, "Request body too large", http.StatusRequestEntityTooLarge)
		case errors.Is(err, io.EOF):
			h.writeError(w, "Request body is required", http.StatusBadRequest)
		default:
			h.writeError(w, "Invalid request body", http.StatusBadRequest)
		}
		return false
	}
	return true
}

// validationFailed writes a 400 joining every message, or reports false
// when there are none
func (h *Handler) validationFailed(w http.ResponseWriter, msgs []string) bool {
	if len(msgs) == 0 {
		return false
	}
	h.writeError(w, strings.Join(msgs, "; "), http.StatusBadRequest)
	return true
}
