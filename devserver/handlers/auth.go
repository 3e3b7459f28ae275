// ABOUTME: Auth handlers for the single admin account
// ABOUTME: Provisioning status, one-time registration, and password login

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/middleware"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/models"
	"github.com/osamaqaseem39/strikersgear-dashboard/devserver/store"
	"golang.org/x/crypto/bcrypt"
)

// AuthStatus reports whether the admin account exists
func (h *Handler) AuthStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, models.AuthStatusResponse{
		HasAdmin: h.store.Count(models.AdminsCollection) > 0,
	})
}

// Register creates the admin account. It succeeds at most once.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if len(req.Password) < models.MinPasswordLength {
		h.writeError(w, "Password must be at least 6 characters", http.StatusBadRequest)
		return
	}
	if h.store.Count(models.AdminsCollection) > 0 {
		h.writeError(w, "Admin already exists", http.StatusConflict)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("Failed to hash password", "error", err)
		h.writeError(w, "Failed to create admin", http.StatusInternalServerError)
		return
	}

	if _, ok := h.store.InsertIfEmpty(models.AdminsCollection, store.Document{"passwordHash": string(hash)}); !ok {
		h.writeError(w, "Admin already exists", http.StatusConflict)
		return
	}
	slog.Info("Admin account created")

	h.issueToken(w)
}

// Login checks the admin password and returns a fresh token
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if req.Password == "" {
		h.writeError(w, "Password is required", http.StatusBadRequest)
		return
	}

	admin, ok := h.store.FindOne(models.AdminsCollection, func(store.Document) bool { return true })
	if !ok {
		h.writeError(w, "Admin account has not been created", http.StatusNotFound)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.String("passwordHash")), []byte(req.Password)); err != nil {
		slog.Warn("Login failed", "client", middleware.ClientIP(r))
		h.writeError(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	h.issueToken(w)
}

func (h *Handler) issueToken(w http.ResponseWriter) {
	token, err := h.tokens.Issue(middleware.AdminSubject)
	if err != nil {
		slog.Error("Failed to issue token", "error", err)
		h.writeError(w, "Failed to issue token", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, models.AuthResponse{Success: true, Token: token})
}
