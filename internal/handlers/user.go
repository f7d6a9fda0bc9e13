package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/todoapp/apiserver/internal/auth"
	"github.com/todoapp/apiserver/internal/services"
	"github.com/todoapp/apiserver/internal/store"
)

// UserHandler provides profile endpoints for the authenticated user.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler constructs a handler with the provided service.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UserRouter registers profile routes on the given router. Every route
// requires an authenticated identity and operates only on the caller's row.
func UserRouter(r chi.Router, userService *services.UserService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewUserHandler(userService)

	r.Use(authMiddleware)
	r.Get("/", handler.GetProfile)
	r.Put("/password", handler.ChangePassword)
	r.Put("/phone_number/{phoneNumber}", handler.ChangePhoneNumber)
}

// ChangePasswordRequest carries the current and replacement passwords.
type ChangePasswordRequest struct {
	Password    string `json:"password"`
	NewPassword string `json:"new_password"`
}

func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.userService.GetByID(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ChangePassword re-verifies the current password before storing a new hash.
// A failed verification leaves the stored hash untouched.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Password == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, "missing required fields")
		return
	}

	if err := h.userService.ChangePassword(r.Context(), identity.UserID, req.Password, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "error on password change")
		case errors.Is(err, auth.ErrPasswordTooShort):
			writeError(w, http.StatusBadRequest, "password too short")
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusUnauthorized, "unauthorized")
		default:
			writeError(w, http.StatusInternalServerError, "failed to change password")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) ChangePhoneNumber(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	phoneNumber := strings.TrimSpace(chi.URLParam(r, "phoneNumber"))
	if phoneNumber == "" {
		writeError(w, http.StatusBadRequest, "phone number is required")
		return
	}

	if err := h.userService.ChangePhoneNumber(r.Context(), identity.UserID, phoneNumber); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to change phone number")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
