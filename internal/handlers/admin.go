package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/todoapp/apiserver/internal/services"
)

// AdminHandler provides the administrative surface over todos. Admins can
// read and delete any row; the owner check is skipped entirely.
type AdminHandler struct {
	todoService *services.TodoService
}

// NewAdminHandler constructs a handler with the provided service.
func NewAdminHandler(todoService *services.TodoService) *AdminHandler {
	return &AdminHandler{todoService: todoService}
}

// AdminRouter registers admin routes on the given router. Routes require an
// authenticated identity with the admin role; the service layer enforces the
// same policy again on every call.
func AdminRouter(r chi.Router, todoService *services.TodoService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewAdminHandler(todoService)

	r.Use(authMiddleware, RequireAdmin)
	r.Get("/todos", handler.ListAllTodos)
	r.Delete("/todos/{todoID}", handler.DeleteAnyTodo)
}

func (h *AdminHandler) ListAllTodos(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	todos, err := h.todoService.ListAll(r.Context(), identity)
	if err != nil {
		writeAccessError(w, err, "todo not found")
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func (h *AdminHandler) DeleteAnyTodo(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := parseTodoID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.todoService.DeleteAny(r.Context(), identity, id); err != nil {
		writeAccessError(w, err, "todo not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
