package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/todoapp/apiserver/internal/services"
	"github.com/todoapp/apiserver/types"
)

// TodoHandler provides HTTP handlers for owner-scoped todo operations.
type TodoHandler struct {
	todoService *services.TodoService
}

// NewTodoHandler constructs a handler with the provided service.
func NewTodoHandler(todoService *services.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

// TodoRouter registers todo routes on the given router. Every route requires
// an authenticated identity.
func TodoRouter(r chi.Router, todoService *services.TodoService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewTodoHandler(todoService)

	r.Use(authMiddleware)
	r.Get("/", handler.ListTodos)
	r.Post("/", handler.CreateTodo)
	r.Route("/{todoID}", func(r chi.Router) {
		r.Get("/", handler.GetTodo)
		r.Put("/", handler.UpdateTodo)
		r.Delete("/", handler.DeleteTodo)
	})
}

// TodoUpsertRequest is the JSON payload for creating or updating a todo.
type TodoUpsertRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}

func (req *TodoUpsertRequest) validate() error {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if len(req.Title) < 3 {
		return errors.New("title must be at least 3 characters")
	}
	if len(req.Description) < 3 || len(req.Description) > 100 {
		return errors.New("description must be between 3 and 100 characters")
	}
	if req.Priority < types.MinPriority || req.Priority > types.MaxPriority {
		return errors.New("priority must be between 1 and 5")
	}
	return nil
}

func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	todos, err := h.todoService.List(r.Context(), identity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list todos")
		return
	}

	writeJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
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

	todo, err := h.todoService.Get(r.Context(), identity, id)
	if err != nil {
		writeAccessError(w, err, "todo not found")
		return
	}

	writeJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFromRequest(r)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req TodoUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.todoService.Create(r.Context(), identity, types.Todo{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create todo")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
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

	var req TodoUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.todoService.Update(r.Context(), identity, types.Todo{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Complete:    req.Complete,
	})
	if err != nil {
		writeAccessError(w, err, "todo not found")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
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

	if err := h.todoService.Delete(r.Context(), identity, id); err != nil {
		writeAccessError(w, err, "todo not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
