package services

import (
	"context"

	"github.com/todoapp/apiserver/internal/auth"
	"github.com/todoapp/apiserver/types"
)

// TodoRepository defines persistence operations for todos.
type TodoRepository interface {
	ListByOwner(ctx context.Context, ownerID int) ([]types.Todo, error)
	ListAll(ctx context.Context) ([]types.Todo, error)
	Get(ctx context.Context, id int) (types.Todo, error)
	Create(ctx context.Context, todo types.Todo) (types.Todo, error)
	Update(ctx context.Context, todo types.Todo) (types.Todo, error)
	Delete(ctx context.Context, id int) error
}

// TodoService encapsulates todo use-cases. Every operation takes the caller's
// identity and applies the ownership policy before touching the store:
// ordinary operations require the todo's owner to match the identity, and the
// administrative operations require the admin role and skip the owner check.
type TodoService struct {
	repo TodoRepository
}

func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// List returns the caller's own todos.
func (s *TodoService) List(ctx context.Context, identity auth.Identity) ([]types.Todo, error) {
	return s.repo.ListByOwner(ctx, identity.UserID)
}

// ListAll returns every todo in the system. Admin only.
func (s *TodoService) ListAll(ctx context.Context, identity auth.Identity) ([]types.Todo, error) {
	if !identity.IsAdmin() {
		return nil, auth.ErrDenied
	}
	return s.repo.ListAll(ctx)
}

// Get returns a single todo if the caller owns it or is an admin.
func (s *TodoService) Get(ctx context.Context, identity auth.Identity, id int) (types.Todo, error) {
	todo, err := s.repo.Get(ctx, id)
	if err != nil {
		return types.Todo{}, err
	}
	if todo.OwnerID != identity.UserID && !identity.IsAdmin() {
		return types.Todo{}, auth.ErrDenied
	}
	return todo, nil
}

// Create stores a new todo owned by the caller. The owner id always comes
// from the identity, never from the request payload.
func (s *TodoService) Create(ctx context.Context, identity auth.Identity, todo types.Todo) (types.Todo, error) {
	todo.OwnerID = identity.UserID
	return s.repo.Create(ctx, todo)
}

// Update replaces a todo's fields. Owner only.
func (s *TodoService) Update(ctx context.Context, identity auth.Identity, todo types.Todo) (types.Todo, error) {
	current, err := s.repo.Get(ctx, todo.ID)
	if err != nil {
		return types.Todo{}, err
	}
	if current.OwnerID != identity.UserID {
		return types.Todo{}, auth.ErrDenied
	}
	todo.OwnerID = current.OwnerID
	todo.CreatedAt = current.CreatedAt
	return s.repo.Update(ctx, todo)
}

// Delete removes a todo. Owner only.
func (s *TodoService) Delete(ctx context.Context, identity auth.Identity, id int) error {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if current.OwnerID != identity.UserID {
		return auth.ErrDenied
	}
	return s.repo.Delete(ctx, id)
}

// DeleteAny removes any todo regardless of owner. Admin only.
func (s *TodoService) DeleteAny(ctx context.Context, identity auth.Identity, id int) error {
	if !identity.IsAdmin() {
		return auth.ErrDenied
	}
	return s.repo.Delete(ctx, id)
}
