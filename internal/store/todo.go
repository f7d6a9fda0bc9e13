package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/todoapp/apiserver/types"
)

// TodoRepository handles persistence for todos.
type TodoRepository struct {
	db *sql.DB
}

func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

const todoColumns = `id, title, description, priority, complete, owner_id, created_at, updated_at`

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID int) ([]types.Todo, error) {
	const query = `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE owner_id = $1
		ORDER BY id`
	return r.list(ctx, query, ownerID)
}

// ListAll returns every todo regardless of owner. Only the administrative
// surface reaches this.
func (r *TodoRepository) ListAll(ctx context.Context) ([]types.Todo, error) {
	const query = `
		SELECT ` + todoColumns + `
		FROM todos
		ORDER BY id`
	return r.list(ctx, query)
}

func (r *TodoRepository) list(ctx context.Context, query string, args ...any) ([]types.Todo, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := make([]types.Todo, 0)
	for rows.Next() {
		var todo types.Todo
		if err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Priority,
			&todo.Complete,
			&todo.OwnerID,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

func (r *TodoRepository) Get(ctx context.Context, id int) (types.Todo, error) {
	const query = `
		SELECT ` + todoColumns + `
		FROM todos
		WHERE id = $1`
	var todo types.Todo
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Description,
		&todo.Priority,
		&todo.Complete,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Todo{}, ErrNotFound
		}
		return types.Todo{}, err
	}
	return todo, nil
}

func (r *TodoRepository) Create(ctx context.Context, todo types.Todo) (types.Todo, error) {
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now

	const query = `
		INSERT INTO todos (title, description, priority, complete, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.OwnerID,
		todo.CreatedAt,
		todo.UpdatedAt,
	).Scan(&todo.ID); err != nil {
		return types.Todo{}, err
	}
	return todo, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo types.Todo) (types.Todo, error) {
	todo.UpdatedAt = time.Now()

	const query = `
		UPDATE todos
		SET title = $1,
			description = $2,
			priority = $3,
			complete = $4,
			updated_at = $5
		WHERE id = $6`
	result, err := r.db.ExecContext(
		ctx,
		query,
		todo.Title,
		todo.Description,
		todo.Priority,
		todo.Complete,
		todo.UpdatedAt,
		todo.ID,
	)
	if err != nil {
		return types.Todo{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return types.Todo{}, err
	}
	if affected == 0 {
		return types.Todo{}, ErrNotFound
	}
	return todo, nil
}

func (r *TodoRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM todos WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
