package types

import "time"

// Priority bounds for a todo item.
const (
	MinPriority = 1
	MaxPriority = 5
)

// Todo represents a single task owned by a user.
type Todo struct {
	// ID is the unique identifier of the todo.
	ID int `json:"id" db:"id"`

	// Title is the short human-readable name of the task.
	Title string `json:"title" db:"title"`

	// Description contains the full text of the task.
	Description string `json:"description" db:"description"`

	// Priority indicates the relative importance of the task,
	// bounded to [MinPriority, MaxPriority].
	Priority int `json:"priority" db:"priority"`

	// Complete reports whether the task has been finished.
	Complete bool `json:"complete" db:"complete"`

	// OwnerID is the identifier of the user who owns this todo.
	// Every access to the todo is gated on it, except for admins.
	OwnerID int `json:"owner_id" db:"owner_id"`

	// CreatedAt is the timestamp at which the todo was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the todo.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
