package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todoapp/apiserver/types"
)

func setupUserRepository(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewUserRepository(db), mock
}

func userRows(user types.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "email", "first_name", "last_name", "phone_number",
		"role", "password_hash", "is_active", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Username, user.Email, user.FirstName, user.LastName,
		user.PhoneNumber, user.Role, user.PasswordHash, user.IsActive,
		user.CreatedAt, user.UpdatedAt,
	)
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo, mock := setupUserRepository(t)

	want := types.User{
		ID:           7,
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		Role:         "user",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username`).
		WithArgs("alice").
		WillReturnRows(userRows(want))

	got, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUsernameNotFound(t *testing.T) {
	repo, mock := setupUserRepository(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE username`).
		WithArgs("nouser").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "nouser")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock := setupUserRepository(t)

	want := types.User{ID: 7, Username: "alice", Role: "user"}
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id`).
		WithArgs(7).
		WillReturnRows(userRows(want))

	got, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	repo, mock := setupUserRepository(t)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs(
			"alice", "alice@example.com", "Alice", "Smith", "",
			"user", "$2a$10$hash", true, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	created, err := repo.Create(context.Background(), types.User{
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		LastName:     "Smith",
		Role:         "user",
		PasswordHash: "$2a$10$hash",
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	repo, mock := setupUserRepository(t)

	mock.ExpectExec(`UPDATE users SET password_hash`).
		WithArgs("$2a$10$newhash", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePassword(context.Background(), 7, "$2a$10$newhash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordNotFound(t *testing.T) {
	repo, mock := setupUserRepository(t)

	mock.ExpectExec(`UPDATE users SET password_hash`).
		WithArgs("$2a$10$newhash", sqlmock.AnyArg(), 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), 99, "$2a$10$newhash")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UpdatePhoneNumber(t *testing.T) {
	repo, mock := setupUserRepository(t)

	mock.ExpectExec(`UPDATE users SET phone_number`).
		WithArgs("555-0100", sqlmock.AnyArg(), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdatePhoneNumber(context.Background(), 7, "555-0100")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
