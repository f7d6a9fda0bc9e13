package auth

import (
	"context"
	"errors"

	"github.com/todoapp/apiserver/internal/store"
	"github.com/todoapp/apiserver/types"
)

// UserStore is the read-only user lookup the authenticator depends on.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
}

// Authenticator validates login credentials and mints session tokens.
// It mutates no state on failure.
type Authenticator struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

// NewAuthenticator constructs an Authenticator with the provided dependencies.
func NewAuthenticator(users UserStore, hasher *PasswordHasher, tokens *TokenService) *Authenticator {
	return &Authenticator{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Login verifies the credentials against the user store and returns a signed
// session token. Unknown users, inactive accounts, wrong passwords, and
// unparseable stored roles all return ErrInvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !user.IsActive {
		return "", ErrInvalidCredentials
	}
	if !a.hasher.Verify(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	role, err := ParseRole(user.Role)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return a.tokens.Issue(user.ID, user.Username, role)
}
