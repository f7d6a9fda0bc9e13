package services

import (
	"context"

	"github.com/todoapp/apiserver/internal/auth"
	"github.com/todoapp/apiserver/types"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (types.User, error)
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	UpdatePhoneNumber(ctx context.Context, id int, phoneNumber string) error
}

// UserService encapsulates user use-cases. Credential material only ever
// crosses this boundary as plaintext on the way into the hasher.
type UserService struct {
	repo   UserRepository
	hasher *auth.PasswordHasher
}

func NewUserService(repo UserRepository, hasher *auth.PasswordHasher) *UserService {
	return &UserService{repo: repo, hasher: hasher}
}

func (s *UserService) GetByID(ctx context.Context, id int) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (types.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// Register validates the new password against policy, hashes it, and creates
// the account.
func (s *UserService) Register(ctx context.Context, user types.User, password string) (types.User, error) {
	if err := s.hasher.ValidateNew(password); err != nil {
		return types.User{}, err
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return types.User{}, err
	}
	user.PasswordHash = hash
	return s.repo.Create(ctx, user)
}

// ChangePassword re-verifies the current password before accepting the new
// one. On any failure the stored hash is left untouched.
func (s *UserService) ChangePassword(ctx context.Context, userID int, current, newPassword string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(user.PasswordHash, current) {
		return auth.ErrInvalidCredentials
	}
	if err := s.hasher.ValidateNew(newPassword); err != nil {
		return err
	}
	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

func (s *UserService) ChangePhoneNumber(ctx context.Context, userID int, phoneNumber string) error {
	return s.repo.UpdatePhoneNumber(ctx, userID, phoneNumber)
}
