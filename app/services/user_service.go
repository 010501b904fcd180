package services

import (
	"context"
	"fmt"

	"estatehub/app/models"
	"estatehub/app/repositories"
)

// UserService manages accounts
type UserService struct {
	users repositories.UserStore
}

func NewUserService(users repositories.UserStore) *UserService {
	return &UserService{users: users}
}

// CreateUser validates and stores a new user
func (s *UserService) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = ""
	if err := user.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create user %s: %w", user.Username, err)
	}
	return nil
}
