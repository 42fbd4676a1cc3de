package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/tradesim-dev/tradesim/internal/auth"
	"github.com/tradesim-dev/tradesim/internal/models"
	repo "github.com/tradesim-dev/tradesim/internal/repository"
)

type UserService struct {
	users repo.Users
}

func NewUserService(users repo.Users) *UserService { return &UserService{users: users} }

func (s *UserService) Register(ctx context.Context, username, password, confirmation string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || password != confirmation {
		return models.User{}, models.ErrInvalidInput
	}

	// The unique index on lower(username) backs this check up; the
	// pre-check just gives the common case a clean error without an
	// insert attempt.
	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return models.User{}, models.ErrUsernameTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Create(ctx, username, hash)
}

func (s *UserService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	if strings.TrimSpace(username) == "" || password == "" {
		return models.User{}, models.ErrInvalidInput
	}
	u, err := s.users.GetByUsername(ctx, username)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	if err := auth.VerifyPassword(password, u.PasswordHash); err != nil {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, userID, current, newPassword, confirmation string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := auth.VerifyPassword(current, u.PasswordHash); err != nil {
		return models.ErrInvalidCredentials
	}
	if newPassword == "" || newPassword != confirmation {
		return models.ErrInvalidInput
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}
