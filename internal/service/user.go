package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentalhub/internal/model"
	"rentalhub/internal/repository"
)

// UserService handles user accounts keyed by email
type UserService struct {
	repo repository.IUserRepository
	now  func() time.Time
}

func NewUserService(repo repository.IUserRepository) *UserService {
	return &UserService{repo: repo, now: time.Now}
}

// Upsert returns the existing user for the email unchanged, or inserts a new
// one with role "user". created reports which happened.
func (s *UserService) Upsert(ctx context.Context, req *model.UpsertUserRequest) (user *model.User, created bool, err error) {
	email := normalizeEmail(req.Email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up user: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	user = &model.User{
		Name:      strings.TrimSpace(req.Name),
		Email:     email,
		Photo:     req.Photo,
		Role:      model.RoleUser,
		Timestamp: s.now(),
	}
	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race with a concurrent upsert for the same email
			existing, findErr := s.repo.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, false, fmt.Errorf("failed to look up user: %w", findErr)
			}
			if existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}
	return user, true, nil
}

// GetByEmail returns nil when no user has the email
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// IsAdmin reports whether the email belongs to a user with the admin role
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil && user.Role == model.RoleAdmin, nil
}

// SetRole changes a user's role. Used by the ops CLI to bootstrap admins.
func (s *UserService) SetRole(ctx context.Context, email, role string) (model.UpdateResult, error) {
	if !model.ValidRole(role) {
		return model.UpdateResult{}, fmt.Errorf("unknown role %q", role)
	}
	res, err := s.repo.SetRole(ctx, normalizeEmail(email), role, s.now())
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("failed to set role: %w", err)
	}
	return res, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
