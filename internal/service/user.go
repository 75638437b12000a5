package service

import (
	"context"
	"errors"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/repo/repo_errors"
)

// UserService is the identity lookup plus the preferences screen.
type UserService struct {
	userRepo repo.User
}

func NewUserService(repos *repo.Repositories) *UserService {
	return &UserService{userRepo: repos.User}
}

func (s *UserService) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return user, nil
}

func (s *UserService) GetUsers(ctx context.Context) ([]entity.UserOutputModel, error) {
	users, err := s.userRepo.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entity.UserOutputModel, 0)
	for i := range users {
		out = append(out, *mapUser(&users[i]))
	}

	return out, nil
}

func (s *UserService) UpdatePreferences(ctx context.Context, userId string, prefs entity.NotificationPreferences) (*entity.User, error) {
	if err := s.userRepo.UpdatePreferences(ctx, userId, prefs); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	return s.userRepo.GetUserById(ctx, userId)
}
