package memdb

import (
	"context"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"
)

type UserRepo struct {
	*Store
}

func NewUserRepo(s *Store) *UserRepo {
	return &UserRepo{s}
}

func cloneUser(u *entity.User) *entity.User {
	c := *u
	c.Badges = append([]string(nil), u.Badges...)

	return &c
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return cloneUser(user), nil
}

func (r *UserRepo) GetUsers(ctx context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]entity.User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		users = append(users, *cloneUser(r.users[id]))
	}

	return users, nil
}

func (r *UserRepo) GetUsersByRole(ctx context.Context, role string) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]entity.User, 0)
	for _, id := range r.userOrder {
		if r.users[id].Role == role {
			users = append(users, *cloneUser(r.users[id]))
		}
	}

	return users, nil
}

func (r *UserRepo) UpdatePreferences(ctx context.Context, id string, prefs entity.NotificationPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	user.Notifications = prefs

	return nil
}

func (r *UserRepo) SetFlagged(ctx context.Context, id string, flagged bool, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	user.Flagged = flagged
	user.FlagReason = reason

	return nil
}

// AddUser registers a user; used by the seed and by tests.
func (r *UserRepo) AddUser(u *entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addUserLocked(u)
}

func (s *Store) addUserLocked(u *entity.User) {
	c := cloneUser(u)
	s.users[c.Id] = c
	s.userOrder = append(s.userOrder, c.Id)
}
