package memdb

import (
	"context"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type NotificationRepo struct {
	*Store
}

func NewNotificationRepo(s *Store) *NotificationRepo {
	return &NotificationRepo{s}
}

func (r *NotificationRepo) AddNotification(ctx context.Context, n *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n.Id == "" {
		n.Id = uuid.New().String()
	}
	if n.CreatedAt == "" {
		n.CreatedAt = r.timestamp()
	}
	r.notifications = append([]entity.Notification{*n}, r.notifications...)

	return nil
}

func (r *NotificationRepo) GetUserNotifications(ctx context.Context, recipientId string, pg *entity.PaginationInput) ([]entity.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Notification, 0)
	for _, n := range r.notifications {
		if n.RecipientId == recipientId {
			matched = append(matched, n)
		}
	}

	if pg == nil {
		return matched, nil
	}
	from, to := pg.Slice(len(matched))

	return matched[from:to], nil
}

func (r *NotificationRepo) MarkRead(ctx context.Context, id string, recipientId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].Id == id && r.notifications[i].RecipientId == recipientId {
			r.notifications[i].Read = true

			return nil
		}
	}

	return repo_errors.ErrNotFound
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context, recipientId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.notifications {
		if r.notifications[i].RecipientId == recipientId {
			r.notifications[i].Read = true
		}
	}

	return nil
}
