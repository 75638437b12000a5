package service

import (
	"context"
	"errors"
	"log/slog"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/metrics"
	"home-connect-api/internal/notify"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/repo/repo_errors"
)

var kindIcons = map[string]string{
	common.KindJobPosted:       "📝",
	common.KindBidPlaced:       "📩",
	common.KindHired:           "✅",
	common.KindJobCompleted:    "🎉",
	common.KindPaymentReleased: "💰",
	common.KindOfferSent:       "📩",
	common.KindOfferResponse:   "✅",
	common.KindForumReply:      "💬",
	common.KindTopicPosted:     "💬",
	common.KindReviewReceived:  "⭐",
	common.KindModeratorAction: "🚩",
	common.KindDisputeResolved: "🚩",
}

func iconFor(kind string) string {
	if icon, ok := kindIcons[kind]; ok {
		return icon
	}

	return "🔔"
}

// NotificationService is the notification sink. It records every event
// for the in-app feed and fans it out to the external channels the
// recipient opted into. Failures are logged, never propagated back to
// the operation that emitted the event.
type NotificationService struct {
	notificationRepo repo.Notification
	userRepo         repo.User
	dispatchers      []notify.Dispatcher
	metrics          *metrics.Collector
	log              *slog.Logger
}

func NewNotificationService(repos *repo.Repositories, dispatchers []notify.Dispatcher, m *metrics.Collector, log *slog.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: repos.Notification,
		userRepo:         repos.User,
		dispatchers:      dispatchers,
		metrics:          m,
		log:              log,
	}
}

func (s *NotificationService) Notify(ctx context.Context, recipientId string, kind string, message string) {
	recipient, err := s.userRepo.GetUserById(ctx, recipientId)
	if err != nil {
		s.log.Warn("dropping notification for unknown recipient",
			slog.String("recipient", recipientId), slog.String("kind", kind))

		return
	}

	n := &entity.Notification{
		RecipientId: recipientId,
		Kind:        kind,
		Icon:        iconFor(kind),
		Message:     message,
	}
	if err := s.notificationRepo.AddNotification(ctx, n); err != nil {
		s.log.Error("failed to record notification",
			slog.String("recipient", recipientId), slog.String("kind", kind),
			slog.String("error", err.Error()))

		return
	}
	if s.metrics != nil {
		s.metrics.NotificationEmitted(kind)
	}

	for _, d := range s.dispatchers {
		if !s.optedIn(recipient, d.Channel()) {
			continue
		}
		if err := d.Send(ctx, recipient, message); err != nil {
			s.log.Warn("notification dispatch failed",
				slog.String("channel", d.Channel()),
				slog.String("recipient", recipientId),
				slog.String("error", err.Error()))
		}
	}
}

func (s *NotificationService) optedIn(user *entity.User, channel string) bool {
	switch channel {
	case "email":
		return user.Notifications.Email
	case "sms":
		return user.Notifications.SMS
	}

	return false
}

func (s *NotificationService) GetUserNotifications(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.NotificationOutputModel, error) {
	notifications, err := s.notificationRepo.GetUserNotifications(ctx, userId, pg)
	if err != nil {
		return nil, err
	}

	out := make([]entity.NotificationOutputModel, 0)
	for i := range notifications {
		out = append(out, *mapNotification(&notifications[i]))
	}

	return out, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string, userId string) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return ErrNotificationNotFound
		}

		return err
	}

	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userId string) error {
	return s.notificationRepo.MarkAllRead(ctx, userId)
}
