package notify

import (
	"context"
	"log/slog"

	"home-connect-api/internal/entity"
)

// Dispatcher delivers a rendered notification over one external channel
// (email, SMS). Fire-and-forget: a delivery failure never propagates back
// into the operation that produced the event.
type Dispatcher interface {
	Channel() string
	Send(ctx context.Context, recipient *entity.User, message string) error
}

// MockEmailDispatcher stands in for a real email provider and just logs
// the dispatch, the way the demo logged it to the browser console.
type MockEmailDispatcher struct {
	log *slog.Logger
}

func NewMockEmailDispatcher(log *slog.Logger) *MockEmailDispatcher {
	return &MockEmailDispatcher{log: log}
}

func (d *MockEmailDispatcher) Channel() string {
	return "email"
}

func (d *MockEmailDispatcher) Send(ctx context.Context, recipient *entity.User, message string) error {
	d.log.Info("mock email dispatched",
		slog.String("to", recipient.Email),
		slog.String("user", recipient.Id),
		slog.String("message", message))

	return nil
}

// MockSMSDispatcher stands in for a real SMS provider.
type MockSMSDispatcher struct {
	log *slog.Logger
}

func NewMockSMSDispatcher(log *slog.Logger) *MockSMSDispatcher {
	return &MockSMSDispatcher{log: log}
}

func (d *MockSMSDispatcher) Channel() string {
	return "sms"
}

func (d *MockSMSDispatcher) Send(ctx context.Context, recipient *entity.User, message string) error {
	d.log.Info("mock sms dispatched",
		slog.String("to", recipient.Phone),
		slog.String("user", recipient.Id),
		slog.String("message", message))

	return nil
}
