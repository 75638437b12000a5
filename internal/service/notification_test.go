package service

import (
	"context"
	"errors"
	"testing"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/notify"
	"home-connect-api/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	channel string
	sent    []string
	err     error
}

func (d *fakeDispatcher) Channel() string { return d.channel }

func (d *fakeDispatcher) Send(_ context.Context, recipient *entity.User, message string) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, recipient.Id+": "+message)

	return nil
}

func newNotificationFixture(dispatchers ...notify.Dispatcher) (*NotificationService, *repo.Repositories) {
	repos := repo.NewMemoryRepositories()

	return NewNotificationService(repos, dispatchers, nil, discardLogger()), repos
}

func TestNotifyStoresNewestFirst(t *testing.T) {
	svc, _ := newNotificationFixture()
	ctx := context.Background()

	svc.Notify(ctx, "e1", common.KindJobPosted, "first")
	svc.Notify(ctx, "e1", common.KindBidPlaced, "second")

	list, err := svc.GetUserNotifications(ctx, "e1", nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "second", list[0].Message)
	assert.Equal(t, "first", list[1].Message)
	assert.False(t, list[0].Read)
	assert.Equal(t, "📩", list[0].Icon)
}

func TestNotifyFanOutRespectsPreferences(t *testing.T) {
	email := &fakeDispatcher{channel: "email"}
	sms := &fakeDispatcher{channel: "sms"}
	svc, _ := newNotificationFixture(email, sms)
	ctx := context.Background()

	// e1 opted into email only, m2 into sms only.
	svc.Notify(ctx, "e1", common.KindJobPosted, "for e1")
	svc.Notify(ctx, "m2", common.KindHired, "for m2")

	require.Len(t, email.sent, 1)
	assert.Equal(t, "e1: for e1", email.sent[0])
	require.Len(t, sms.sent, 1)
	assert.Equal(t, "m2: for m2", sms.sent[0])
}

func TestNotifyUnknownRecipientIsDropped(t *testing.T) {
	email := &fakeDispatcher{channel: "email"}
	svc, _ := newNotificationFixture(email)
	ctx := context.Background()

	svc.Notify(ctx, "nobody", common.KindJobPosted, "lost")

	list, err := svc.GetUserNotifications(ctx, "nobody", nil)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Empty(t, email.sent)
}

func TestNotifyDispatchFailureDoesNotLoseTheEvent(t *testing.T) {
	email := &fakeDispatcher{channel: "email", err: errors.New("smtp down")}
	svc, _ := newNotificationFixture(email)
	ctx := context.Background()

	svc.Notify(ctx, "e1", common.KindJobPosted, "still recorded")

	list, err := svc.GetUserNotifications(ctx, "e1", nil)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "still recorded", list[0].Message)
}

func TestMarkRead(t *testing.T) {
	svc, _ := newNotificationFixture()
	ctx := context.Background()

	svc.Notify(ctx, "e1", common.KindJobPosted, "a")
	svc.Notify(ctx, "e1", common.KindJobPosted, "b")

	list, err := svc.GetUserNotifications(ctx, "e1", nil)
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(ctx, list[0].Id, "e1"))

	list, err = svc.GetUserNotifications(ctx, "e1", nil)
	require.NoError(t, err)
	assert.True(t, list[0].Read)
	assert.False(t, list[1].Read)

	// A notification belongs to its recipient.
	assert.ErrorIs(t, svc.MarkRead(ctx, list[1].Id, "m1"), ErrNotificationNotFound)
	assert.ErrorIs(t, svc.MarkRead(ctx, "no-such-id", "e1"), ErrNotificationNotFound)

	require.NoError(t, svc.MarkAllRead(ctx, "e1"))
	list, err = svc.GetUserNotifications(ctx, "e1", nil)
	require.NoError(t, err)
	for _, n := range list {
		assert.True(t, n.Read)
	}
}
