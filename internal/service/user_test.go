package service

import (
	"context"
	"testing"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserById(t *testing.T) {
	svc := NewUserService(repo.NewMemoryRepositories())
	ctx := context.Background()

	user, err := svc.GetUserById(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "María González", user.Name)
	assert.True(t, user.Notifications.Email)

	_, err = svc.GetUserById(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUsers(t *testing.T) {
	svc := NewUserService(repo.NewMemoryRepositories())

	users, err := svc.GetUsers(context.Background())
	require.NoError(t, err)

	// Seven regular profiles plus the three flagged ones.
	assert.Len(t, users, 10)
}

func TestUpdatePreferences(t *testing.T) {
	svc := NewUserService(repo.NewMemoryRepositories())
	ctx := context.Background()

	user, err := svc.UpdatePreferences(ctx, "e1", entity.NotificationPreferences{Email: false, SMS: true})
	require.NoError(t, err)
	assert.False(t, user.Notifications.Email)
	assert.True(t, user.Notifications.SMS)

	_, err = svc.UpdatePreferences(ctx, "nobody", entity.NotificationPreferences{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
