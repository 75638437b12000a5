package service

import (
	"context"
	"testing"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newForumFixture() (*ForumService, *notifierRecorder) {
	repos := repo.NewMemoryRepositories()
	recorder := &notifierRecorder{}

	return NewForumService(repos, recorder), recorder
}

func TestGetTopicsPinnedFirst(t *testing.T) {
	svc, _ := newForumFixture()

	topics, err := svc.GetTopics(context.Background(), "", nil)
	require.NoError(t, err)
	require.NotEmpty(t, topics)

	assert.True(t, topics[0].Pinned)
	assert.Equal(t, "topic-1", topics[0].Id)
	assert.NotEmpty(t, topics[0].AuthorName)
}

func TestCreateTopic(t *testing.T) {
	svc, recorder := newForumFixture()
	ctx := context.Background()

	topic, err := svc.CreateTopic(ctx, &entity.CreateTopicInput{
		Title:     "New washing machines worth it?",
		Content:   "Thinking of upgrading my equipment...",
		AuthorId:  "m1",
		Community: "Playa del Carmen",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, topic.Id)
	assert.Equal(t, "María González", topic.AuthorName)
	assert.Empty(t, topic.Posts)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "m1", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindTopicPosted, recorder.events[0].Kind)

	_, err = svc.CreateTopic(ctx, &entity.CreateTopicInput{Title: "x", Content: "y", AuthorId: "nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddReply(t *testing.T) {
	svc, recorder := newForumFixture()
	ctx := context.Background()

	// topic-2 was authored by m3.
	topic, err := svc.AddReply(ctx, "topic-2", "e2", "Very useful, thanks!")
	require.NoError(t, err)
	require.Len(t, topic.Posts, 2)
	assert.Equal(t, "Very useful, thanks!", topic.Posts[1].Content)
	assert.Equal(t, "Juan Pérez", topic.Posts[1].AuthorName)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "m3", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindForumReply, recorder.events[0].Kind)
	assert.Contains(t, recorder.events[0].Message, "Juan Pérez")

	// Replying to your own topic stays silent.
	recorder.reset()
	_, err = svc.AddReply(ctx, "topic-2", "m3", "Glad it helps")
	require.NoError(t, err)
	assert.Empty(t, recorder.events)

	_, err = svc.AddReply(ctx, "no-such-topic", "e2", "hello?")
	assert.ErrorIs(t, err, ErrTopicNotFound)

	_, err = svc.AddReply(ctx, "topic-2", "nobody", "hello?")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLikeTopic(t *testing.T) {
	svc, _ := newForumFixture()
	ctx := context.Background()

	before, err := svc.GetTopics(ctx, "Cancún", nil)
	require.NoError(t, err)
	require.NotEmpty(t, before)
	likes := before[0].Likes

	liked, err := svc.LikeTopic(ctx, before[0].Id)
	require.NoError(t, err)
	assert.Equal(t, likes+1, liked.Likes)

	_, err = svc.LikeTopic(ctx, "no-such-topic")
	assert.ErrorIs(t, err, ErrTopicNotFound)
}
