package service

import (
	"context"
	"testing"
	"time"

	"home-connect-api/internal/common"
	"home-connect-api/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLeaderboardFixture(delay time.Duration) (*LeaderboardService, *notifierRecorder, *repo.Repositories) {
	repos := repo.NewMemoryRepositories()
	recorder := &notifierRecorder{}
	svc := NewLeaderboardService(repos, recorder, nil, discardLogger(), delay)

	return svc, recorder, repos
}

func TestGetLeaderboardRanking(t *testing.T) {
	svc, _, _ := newLeaderboardFixture(time.Second)
	defer svc.Shutdown()

	board, err := svc.GetLeaderboard(context.Background(), "")
	require.NoError(t, err)

	// Rating descending: m3 (5.0) leads, m5 (4.4) closes the board.
	require.Len(t, board.TopMaids, 5)
	assert.Equal(t, "m3", board.TopMaids[0].UserId)
	assert.Equal(t, 1, board.TopMaids[0].Rank)
	assert.Equal(t, "m1", board.TopMaids[1].UserId)
	assert.Equal(t, "m5", board.TopMaids[4].UserId)
	assert.Equal(t, 5, board.TopMaids[4].Rank)

	require.Len(t, board.DoNotHire, 3)
	for _, entry := range board.DoNotHire {
		assert.NotEmpty(t, entry.Reason)
	}
}

func TestGetLeaderboardCommunityFilter(t *testing.T) {
	svc, _, _ := newLeaderboardFixture(time.Second)
	defer svc.Shutdown()

	board, err := svc.GetLeaderboard(context.Background(), "Cancún")
	require.NoError(t, err)

	require.Len(t, board.TopMaids, 2)
	assert.Equal(t, "m2", board.TopMaids[0].UserId)
	assert.Equal(t, "m4", board.TopMaids[1].UserId)

	// Flagged profiles stay visible regardless of community.
	assert.Len(t, board.DoNotHire, 3)
}

func TestSendOffer(t *testing.T) {
	svc, recorder, _ := newLeaderboardFixture(10 * time.Millisecond)
	defer svc.Shutdown()
	svc.randIntn = func(int) int { return 0 } // always Accepted
	ctx := context.Background()

	offer, err := svc.SendOffer(ctx, "e1", "m1")
	require.NoError(t, err)
	assert.Equal(t, common.OfferPending, offer.Status)

	require.Len(t, recorder.events, 2)
	assert.Equal(t, "m1", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindOfferSent, recorder.events[0].Kind)
	assert.Equal(t, "e1", recorder.events[1].RecipientId)

	// A second offer while the first is pending is rejected.
	_, err = svc.SendOffer(ctx, "e1", "m1")
	assert.ErrorIs(t, err, ErrOfferAlreadyPending)

	require.Eventually(t, func() bool {
		got, err := svc.GetOfferById(ctx, offer.Id)

		return err == nil && got.Status == common.OfferAccepted
	}, time.Second, 5*time.Millisecond)

	last := recorder.events[len(recorder.events)-1]
	assert.Equal(t, "e1", last.RecipientId)
	assert.Equal(t, common.KindOfferResponse, last.Kind)
}

func TestSendOfferValidation(t *testing.T) {
	svc, _, _ := newLeaderboardFixture(time.Second)
	defer svc.Shutdown()
	ctx := context.Background()

	_, err := svc.SendOffer(ctx, "nobody", "m1")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.SendOffer(ctx, "m1", "m2")
	assert.ErrorIs(t, err, ErrNotAnEmployer)

	_, err = svc.SendOffer(ctx, "e1", "e2")
	assert.ErrorIs(t, err, ErrNotAMaid)
}

func TestShutdownCancelsPendingOffers(t *testing.T) {
	svc, recorder, _ := newLeaderboardFixture(20 * time.Millisecond)
	ctx := context.Background()

	offer, err := svc.SendOffer(ctx, "e1", "m1")
	require.NoError(t, err)

	svc.Shutdown()
	sent := len(recorder.events)

	// The simulated response never arrives after shutdown.
	time.Sleep(60 * time.Millisecond)

	got, err := svc.GetOfferById(ctx, offer.Id)
	require.NoError(t, err)
	assert.Equal(t, common.OfferPending, got.Status)
	assert.Len(t, recorder.events, sent)
}
