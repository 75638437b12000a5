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

func newReviewFixture() (*ReviewService, *JobService, *notifierRecorder) {
	repos := repo.NewMemoryRepositories()
	recorder := &notifierRecorder{}

	return NewReviewService(repos, recorder), NewJobService(repos, recorder, nil), recorder
}

// runJobToCompletion posts a fresh job for e1, has m1 win it and mark it
// done, and returns the job id.
func runJobToCompletion(t *testing.T, jobs *JobService) string {
	t.Helper()
	ctx := context.Background()

	job, err := postJob(ctx, jobs, "e1")
	require.NoError(t, err)
	_, err = jobs.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 450})
	require.NoError(t, err)
	_, err = jobs.AcceptBid(ctx, job.Id, 0, "e1")
	require.NoError(t, err)
	_, err = jobs.CompleteJob(ctx, job.Id, "m1")
	require.NoError(t, err)

	return job.Id
}

func TestCreateReview(t *testing.T) {
	svc, jobs, recorder := newReviewFixture()
	ctx := context.Background()
	jobId := runJobToCompletion(t, jobs)
	recorder.reset()

	review, err := svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: jobId, ReviewerId: "e1", RevieweeId: "m1",
		Rating: 5, Comment: "Spotless work",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, review.Id)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "You (Employer)", review.ReviewerName)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "m1", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindReviewReceived, recorder.events[0].Kind)

	// One review per reviewer per job, but the other side still gets theirs.
	_, err = svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: jobId, ReviewerId: "e1", RevieweeId: "m1", Rating: 4,
	})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	_, err = svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: jobId, ReviewerId: "m1", RevieweeId: "e1", Rating: 5,
	})
	require.NoError(t, err)
}

func TestCreateReviewGuards(t *testing.T) {
	svc, jobs, _ := newReviewFixture()
	ctx := context.Background()

	_, err := svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: "job-3", ReviewerId: "e1", RevieweeId: "m3", Rating: 6,
	})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: "no-such-job", ReviewerId: "e1", RevieweeId: "m3", Rating: 5,
	})
	assert.ErrorIs(t, err, ErrJobNotFound)

	// job-3 is seeded as Hired, not Completed.
	_, err = svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: "job-3", ReviewerId: "e1", RevieweeId: "m3", Rating: 5,
	})
	assert.ErrorIs(t, err, ErrJobNotCompleted)

	jobId := runJobToCompletion(t, jobs)

	// Outsiders cannot review, and nobody reviews themselves.
	_, err = svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: jobId, ReviewerId: "e2", RevieweeId: "m1", Rating: 5,
	})
	assert.ErrorIs(t, err, ErrNotJobParticipant)

	_, err = svc.CreateReview(ctx, &entity.CreateReviewInput{
		JobId: jobId, ReviewerId: "m1", RevieweeId: "m1", Rating: 5,
	})
	assert.ErrorIs(t, err, ErrNotJobParticipant)
}

func TestGetUserReviews(t *testing.T) {
	svc, _, _ := newReviewFixture()
	ctx := context.Background()

	// m3 already has one seeded review from job-3.
	reviews, err := svc.GetUserReviews(ctx, "m3", nil)
	require.NoError(t, err)
	require.NotEmpty(t, reviews)
	assert.Equal(t, "You (Employer)", reviews[0].ReviewerName)

	_, err = svc.GetUserReviews(ctx, "nobody", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
