package service

import (
	"context"
	"testing"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJob(t *testing.T) {
	svc, recorder, _ := newJobFixture()
	ctx := context.Background()

	job, err := postJob(ctx, svc, "e1")
	require.NoError(t, err)

	assert.NotEmpty(t, job.Id)
	assert.Equal(t, common.JobOpen, job.Status)
	assert.Empty(t, job.Bids)
	assert.Empty(t, job.HiredBidderId)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "e1", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindJobPosted, recorder.events[0].Kind)
}

func TestCreateJobValidation(t *testing.T) {
	svc, _, _ := newJobFixture()
	ctx := context.Background()

	_, err := svc.CreateJob(ctx, &entity.CreateJobInput{Title: "x", Pay: 0, EmployerId: "e1"})
	assert.ErrorIs(t, err, ErrInvalidPay)

	_, err = svc.CreateJob(ctx, &entity.CreateJobInput{Title: "x", Pay: -10, EmployerId: "e1"})
	assert.ErrorIs(t, err, ErrInvalidPay)

	_, err = svc.CreateJob(ctx, &entity.CreateJobInput{Title: "x", Pay: 100, EmployerId: "nobody"})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.CreateJob(ctx, &entity.CreateJobInput{Title: "x", Pay: 100, EmployerId: "m1"})
	assert.ErrorIs(t, err, ErrNotAnEmployer)
}

func TestPlaceBidOrderAndStatus(t *testing.T) {
	svc, recorder, _ := newJobFixture()
	ctx := context.Background()

	job, err := postJob(ctx, svc, "e1")
	require.NoError(t, err)
	recorder.reset()

	first, err := svc.PlaceBid(ctx, &entity.PlaceBidInput{
		JobId: job.Id, BidderId: "m1", Price: 450, Message: "I can start tomorrow",
	})
	require.NoError(t, err)
	assert.Equal(t, common.BidPending, first.Status)
	assert.Equal(t, "María González", first.BidderName)

	second, err := svc.PlaceBid(ctx, &entity.PlaceBidInput{
		JobId: job.Id, BidderId: "m2", Price: 480,
	})
	require.NoError(t, err)
	assert.Equal(t, common.DefaultBidMessage, second.Message)

	got, err := svc.GetJobById(ctx, job.Id)
	require.NoError(t, err)
	require.Len(t, got.Bids, 2)
	assert.Equal(t, "m1", got.Bids[0].BidderId)
	assert.Equal(t, "m2", got.Bids[1].BidderId)
	assert.Equal(t, common.BidPending, got.Bids[0].Status)
	assert.Equal(t, common.BidPending, got.Bids[1].Status)

	require.Len(t, recorder.events, 2)
	assert.Equal(t, "e1", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindBidPlaced, recorder.events[0].Kind)
	assert.Contains(t, recorder.events[0].Message, "María González")
}

func TestPlaceBidValidation(t *testing.T) {
	svc, _, _ := newJobFixture()
	ctx := context.Background()

	job, err := postJob(ctx, svc, "e1")
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 0})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "e2", Price: 100})
	assert.ErrorIs(t, err, ErrNotAMaid)

	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: "no-such-job", BidderId: "m1", Price: 100})
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 100})
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 120})
	assert.ErrorIs(t, err, ErrDuplicateBid)
}

func TestAcceptBid(t *testing.T) {
	svc, recorder, _ := newJobFixture()
	ctx := context.Background()

	job, err := postJob(ctx, svc, "e1")
	require.NoError(t, err)

	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 450})
	require.NoError(t, err)
	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m2", Price: 480})
	require.NoError(t, err)
	recorder.reset()

	hired, err := svc.AcceptBid(ctx, job.Id, 0, "e1")
	require.NoError(t, err)

	assert.Equal(t, common.JobHired, hired.Status)
	assert.Equal(t, "m1", hired.HiredBidderId)
	require.Len(t, hired.Bids, 2)
	assert.Equal(t, common.BidAccepted, hired.Bids[0].Status)
	assert.Equal(t, common.BidRejected, hired.Bids[1].Status)

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "m1", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindHired, recorder.events[0].Kind)
}

func TestAcceptBidGuards(t *testing.T) {
	svc, _, _ := newJobFixture()
	ctx := context.Background()

	job, err := postJob(ctx, svc, "e1")
	require.NoError(t, err)
	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 450})
	require.NoError(t, err)

	_, err = svc.AcceptBid(ctx, "no-such-job", 0, "e1")
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = svc.AcceptBid(ctx, job.Id, 0, "e2")
	assert.ErrorIs(t, err, ErrNotJobOwner)

	// Out-of-range index leaves the job untouched.
	_, err = svc.AcceptBid(ctx, job.Id, 5, "e1")
	assert.ErrorIs(t, err, ErrBidNotFound)

	got, err := svc.GetJobById(ctx, job.Id)
	require.NoError(t, err)
	assert.Equal(t, common.JobOpen, got.Status)
	assert.Equal(t, common.BidPending, got.Bids[0].Status)

	_, err = svc.AcceptBid(ctx, job.Id, 0, "e1")
	require.NoError(t, err)

	// Hiring is terminal, there is no second accept.
	_, err = svc.AcceptBid(ctx, job.Id, 0, "e1")
	assert.ErrorIs(t, err, ErrJobNotOpen)

	// And no late bids either.
	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m2", Price: 400})
	assert.ErrorIs(t, err, ErrJobNotOpen)
}

func TestCompleteJob(t *testing.T) {
	svc, recorder, _ := newJobFixture()
	ctx := context.Background()

	job, err := postJob(ctx, svc, "e1")
	require.NoError(t, err)
	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 450})
	require.NoError(t, err)
	_, err = svc.AcceptBid(ctx, job.Id, 0, "e1")
	require.NoError(t, err)
	recorder.reset()

	done, err := svc.CompleteJob(ctx, job.Id, "m1")
	require.NoError(t, err)
	assert.Equal(t, common.JobCompleted, done.Status)

	// Employer hears about completion before the escrow release goes out.
	require.Len(t, recorder.events, 2)
	assert.Equal(t, "e1", recorder.events[0].RecipientId)
	assert.Equal(t, common.KindJobCompleted, recorder.events[0].Kind)
	assert.Equal(t, "m1", recorder.events[1].RecipientId)
	assert.Equal(t, common.KindPaymentReleased, recorder.events[1].Kind)
}

func TestCompleteJobGuards(t *testing.T) {
	svc, _, _ := newJobFixture()
	ctx := context.Background()

	job, err := postJob(ctx, svc, "e1")
	require.NoError(t, err)

	_, err = svc.CompleteJob(ctx, "no-such-job", "m1")
	assert.ErrorIs(t, err, ErrJobNotFound)

	// An Open job cannot be completed.
	_, err = svc.CompleteJob(ctx, job.Id, "m1")
	assert.ErrorIs(t, err, ErrJobNotHired)

	_, err = svc.PlaceBid(ctx, &entity.PlaceBidInput{JobId: job.Id, BidderId: "m1", Price: 450})
	require.NoError(t, err)
	_, err = svc.AcceptBid(ctx, job.Id, 0, "e1")
	require.NoError(t, err)

	// Only the hired bidder may complete, not the employer.
	_, err = svc.CompleteJob(ctx, job.Id, "e1")
	assert.ErrorIs(t, err, ErrNotHiredBidder)

	_, err = svc.CompleteJob(ctx, job.Id, "m1")
	require.NoError(t, err)

	_, err = svc.CompleteJob(ctx, job.Id, "m1")
	assert.ErrorIs(t, err, ErrJobNotHired)
}

func TestGetUserJobs(t *testing.T) {
	svc, _, _ := newJobFixture()
	ctx := context.Background()

	// Seeded data: e1 owns job-1 and job-3, m3 is hired on job-3.
	employerJobs, err := svc.GetUserJobs(ctx, "e1", nil)
	require.NoError(t, err)
	require.Len(t, employerJobs, 2)
	for _, j := range employerJobs {
		assert.Equal(t, "e1", j.EmployerId)
	}

	maidJobs, err := svc.GetUserJobs(ctx, "m3", nil)
	require.NoError(t, err)

	var sawHired bool
	for _, j := range maidJobs {
		if j.Id == "job-3" {
			sawHired = true
			assert.Equal(t, "m3", j.HiredBidderId)

			continue
		}
		assert.Equal(t, common.JobOpen, j.Status)
	}
	assert.True(t, sawHired)

	_, err = svc.GetUserJobs(ctx, "nobody", nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
