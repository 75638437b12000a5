package memdb

import (
	"context"
	"testing"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobRepoFixture() *JobRepo {
	s := NewStore()
	NewUserRepo(s).AddUser(&entity.User{Id: "emp", Name: "Employer", Role: common.RoleEmployer})
	NewUserRepo(s).AddUser(&entity.User{Id: "maid", Name: "Maid", Role: common.RoleMaid})

	return NewJobRepo(s)
}

func createJob(t *testing.T, r *JobRepo) string {
	t.Helper()
	id, err := r.CreateJob(context.Background(), &entity.CreateJobInput{
		Title: "Clean house", Pay: 300, EmployerId: "emp", Status: common.JobOpen,
	})
	require.NoError(t, err)

	return id
}

func TestCreateAndGetJob(t *testing.T) {
	r := newJobRepoFixture()
	ctx := context.Background()

	id := createJob(t, r)

	job, err := r.GetJobById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, common.JobOpen, job.Status)
	assert.Empty(t, job.Bids)
	assert.NotEmpty(t, job.CreatedAt)

	_, err = r.GetJobById(ctx, "missing")
	assert.ErrorIs(t, err, repo_errors.ErrNotFound)
}

func TestGetJobsNewestFirst(t *testing.T) {
	r := newJobRepoFixture()
	ctx := context.Background()

	first := createJob(t, r)
	second := createJob(t, r)

	jobs, err := r.GetJobs(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, second, jobs[0].Id)
	assert.Equal(t, first, jobs[1].Id)
}

func TestAddBidAppendsInOrder(t *testing.T) {
	r := newJobRepoFixture()
	ctx := context.Background()
	id := createJob(t, r)

	require.NoError(t, r.AddBid(ctx, id, &entity.Bid{BidderId: "maid", Price: 250, Status: common.BidPending}))
	require.NoError(t, r.AddBid(ctx, id, &entity.Bid{BidderId: "emp", Price: 280, Status: common.BidPending}))

	job, err := r.GetJobById(ctx, id)
	require.NoError(t, err)
	require.Len(t, job.Bids, 2)
	assert.Equal(t, "maid", job.Bids[0].BidderId)
	assert.Equal(t, "emp", job.Bids[1].BidderId)
	assert.NotEmpty(t, job.Bids[0].SubmittedAt)

	assert.ErrorIs(t, r.AddBid(ctx, "missing", &entity.Bid{BidderId: "maid"}), repo_errors.ErrNotFound)
}

func TestHireBidder(t *testing.T) {
	r := newJobRepoFixture()
	ctx := context.Background()
	id := createJob(t, r)

	require.NoError(t, r.AddBid(ctx, id, &entity.Bid{BidderId: "maid", Price: 250, Status: common.BidPending}))
	require.NoError(t, r.AddBid(ctx, id, &entity.Bid{BidderId: "emp", Price: 280, Status: common.BidPending}))

	assert.ErrorIs(t, r.HireBidder(ctx, id, 9, "maid"), repo_errors.ErrNotFound)

	require.NoError(t, r.HireBidder(ctx, id, 0, "maid"))

	job, err := r.GetJobById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, common.JobHired, job.Status)
	assert.Equal(t, "maid", job.HiredBidderId)
	assert.Equal(t, common.BidAccepted, job.Bids[0].Status)
	assert.Equal(t, common.BidRejected, job.Bids[1].Status)

	// No bids and no second hire once the job left Open.
	assert.ErrorIs(t, r.AddBid(ctx, id, &entity.Bid{BidderId: "late"}), repo_errors.ErrConflict)
	assert.ErrorIs(t, r.HireBidder(ctx, id, 1, "emp"), repo_errors.ErrConflict)
}

func TestCompleteJobUpdatesCounter(t *testing.T) {
	r := newJobRepoFixture()
	s := r.Store
	ctx := context.Background()
	id := createJob(t, r)

	assert.ErrorIs(t, r.CompleteJob(ctx, id), repo_errors.ErrConflict)

	require.NoError(t, r.AddBid(ctx, id, &entity.Bid{BidderId: "maid", Price: 250, Status: common.BidPending}))
	require.NoError(t, r.HireBidder(ctx, id, 0, "maid"))
	require.NoError(t, r.CompleteJob(ctx, id))

	job, err := r.GetJobById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, common.JobCompleted, job.Status)

	maid, err := NewUserRepo(s).GetUserById(ctx, "maid")
	require.NoError(t, err)
	assert.Equal(t, 1, maid.CompletedJobs)
}

func TestCloneOnReturn(t *testing.T) {
	r := newJobRepoFixture()
	ctx := context.Background()
	id := createJob(t, r)

	job, err := r.GetJobById(ctx, id)
	require.NoError(t, err)
	job.Status = "Tampered"
	job.Bids = append(job.Bids, entity.Bid{BidderId: "maid"})

	fresh, err := r.GetJobById(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, common.JobOpen, fresh.Status)
	assert.Empty(t, fresh.Bids)
}
