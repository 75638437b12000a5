package memdb

import (
	"context"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type JobRepo struct {
	*Store
}

func NewJobRepo(s *Store) *JobRepo {
	return &JobRepo{s}
}

func cloneJob(j *entity.Job) *entity.Job {
	c := *j
	c.Bids = make([]entity.Bid, len(j.Bids))
	copy(c.Bids, j.Bids)

	return &c
}

func (r *JobRepo) CreateJob(ctx context.Context, input *entity.CreateJobInput) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	job := &entity.Job{
		Id:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Pay:         input.Pay,
		Community:   input.Community,
		Schedule:    input.Schedule,
		EmployerId:  input.EmployerId,
		Status:      input.Status,
		Bids:        make([]entity.Bid, 0),
		CreatedAt:   r.timestamp(),
	}

	r.jobs[job.Id] = job
	r.jobOrder = append([]string{job.Id}, r.jobOrder...)

	return job.Id, nil
}

func (r *JobRepo) GetJobById(ctx context.Context, id string) (*entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return cloneJob(job), nil
}

func (r *JobRepo) GetJobs(ctx context.Context, filter *entity.JobFilter, pg *entity.PaginationInput) ([]entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectJobs(func(j *entity.Job) bool {
		if filter == nil {
			return true
		}
		if filter.Community != "" && j.Community != filter.Community {
			return false
		}
		if filter.Status != "" && j.Status != filter.Status {
			return false
		}

		return true
	}, pg), nil
}

func (r *JobRepo) GetJobsByEmployerId(ctx context.Context, employerId string, pg *entity.PaginationInput) ([]entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectJobs(func(j *entity.Job) bool {
		return j.EmployerId == employerId
	}, pg), nil
}

func (r *JobRepo) GetJobsByHiredBidderId(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collectJobs(func(j *entity.Job) bool {
		return j.HiredBidderId == bidderId
	}, pg), nil
}

func (r *JobRepo) AddBid(ctx context.Context, jobId string, bid *entity.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobId]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if job.Status != common.JobOpen {
		return repo_errors.ErrConflict
	}

	stored := *bid
	stored.Id = uuid.New().String()
	stored.JobId = jobId
	if stored.SubmittedAt == "" {
		stored.SubmittedAt = r.timestamp()
	}
	job.Bids = append(job.Bids, stored)
	bid.Id = stored.Id
	bid.JobId = jobId
	bid.SubmittedAt = stored.SubmittedAt

	return nil
}

// HireBidder applies the whole accept transition as one step: the job
// becomes Hired, the chosen bid Accepted and every other bid Rejected.
func (r *JobRepo) HireBidder(ctx context.Context, jobId string, bidIndex int, bidderId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobId]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if job.Status != common.JobOpen {
		return repo_errors.ErrConflict
	}
	if bidIndex < 0 || bidIndex >= len(job.Bids) {
		return repo_errors.ErrNotFound
	}

	job.Status = common.JobHired
	job.HiredBidderId = bidderId
	for i := range job.Bids {
		if i == bidIndex {
			job.Bids[i].Status = common.BidAccepted
		} else {
			job.Bids[i].Status = common.BidRejected
		}
	}

	return nil
}

func (r *JobRepo) CompleteJob(ctx context.Context, jobId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[jobId]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if job.Status != common.JobHired {
		return repo_errors.ErrConflict
	}

	job.Status = common.JobCompleted
	if u, ok := r.users[job.HiredBidderId]; ok {
		u.CompletedJobs++
	}

	return nil
}

// collectJobs walks jobOrder (newest first) applying the filter and the
// pagination window. Callers must hold at least a read lock.
func (r *JobRepo) collectJobs(keep func(*entity.Job) bool, pg *entity.PaginationInput) []entity.Job {
	matched := make([]entity.Job, 0)
	for _, id := range r.jobOrder {
		job := r.jobs[id]
		if keep(job) {
			matched = append(matched, *cloneJob(job))
		}
	}

	if pg == nil {
		return matched
	}
	from, to := pg.Slice(len(matched))

	return matched[from:to]
}
