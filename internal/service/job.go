package service

import (
	"context"
	"errors"
	"fmt"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/metrics"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/repo/repo_errors"
)

// JobService owns the job/bid lifecycle: Open -> Hired -> Completed for
// jobs, Pending -> Accepted/Rejected for bids. Every invariant is checked
// here, at the component boundary, instead of trusting the caller the way
// the original UI did.
type JobService struct {
	jobRepo  repo.Job
	userRepo repo.User
	notifier Notifier
	metrics  *metrics.Collector
}

func NewJobService(repos *repo.Repositories, notifier Notifier, m *metrics.Collector) *JobService {
	return &JobService{
		jobRepo:  repos.Job,
		userRepo: repos.User,
		notifier: notifier,
		metrics:  m,
	}
}

func (s *JobService) CreateJob(ctx context.Context, input *entity.CreateJobInput) (*entity.JobOutputModel, error) {
	if input.Pay <= 0 {
		return nil, ErrInvalidPay
	}

	employer, err := s.userRepo.GetUserById(ctx, input.EmployerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}
	if employer.Role != common.RoleEmployer {
		return nil, ErrNotAnEmployer
	}

	input.Status = common.JobOpen
	id, err := s.jobRepo.CreateJob(ctx, input)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.GetJobById(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, job.EmployerId, common.KindJobPosted,
		fmt.Sprintf("Your job %q has been posted", job.Title))
	if s.metrics != nil {
		s.metrics.JobCreated()
	}

	return mapJob(job), nil
}

func (s *JobService) PlaceBid(ctx context.Context, input *entity.PlaceBidInput) (*entity.BidOutputModel, error) {
	if input.Price <= 0 {
		return nil, ErrInvalidPrice
	}

	bidder, err := s.userRepo.GetUserById(ctx, input.BidderId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}
	if bidder.Role != common.RoleMaid {
		return nil, ErrNotAMaid
	}

	job, err := s.jobRepo.GetJobById(ctx, input.JobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}
	if job.Status != common.JobOpen {
		return nil, ErrJobNotOpen
	}
	for i := range job.Bids {
		if job.Bids[i].BidderId == input.BidderId {
			return nil, ErrDuplicateBid
		}
	}

	message := input.Message
	if message == "" {
		message = common.DefaultBidMessage
	}
	bid := &entity.Bid{
		BidderId: input.BidderId,
		Price:    input.Price,
		Message:  message,
		Status:   common.BidPending,
	}

	if err = s.jobRepo.AddBid(ctx, input.JobId, bid); err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrJobNotFound
		case errors.Is(err, repo_errors.ErrConflict):
			return nil, ErrJobNotOpen
		}

		return nil, err
	}

	s.notifier.Notify(ctx, job.EmployerId, common.KindBidPlaced,
		fmt.Sprintf("%s placed a bid on %q", bidder.Name, job.Title))
	if s.metrics != nil {
		s.metrics.BidPlaced()
	}

	out := mapBid(bid)
	out.BidderName = bidder.Name

	return out, nil
}

// AcceptBid applies the hire transition as a single step: the chosen bid
// becomes Accepted, every other bid is terminally Rejected and the job
// moves to Hired. There is no re-opening afterwards.
func (s *JobService) AcceptBid(ctx context.Context, jobId string, bidIndex int, requesterId string) (*entity.JobOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}
	if job.EmployerId != requesterId {
		return nil, ErrNotJobOwner
	}
	if job.Status != common.JobOpen {
		return nil, ErrJobNotOpen
	}
	if bidIndex < 0 || bidIndex >= len(job.Bids) {
		return nil, ErrBidNotFound
	}

	bidderId := job.Bids[bidIndex].BidderId
	if err = s.jobRepo.HireBidder(ctx, jobId, bidIndex, bidderId); err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrBidNotFound
		case errors.Is(err, repo_errors.ErrConflict):
			return nil, ErrJobNotOpen
		}

		return nil, err
	}

	job, err = s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, bidderId, common.KindHired,
		fmt.Sprintf("Congratulations! Your bid for %q was accepted", job.Title))
	if s.metrics != nil {
		s.metrics.BidAccepted()
	}

	return mapJob(job), nil
}

// CompleteJob moves a Hired job to Completed. Only the hired bidder may
// mark a job complete, and the check lives here rather than in the UI.
func (s *JobService) CompleteJob(ctx context.Context, jobId string, requesterId string) (*entity.JobOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}
	if job.Status != common.JobHired {
		return nil, ErrJobNotHired
	}
	if job.HiredBidderId != requesterId {
		return nil, ErrNotHiredBidder
	}

	if err = s.jobRepo.CompleteJob(ctx, jobId); err != nil {
		switch {
		case errors.Is(err, repo_errors.ErrNotFound):
			return nil, ErrJobNotFound
		case errors.Is(err, repo_errors.ErrConflict):
			return nil, ErrJobNotHired
		}

		return nil, err
	}

	job, err = s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		return nil, err
	}

	// Employer first, then the escrow release to the bidder.
	s.notifier.Notify(ctx, job.EmployerId, common.KindJobCompleted,
		fmt.Sprintf("%s marked %q as completed", s.userName(ctx, requesterId), job.Title))
	s.notifier.Notify(ctx, job.HiredBidderId, common.KindPaymentReleased,
		fmt.Sprintf("Payment for %q has been released from escrow", job.Title))
	if s.metrics != nil {
		s.metrics.JobCompleted()
	}

	return mapJob(job), nil
}

func (s *JobService) GetJobById(ctx context.Context, jobId string) (*entity.JobOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	return mapJob(job), nil
}

func (s *JobService) GetJobs(ctx context.Context, filter *entity.JobFilter, pg *entity.PaginationInput) ([]entity.JobOutputModel, error) {
	jobs, err := s.jobRepo.GetJobs(ctx, filter, pg)
	if err != nil {
		return nil, err
	}

	return mapJobs(jobs), nil
}

// GetUserJobs renders the dashboard view: employers see their own
// postings, maids see every open job plus the ones they were hired for.
func (s *JobService) GetUserJobs(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.JobOutputModel, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	if user.Role == common.RoleEmployer {
		jobs, err := s.jobRepo.GetJobsByEmployerId(ctx, userId, pg)
		if err != nil {
			return nil, err
		}

		return mapJobs(jobs), nil
	}

	open, err := s.jobRepo.GetJobs(ctx, &entity.JobFilter{Status: common.JobOpen}, nil)
	if err != nil {
		return nil, err
	}
	hired, err := s.jobRepo.GetJobsByHiredBidderId(ctx, userId, nil)
	if err != nil {
		return nil, err
	}

	jobs := append(open, hired...)
	if pg != nil {
		from, to := pg.Slice(len(jobs))
		jobs = jobs[from:to]
	}

	return mapJobs(jobs), nil
}

func (s *JobService) userName(ctx context.Context, userId string) string {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		return userId
	}

	return user.Name
}
