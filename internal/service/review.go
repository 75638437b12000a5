package service

import (
	"context"
	"errors"
	"fmt"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/repo/repo_errors"
)

type ReviewService struct {
	reviewRepo repo.Review
	jobRepo    repo.Job
	userRepo   repo.User
	notifier   Notifier
}

func NewReviewService(repos *repo.Repositories, notifier Notifier) *ReviewService {
	return &ReviewService{
		reviewRepo: repos.Review,
		jobRepo:    repos.Job,
		userRepo:   repos.User,
		notifier:   notifier,
	}
}

func (s *ReviewService) CreateReview(ctx context.Context, input *entity.CreateReviewInput) (*entity.ReviewOutputModel, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}

	job, err := s.jobRepo.GetJobById(ctx, input.JobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}
	if job.Status != common.JobCompleted {
		return nil, ErrJobNotCompleted
	}

	// Only the two parties of a completed job may review each other.
	participants := map[string]bool{job.EmployerId: true, job.HiredBidderId: true}
	if !participants[input.ReviewerId] || !participants[input.RevieweeId] ||
		input.ReviewerId == input.RevieweeId {
		return nil, ErrNotJobParticipant
	}

	reviewed, err := s.reviewRepo.HasReviewed(ctx, input.JobId, input.ReviewerId)
	if err != nil {
		return nil, err
	}
	if reviewed {
		return nil, ErrAlreadyReviewed
	}

	reviewer, err := s.userRepo.GetUserById(ctx, input.ReviewerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	id, err := s.reviewRepo.CreateReview(ctx, input)
	if err != nil {
		if errors.Is(err, repo_errors.ErrAlreadyExists) {
			return nil, ErrAlreadyReviewed
		}

		return nil, err
	}

	review, err := s.reviewRepo.GetReviewById(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, input.RevieweeId, common.KindReviewReceived,
		fmt.Sprintf("%s left you a %d-star review", reviewer.Name, input.Rating))

	return mapReview(review, s.userName(ctx)), nil
}

func (s *ReviewService) GetUserReviews(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.ReviewOutputModel, error) {
	if _, err := s.userRepo.GetUserById(ctx, userId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	reviews, err := s.reviewRepo.GetReviewsByRevieweeId(ctx, userId, pg)
	if err != nil {
		return nil, err
	}

	out := make([]entity.ReviewOutputModel, 0, len(reviews))
	for i := range reviews {
		out = append(out, *mapReview(&reviews[i], s.userName(ctx)))
	}

	return out, nil
}

func (s *ReviewService) userName(ctx context.Context) func(string) string {
	return func(userId string) string {
		user, err := s.userRepo.GetUserById(ctx, userId)
		if err != nil {
			return userId
		}

		return user.Name
	}
}
