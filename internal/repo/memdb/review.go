package memdb

import (
	"context"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ReviewRepo struct {
	*Store
}

func NewReviewRepo(s *Store) *ReviewRepo {
	return &ReviewRepo{s}
}

func (r *ReviewRepo) CreateReview(ctx context.Context, input *entity.CreateReviewInput) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	review := entity.Review{
		Id:         uuid.New().String(),
		JobId:      input.JobId,
		ReviewerId: input.ReviewerId,
		RevieweeId: input.RevieweeId,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  r.timestamp(),
	}
	r.reviews = append([]entity.Review{review}, r.reviews...)

	return review.Id, nil
}

func (r *ReviewRepo) GetReviewById(ctx context.Context, id string) (*entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, review := range r.reviews {
		if review.Id == id {
			c := review

			return &c, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *ReviewRepo) GetReviewsByRevieweeId(ctx context.Context, revieweeId string, pg *entity.PaginationInput) ([]entity.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Review, 0)
	for _, review := range r.reviews {
		if review.RevieweeId == revieweeId {
			matched = append(matched, review)
		}
	}

	if pg == nil {
		return matched, nil
	}
	from, to := pg.Slice(len(matched))

	return matched[from:to], nil
}

func (r *ReviewRepo) HasReviewed(ctx context.Context, jobId string, reviewerId string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, review := range r.reviews {
		if review.JobId == jobId && review.ReviewerId == reviewerId {
			return true, nil
		}
	}

	return false, nil
}
