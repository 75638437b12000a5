package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"
	"home-connect-api/pkg/postgres"

	"github.com/google/uuid"
)

type ReviewRepo struct {
	*postgres.Postgres
}

func NewReviewRepo(pg *postgres.Postgres) *ReviewRepo {
	return &ReviewRepo{pg}
}

func (r *ReviewRepo) CreateReview(ctx context.Context, input *entity.CreateReviewInput) (string, error) {
	reviewId := uuid.New().String()

	createReviewReq, args, _ := r.SqlBuilder.
		Insert("review").
		Columns("id", "job_id", "reviewer_id", "reviewee_id", "rating", "comment").
		Values(reviewId, input.JobId, input.ReviewerId, input.RevieweeId, input.Rating, input.Comment).
		ToSql()

	if _, err := r.Database.ExecContext(ctx, createReviewReq, args...); err != nil {
		return "", err
	}

	return reviewId, nil
}

func (r *ReviewRepo) GetReviewById(ctx context.Context, id string) (*entity.Review, error) {
	getReviewReq, args, _ := r.SqlBuilder.
		Select("id, job_id, reviewer_id, reviewee_id, rating, comment, helpful, created_at").
		From("review").
		Where("id = ?", id).
		ToSql()

	var review entity.Review
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getReviewReq, args...)
	err := row.Scan(&review.Id, &review.JobId, &review.ReviewerId, &review.RevieweeId,
		&review.Rating, &review.Comment, &review.Helpful, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	review.CreatedAt = createdAt.Format(time.RFC3339)

	return &review, nil
}

func (r *ReviewRepo) GetReviewsByRevieweeId(ctx context.Context, revieweeId string, pg *entity.PaginationInput) ([]entity.Review, error) {
	query := r.SqlBuilder.
		Select("id, job_id, reviewer_id, reviewee_id, rating, comment, helpful, created_at").
		From("review").
		Where("reviewee_id = ?", revieweeId).
		OrderBy("created_at desc")
	if pg != nil {
		if pg.Limit > 0 {
			query = query.Limit(uint64(pg.Limit))
		}
		query = query.Offset(uint64(pg.Offset))
	}

	getReviewsReq, args, _ := query.ToSql()
	rows, err := r.Database.QueryContext(ctx, getReviewsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]entity.Review, 0)
	for rows.Next() {
		var review entity.Review
		var createdAt time.Time
		err = rows.Scan(&review.Id, &review.JobId, &review.ReviewerId, &review.RevieweeId,
			&review.Rating, &review.Comment, &review.Helpful, &createdAt)
		if err != nil {
			return nil, err
		}
		review.CreatedAt = createdAt.Format(time.RFC3339)
		reviews = append(reviews, review)
	}

	return reviews, rows.Err()
}

func (r *ReviewRepo) HasReviewed(ctx context.Context, jobId string, reviewerId string) (bool, error) {
	hasReviewedReq, args, _ := r.SqlBuilder.
		Select("1").
		From("review").
		Where("job_id = ? and reviewer_id = ?", jobId, reviewerId).
		ToSql()

	var one int
	err := r.Database.QueryRowContext(ctx, hasReviewedReq, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}
