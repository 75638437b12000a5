package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"
	"home-connect-api/pkg/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type JobRepo struct {
	*postgres.Postgres
}

func NewJobRepo(pg *postgres.Postgres) *JobRepo {
	return &JobRepo{pg}
}

const jobColumns = "id, title, description, pay, community, schedule, employer_id, status, coalesce(hired_bidder_id, ''), created_at"

func (r *JobRepo) CreateJob(ctx context.Context, input *entity.CreateJobInput) (string, error) {
	jobId := uuid.New().String()

	createJobReq, args, _ := r.SqlBuilder.
		Insert("job").
		Columns("id", "title", "description", "pay", "community", "schedule", "employer_id", "status").
		Values(jobId, input.Title, input.Description, input.Pay, input.Community, input.Schedule, input.EmployerId, input.Status).
		ToSql()

	if _, err := r.Database.ExecContext(ctx, createJobReq, args...); err != nil {
		return "", err
	}

	return jobId, nil
}

func (r *JobRepo) GetJobById(ctx context.Context, id string) (*entity.Job, error) {
	getJobReq, args, _ := r.SqlBuilder.
		Select(jobColumns).
		From("job").
		Where("id = ?", id).
		ToSql()

	var job entity.Job
	var createdAt time.Time
	row := r.Database.QueryRowContext(ctx, getJobReq, args...)
	err := row.Scan(&job.Id, &job.Title, &job.Description, &job.Pay, &job.Community,
		&job.Schedule, &job.EmployerId, &job.Status, &job.HiredBidderId, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}
	job.CreatedAt = createdAt.Format(time.RFC3339)

	bids, err := r.getJobBids(ctx, job.Id)
	if err != nil {
		return nil, err
	}
	job.Bids = bids

	return &job, nil
}

func (r *JobRepo) GetJobs(ctx context.Context, filter *entity.JobFilter, pg *entity.PaginationInput) ([]entity.Job, error) {
	query := r.SqlBuilder.
		Select(jobColumns).
		From("job").
		OrderBy("created_at desc")

	if filter != nil && filter.Community != "" {
		query = query.Where("community = ?", filter.Community)
	}
	if filter != nil && filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	return r.queryJobs(ctx, query, pg)
}

func (r *JobRepo) GetJobsByEmployerId(ctx context.Context, employerId string, pg *entity.PaginationInput) ([]entity.Job, error) {
	query := r.SqlBuilder.
		Select(jobColumns).
		From("job").
		Where("employer_id = ?", employerId).
		OrderBy("created_at desc")

	return r.queryJobs(ctx, query, pg)
}

func (r *JobRepo) GetJobsByHiredBidderId(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.Job, error) {
	query := r.SqlBuilder.
		Select(jobColumns).
		From("job").
		Where("hired_bidder_id = ?", bidderId).
		OrderBy("created_at desc")

	return r.queryJobs(ctx, query, pg)
}

func (r *JobRepo) AddBid(ctx context.Context, jobId string, bid *entity.Bid) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	var status string
	statusReq, args, _ := r.SqlBuilder.
		Select("status").
		From("job").
		Where("id = ?", jobId).
		Suffix("FOR UPDATE").
		ToSql()
	if err = tx.QueryRowContext(ctx, statusReq, args...).Scan(&status); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return repo_errors.ErrNotFound
		}

		return err
	}
	if status != common.JobOpen {
		_ = tx.Rollback()

		return repo_errors.ErrConflict
	}

	bid.Id = uuid.New().String()
	bid.JobId = jobId
	submittedAt := time.Now().UTC()

	createBidReq, args, _ := r.SqlBuilder.
		Insert("bid").
		Columns("id", "job_id", "ordinal", "bidder_id", "price", "message", "status", "submitted_at").
		Values(bid.Id, jobId,
			squirrel.Expr("(select count(*) from bid where job_id = ?)", jobId),
			bid.BidderId, bid.Price, bid.Message, bid.Status, submittedAt).
		ToSql()
	if _, err = tx.ExecContext(ctx, createBidReq, args...); err != nil {
		_ = tx.Rollback()

		return err
	}
	bid.SubmittedAt = submittedAt.Format(time.RFC3339)

	return tx.Commit()
}

func (r *JobRepo) HireBidder(ctx context.Context, jobId string, bidIndex int, bidderId string) error {
	tx, err := r.Database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	hireReq, args, _ := r.SqlBuilder.
		Update("job").
		Set("status", common.JobHired).
		Set("hired_bidder_id", bidderId).
		Where("id = ? and status = ?", jobId, common.JobOpen).
		ToSql()
	res, err := tx.ExecContext(ctx, hireReq, args...)
	if err != nil {
		_ = tx.Rollback()

		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()

		return repo_errors.ErrConflict
	}

	relabelReq, args, _ := r.SqlBuilder.
		Update("bid").
		Set("status", squirrel.Expr("case when ordinal = ? then ? else ? end", bidIndex, common.BidAccepted, common.BidRejected)).
		Where("job_id = ?", jobId).
		ToSql()
	if _, err = tx.ExecContext(ctx, relabelReq, args...); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

func (r *JobRepo) CompleteJob(ctx context.Context, jobId string) error {
	completeReq, args, _ := r.SqlBuilder.
		Update("job").
		Set("status", common.JobCompleted).
		Where("id = ? and status = ?", jobId, common.JobHired).
		ToSql()

	res, err := r.Database.ExecContext(ctx, completeReq, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo_errors.ErrConflict
	}

	return nil
}

func (r *JobRepo) queryJobs(ctx context.Context, query squirrel.SelectBuilder, pg *entity.PaginationInput) ([]entity.Job, error) {
	if pg != nil {
		if pg.Limit > 0 {
			query = query.Limit(uint64(pg.Limit))
		}
		query = query.Offset(uint64(pg.Offset))
	}

	getJobsReq, args, _ := query.ToSql()
	rows, err := r.Database.QueryContext(ctx, getJobsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]entity.Job, 0)
	for rows.Next() {
		var job entity.Job
		var createdAt time.Time
		err = rows.Scan(&job.Id, &job.Title, &job.Description, &job.Pay, &job.Community,
			&job.Schedule, &job.EmployerId, &job.Status, &job.HiredBidderId, &createdAt)
		if err != nil {
			return nil, err
		}
		job.CreatedAt = createdAt.Format(time.RFC3339)
		jobs = append(jobs, job)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range jobs {
		bids, err := r.getJobBids(ctx, jobs[i].Id)
		if err != nil {
			return nil, err
		}
		jobs[i].Bids = bids
	}

	return jobs, nil
}

func (r *JobRepo) getJobBids(ctx context.Context, jobId string) ([]entity.Bid, error) {
	getBidsReq, args, _ := r.SqlBuilder.
		Select("id, job_id, bidder_id, price, message, status, submitted_at").
		From("bid").
		Where("job_id = ?", jobId).
		OrderBy("ordinal").
		ToSql()

	rows, err := r.Database.QueryContext(ctx, getBidsReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]entity.Bid, 0)
	for rows.Next() {
		var bid entity.Bid
		var submittedAt time.Time
		err = rows.Scan(&bid.Id, &bid.JobId, &bid.BidderId, &bid.Price, &bid.Message, &bid.Status, &submittedAt)
		if err != nil {
			return nil, err
		}
		bid.SubmittedAt = submittedAt.Format(time.RFC3339)
		bids = append(bids, bid)
	}

	return bids, rows.Err()
}
