package pgdb

import (
	"context"
	"database/sql"
	"errors"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"
	"home-connect-api/pkg/postgres"

	"github.com/lib/pq"
)

type UserRepo struct {
	*postgres.Postgres
}

func NewUserRepo(pg *postgres.Postgres) *UserRepo {
	return &UserRepo{pg}
}

const userColumns = "id, name, email, phone, role, avatar, rep, premium, community, rating, completed_jobs, badges, notify_email, notify_sms, moderator, flagged, coalesce(flag_reason, '')"

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	var badges pq.StringArray
	err := row.Scan(&user.Id, &user.Name, &user.Email, &user.Phone, &user.Role,
		&user.Avatar, &user.Rep, &user.Premium, &user.Community, &user.Rating,
		&user.CompletedJobs, &badges, &user.Notifications.Email, &user.Notifications.SMS,
		&user.Moderator, &user.Flagged, &user.FlagReason)
	if err != nil {
		return nil, err
	}
	user.Badges = []string(badges)

	return &user, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func (r *UserRepo) GetUserById(ctx context.Context, id string) (*entity.User, error) {
	getUserReq, args, _ := r.SqlBuilder.
		Select(userColumns).
		From("app_user").
		Where("id = ?", id).
		ToSql()

	user, err := scanUser(r.Database.QueryRowContext(ctx, getUserReq, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo_errors.ErrNotFound
		}

		return nil, err
	}

	return user, nil
}

func (r *UserRepo) GetUsers(ctx context.Context) ([]entity.User, error) {
	return r.queryUsers(ctx, "")
}

func (r *UserRepo) GetUsersByRole(ctx context.Context, role string) ([]entity.User, error) {
	return r.queryUsers(ctx, role)
}

func (r *UserRepo) queryUsers(ctx context.Context, role string) ([]entity.User, error) {
	query := r.SqlBuilder.
		Select(userColumns).
		From("app_user").
		OrderBy("id")
	if role != "" {
		query = query.Where("role = ?", role)
	}

	getUsersReq, args, _ := query.ToSql()
	rows, err := r.Database.QueryContext(ctx, getUsersReq, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entity.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}

	return users, rows.Err()
}

func (r *UserRepo) UpdatePreferences(ctx context.Context, id string, prefs entity.NotificationPreferences) error {
	updateReq, args, _ := r.SqlBuilder.
		Update("app_user").
		Set("notify_email", prefs.Email).
		Set("notify_sms", prefs.SMS).
		Where("id = ?", id).
		ToSql()

	res, err := r.Database.ExecContext(ctx, updateReq, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}

func (r *UserRepo) SetFlagged(ctx context.Context, id string, flagged bool, reason string) error {
	updateReq, args, _ := r.SqlBuilder.
		Update("app_user").
		Set("flagged", flagged).
		Set("flag_reason", reason).
		Where("id = ?", id).
		ToSql()

	res, err := r.Database.ExecContext(ctx, updateReq, args...)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repo_errors.ErrNotFound
	}

	return nil
}
