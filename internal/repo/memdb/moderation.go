package memdb

import (
	"context"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ModerationRepo struct {
	*Store
}

func NewModerationRepo(s *Store) *ModerationRepo {
	return &ModerationRepo{s}
}

func (r *ModerationRepo) AddLog(ctx context.Context, log *entity.ModerationLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if log.Id == "" {
		log.Id = uuid.New().String()
	}
	if log.CreatedAt == "" {
		log.CreatedAt = r.timestamp()
	}
	r.logs = append([]entity.ModerationLog{*log}, r.logs...)

	return nil
}

func (r *ModerationRepo) GetLogs(ctx context.Context, pg *entity.PaginationInput) ([]entity.ModerationLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := append([]entity.ModerationLog(nil), r.logs...)
	if pg == nil {
		return matched, nil
	}
	from, to := pg.Slice(len(matched))

	return matched[from:to], nil
}

func (r *ModerationRepo) CreateDispute(ctx context.Context, d *entity.Dispute) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d.Id == "" {
		d.Id = uuid.New().String()
	}
	if d.CreatedAt == "" {
		d.CreatedAt = r.timestamp()
	}
	d.Status = common.DisputeOpen

	c := *d
	r.disputes[c.Id] = &c
	r.disputeOrder = append([]string{c.Id}, r.disputeOrder...)

	return nil
}

func (r *ModerationRepo) GetDisputeById(ctx context.Context, id string) (*entity.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.disputes[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	c := *d

	return &c, nil
}

func (r *ModerationRepo) GetDisputes(ctx context.Context, pg *entity.PaginationInput) ([]entity.Dispute, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Dispute, 0, len(r.disputeOrder))
	for _, id := range r.disputeOrder {
		matched = append(matched, *r.disputes[id])
	}

	if pg == nil {
		return matched, nil
	}
	from, to := pg.Slice(len(matched))

	return matched[from:to], nil
}

func (r *ModerationRepo) ResolveDispute(ctx context.Context, id string, resolution string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.disputes[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	if d.Status != common.DisputeOpen {
		return repo_errors.ErrConflict
	}
	d.Status = common.DisputeResolved
	d.Resolution = resolution

	return nil
}
