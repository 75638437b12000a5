package memdb

import (
	"context"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type OfferRepo struct {
	*Store
}

func NewOfferRepo(s *Store) *OfferRepo {
	return &OfferRepo{s}
}

func (r *OfferRepo) CreateOffer(ctx context.Context, o *entity.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if o.Id == "" {
		o.Id = uuid.New().String()
	}
	if o.CreatedAt == "" {
		o.CreatedAt = r.timestamp()
	}

	c := *o
	r.offers[c.Id] = &c
	r.offerOrder = append(r.offerOrder, c.Id)

	return nil
}

func (r *OfferRepo) GetOfferById(ctx context.Context, id string) (*entity.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.offers[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}
	c := *o

	return &c, nil
}

func (r *OfferRepo) GetPendingOffer(ctx context.Context, employerId string, maidId string) (*entity.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.offerOrder {
		o := r.offers[id]
		if o.EmployerId == employerId && o.MaidId == maidId && o.Status == common.OfferPending {
			c := *o

			return &c, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *OfferRepo) UpdateOfferStatus(ctx context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.offers[id]
	if !ok {
		return repo_errors.ErrNotFound
	}
	o.Status = status

	return nil
}
