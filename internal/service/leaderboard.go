package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/metrics"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/repo/repo_errors"
)

// LeaderboardService ranks maids and handles direct offers. An offer gets
// a simulated response after a fixed delay; the timers are owned here so
// they can be cancelled on shutdown and never fire into a torn-down app.
type LeaderboardService struct {
	userRepo  repo.User
	offerRepo repo.Offer
	notifier  Notifier
	metrics   *metrics.Collector
	log       *slog.Logger

	delay    time.Duration
	randIntn func(n int) int

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

func NewLeaderboardService(repos *repo.Repositories, notifier Notifier, m *metrics.Collector, log *slog.Logger, delay time.Duration) *LeaderboardService {
	return &LeaderboardService{
		userRepo:  repos.User,
		offerRepo: repos.Offer,
		notifier:  notifier,
		metrics:   m,
		log:       log,
		delay:     delay,
		randIntn:  rand.Intn,
		timers:    make(map[string]*time.Timer),
	}
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context, community string) (*entity.LeaderboardOutputModel, error) {
	maids, err := s.userRepo.GetUsersByRole(ctx, common.RoleMaid)
	if err != nil {
		return nil, err
	}

	top := make([]entity.LeaderboardEntry, 0)
	doNotHire := make([]entity.DoNotHireEntry, 0)
	for i := range maids {
		m := &maids[i]
		if m.Flagged {
			// Flagged profiles are always shown, regardless of the
			// community filter.
			doNotHire = append(doNotHire, entity.DoNotHireEntry{
				UserId: m.Id,
				Name:   m.Name,
				Avatar: m.Avatar,
				Reason: m.FlagReason,
			})

			continue
		}
		if community != "" && m.Community != community {
			continue
		}
		top = append(top, entity.LeaderboardEntry{
			UserId:        m.Id,
			Name:          m.Name,
			Avatar:        m.Avatar,
			Community:     m.Community,
			Rating:        m.Rating,
			CompletedJobs: m.CompletedJobs,
			Rep:           m.Rep,
			Badges:        m.Badges,
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		if top[i].Rating != top[j].Rating {
			return top[i].Rating > top[j].Rating
		}

		return top[i].CompletedJobs > top[j].CompletedJobs
	})
	for i := range top {
		top[i].Rank = i + 1
	}

	return &entity.LeaderboardOutputModel{TopMaids: top, DoNotHire: doNotHire}, nil
}

func (s *LeaderboardService) SendOffer(ctx context.Context, employerId string, maidId string) (*entity.OfferOutputModel, error) {
	employer, err := s.userRepo.GetUserById(ctx, employerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}
	if employer.Role != common.RoleEmployer {
		return nil, ErrNotAnEmployer
	}

	maid, err := s.userRepo.GetUserById(ctx, maidId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}
	if maid.Role != common.RoleMaid {
		return nil, ErrNotAMaid
	}

	if _, err := s.offerRepo.GetPendingOffer(ctx, employerId, maidId); err == nil {
		return nil, ErrOfferAlreadyPending
	} else if !errors.Is(err, repo_errors.ErrNotFound) {
		return nil, err
	}

	offer := &entity.Offer{
		EmployerId: employerId,
		MaidId:     maidId,
		Status:     common.OfferPending,
	}
	if err = s.offerRepo.CreateOffer(ctx, offer); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, maidId, common.KindOfferSent,
		fmt.Sprintf("%s sent you a job offer", employer.Name))
	s.notifier.Notify(ctx, employerId, common.KindOfferSent,
		fmt.Sprintf("Offer sent to %s", maid.Name))
	if s.metrics != nil {
		s.metrics.OfferSent()
	}

	s.scheduleResponse(offer.Id, employerId, maid.Name)

	return mapOffer(offer), nil
}

func (s *LeaderboardService) GetOfferById(ctx context.Context, offerId string) (*entity.OfferOutputModel, error) {
	offer, err := s.offerRepo.GetOfferById(ctx, offerId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrOfferNotFound
		}

		return nil, err
	}

	return mapOffer(offer), nil
}

func (s *LeaderboardService) scheduleResponse(offerId string, employerId string, maidName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.timers[offerId] = time.AfterFunc(s.delay, func() {
		s.resolveOffer(offerId, employerId, maidName)
	})
}

func (s *LeaderboardService) resolveOffer(offerId string, employerId string, maidName string) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()

		return
	}
	delete(s.timers, offerId)
	outcome := []string{common.OfferAccepted, common.OfferDeclined, common.OfferCountered}[s.randIntn(3)]
	s.mu.Unlock()

	ctx := context.Background()
	if err := s.offerRepo.UpdateOfferStatus(ctx, offerId, outcome); err != nil {
		s.log.Warn("failed to resolve offer",
			slog.String("offer", offerId), slog.String("error", err.Error()))

		return
	}

	if outcome == common.OfferAccepted {
		s.notifier.Notify(ctx, employerId, common.KindOfferResponse,
			fmt.Sprintf("%s accepted your offer!", maidName))
	}
	s.log.Info("offer resolved",
		slog.String("offer", offerId), slog.String("outcome", outcome))
}

// Shutdown cancels every pending offer response. Safe to call more than
// once; a callback that already started is kept out by the closed flag.
func (s *LeaderboardService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}
