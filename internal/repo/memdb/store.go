package memdb

import (
	"sync"
	"time"

	"home-connect-api/internal/entity"
)

// Store is the single in-memory source of truth for the demo dataset.
// Every repository in this package shares it; the RWMutex makes the
// check-then-mutate sequences of the hire/complete transitions atomic
// with respect to concurrent requests.
type Store struct {
	mu sync.RWMutex

	users     map[string]*entity.User
	userOrder []string

	jobs     map[string]*entity.Job
	jobOrder []string // newest first

	notifications []entity.Notification // newest first

	topics     map[string]*entity.ForumTopic
	topicOrder []string // newest first

	reviews []entity.Review // newest first

	logs []entity.ModerationLog // newest first

	disputes     map[string]*entity.Dispute
	disputeOrder []string // newest first

	offers     map[string]*entity.Offer
	offerOrder []string

	clock func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*entity.User),
		jobs:     make(map[string]*entity.Job),
		topics:   make(map[string]*entity.ForumTopic),
		disputes: make(map[string]*entity.Dispute),
		offers:   make(map[string]*entity.Offer),
		clock:    time.Now,
	}
}

// NewSeededStore returns a store pre-populated with the demo dataset.
func NewSeededStore() *Store {
	s := NewStore()
	s.seed()

	return s
}

func (s *Store) timestamp() string {
	return s.clock().UTC().Format(time.RFC3339)
}
