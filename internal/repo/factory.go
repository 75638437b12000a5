package repo

import (
	"home-connect-api/internal/repo/memdb"
	"home-connect-api/internal/repo/pgdb"
	"home-connect-api/pkg/postgres"
)

// NewMemoryRepositories backs everything with the seeded in-memory store.
// This is the reference demo mode.
func NewMemoryRepositories() *Repositories {
	return newMemoryRepositories(memdb.NewSeededStore())
}

// NewEmptyMemoryRepositories is the same store without the demo dataset;
// used by tests.
func NewEmptyMemoryRepositories() *Repositories {
	return newMemoryRepositories(memdb.NewStore())
}

func newMemoryRepositories(s *memdb.Store) *Repositories {
	return &Repositories{
		Diagnostics:  memdb.NewDiagnosticsRepo(s),
		User:         memdb.NewUserRepo(s),
		Job:          memdb.NewJobRepo(s),
		Notification: memdb.NewNotificationRepo(s),
		Forum:        memdb.NewForumRepo(s),
		Review:       memdb.NewReviewRepo(s),
		Moderation:   memdb.NewModerationRepo(s),
		Offer:        memdb.NewOfferRepo(s),
	}
}

// NewPostgresRepositories keeps jobs, users and reviews in the database.
// Notifications, forum, moderation and offers are session-scoped in the
// demo and stay in memory.
func NewPostgresRepositories(p *postgres.Postgres) *Repositories {
	s := memdb.NewStore()

	return &Repositories{
		Diagnostics:  pgdb.NewDiagnosticsRepo(p),
		User:         pgdb.NewUserRepo(p),
		Job:          pgdb.NewJobRepo(p),
		Review:       pgdb.NewReviewRepo(p),
		Notification: memdb.NewNotificationRepo(s),
		Forum:        memdb.NewForumRepo(s),
		Moderation:   memdb.NewModerationRepo(s),
		Offer:        memdb.NewOfferRepo(s),
	}
}
