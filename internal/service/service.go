package service

import (
	"context"
	"log/slog"
	"time"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/metrics"
	"home-connect-api/internal/notify"
	"home-connect-api/internal/repo"
)

// Notifier is the sink every mutating service hands its events to.
// Fire-and-forget: delivery and persistence of the event is the sink's
// concern, never the emitting operation's.
type Notifier interface {
	Notify(ctx context.Context, recipientId string, kind string, message string)
}

type Diagnostics interface {
	Ping() error
}

type Job interface {
	CreateJob(ctx context.Context, input *entity.CreateJobInput) (*entity.JobOutputModel, error)
	PlaceBid(ctx context.Context, input *entity.PlaceBidInput) (*entity.BidOutputModel, error)
	AcceptBid(ctx context.Context, jobId string, bidIndex int, requesterId string) (*entity.JobOutputModel, error)
	CompleteJob(ctx context.Context, jobId string, requesterId string) (*entity.JobOutputModel, error)

	GetJobById(ctx context.Context, jobId string) (*entity.JobOutputModel, error)
	GetJobs(ctx context.Context, filter *entity.JobFilter, pg *entity.PaginationInput) ([]entity.JobOutputModel, error)
	GetUserJobs(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.JobOutputModel, error)
}

type User interface {
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	GetUsers(ctx context.Context) ([]entity.UserOutputModel, error)
	UpdatePreferences(ctx context.Context, userId string, prefs entity.NotificationPreferences) (*entity.User, error)
}

type Notification interface {
	Notifier
	GetUserNotifications(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.NotificationOutputModel, error)
	MarkRead(ctx context.Context, id string, userId string) error
	MarkAllRead(ctx context.Context, userId string) error
}

type Leaderboard interface {
	GetLeaderboard(ctx context.Context, community string) (*entity.LeaderboardOutputModel, error)
	SendOffer(ctx context.Context, employerId string, maidId string) (*entity.OfferOutputModel, error)
	GetOfferById(ctx context.Context, offerId string) (*entity.OfferOutputModel, error)
	Shutdown()
}

type Forum interface {
	GetTopics(ctx context.Context, community string, pg *entity.PaginationInput) ([]entity.ForumTopicOutputModel, error)
	CreateTopic(ctx context.Context, input *entity.CreateTopicInput) (*entity.ForumTopicOutputModel, error)
	AddReply(ctx context.Context, topicId string, authorId string, content string) (*entity.ForumTopicOutputModel, error)
	LikeTopic(ctx context.Context, topicId string) (*entity.ForumTopicOutputModel, error)
}

type Review interface {
	CreateReview(ctx context.Context, input *entity.CreateReviewInput) (*entity.ReviewOutputModel, error)
	GetUserReviews(ctx context.Context, userId string, pg *entity.PaginationInput) ([]entity.ReviewOutputModel, error)
}

type Moderation interface {
	TakeAction(ctx context.Context, input *entity.ModerationActionInput) (*entity.ModerationLogOutputModel, error)
	GetLogs(ctx context.Context, pg *entity.PaginationInput) ([]entity.ModerationLogOutputModel, error)
	CreateDispute(ctx context.Context, jobId string, raisedById string, description string) (*entity.DisputeOutputModel, error)
	ResolveDispute(ctx context.Context, disputeId string, moderatorId string, resolution string) (*entity.DisputeOutputModel, error)
	GetDisputes(ctx context.Context, pg *entity.PaginationInput) ([]entity.DisputeOutputModel, error)
}

type Services struct {
	Diagnostics  Diagnostics
	Job          Job
	User         User
	Notification Notification
	Leaderboard  Leaderboard
	Forum        Forum
	Review       Review
	Moderation   Moderation
}

// Deps carries everything the services need beyond the repositories.
type Deps struct {
	Repos              *repo.Repositories
	Dispatchers        []notify.Dispatcher
	Metrics            *metrics.Collector
	Logger             *slog.Logger
	OfferResponseDelay time.Duration
}

func NewServices(d *Deps) *Services {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}

	notification := NewNotificationService(d.Repos, d.Dispatchers, d.Metrics, d.Logger)

	return &Services{
		Diagnostics:  NewDiagnosticsService(d.Repos),
		Job:          NewJobService(d.Repos, notification, d.Metrics),
		User:         NewUserService(d.Repos),
		Notification: notification,
		Leaderboard:  NewLeaderboardService(d.Repos, notification, d.Metrics, d.Logger, d.OfferResponseDelay),
		Forum:        NewForumService(d.Repos, notification),
		Review:       NewReviewService(d.Repos, notification),
		Moderation:   NewModerationService(d.Repos, notification),
	}
}
