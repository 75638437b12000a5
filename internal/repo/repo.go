package repo

import (
	"context"

	"home-connect-api/internal/entity"
)

type Diagnostics interface {
	Ping() error
}

type User interface {
	GetUserById(ctx context.Context, id string) (*entity.User, error)
	GetUsers(ctx context.Context) ([]entity.User, error)
	GetUsersByRole(ctx context.Context, role string) ([]entity.User, error)
	UpdatePreferences(ctx context.Context, id string, prefs entity.NotificationPreferences) error
	SetFlagged(ctx context.Context, id string, flagged bool, reason string) error
}

type Job interface {
	CreateJob(ctx context.Context, input *entity.CreateJobInput) (string, error)
	GetJobById(ctx context.Context, id string) (*entity.Job, error)
	GetJobs(ctx context.Context, filter *entity.JobFilter, pg *entity.PaginationInput) ([]entity.Job, error)
	GetJobsByEmployerId(ctx context.Context, employerId string, pg *entity.PaginationInput) ([]entity.Job, error)
	GetJobsByHiredBidderId(ctx context.Context, bidderId string, pg *entity.PaginationInput) ([]entity.Job, error)
	AddBid(ctx context.Context, jobId string, bid *entity.Bid) error
	HireBidder(ctx context.Context, jobId string, bidIndex int, bidderId string) error
	CompleteJob(ctx context.Context, jobId string) error
}

type Notification interface {
	AddNotification(ctx context.Context, n *entity.Notification) error
	GetUserNotifications(ctx context.Context, recipientId string, pg *entity.PaginationInput) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string, recipientId string) error
	MarkAllRead(ctx context.Context, recipientId string) error
}

type Forum interface {
	CreateTopic(ctx context.Context, input *entity.CreateTopicInput) (string, error)
	GetTopicById(ctx context.Context, id string) (*entity.ForumTopic, error)
	GetTopics(ctx context.Context, community string, pg *entity.PaginationInput) ([]entity.ForumTopic, error)
	AddPost(ctx context.Context, topicId string, post *entity.ForumPost) error
	LikeTopic(ctx context.Context, topicId string) error
}

type Review interface {
	CreateReview(ctx context.Context, input *entity.CreateReviewInput) (string, error)
	GetReviewById(ctx context.Context, id string) (*entity.Review, error)
	GetReviewsByRevieweeId(ctx context.Context, revieweeId string, pg *entity.PaginationInput) ([]entity.Review, error)
	HasReviewed(ctx context.Context, jobId string, reviewerId string) (bool, error)
}

type Moderation interface {
	AddLog(ctx context.Context, log *entity.ModerationLog) error
	GetLogs(ctx context.Context, pg *entity.PaginationInput) ([]entity.ModerationLog, error)
	CreateDispute(ctx context.Context, d *entity.Dispute) error
	GetDisputeById(ctx context.Context, id string) (*entity.Dispute, error)
	GetDisputes(ctx context.Context, pg *entity.PaginationInput) ([]entity.Dispute, error)
	ResolveDispute(ctx context.Context, id string, resolution string) error
}

type Offer interface {
	CreateOffer(ctx context.Context, o *entity.Offer) error
	GetOfferById(ctx context.Context, id string) (*entity.Offer, error)
	GetPendingOffer(ctx context.Context, employerId string, maidId string) (*entity.Offer, error)
	UpdateOfferStatus(ctx context.Context, id string, status string) error
}

type Repositories struct {
	Diagnostics
	User
	Job
	Notification
	Forum
	Review
	Moderation
	Offer
}
