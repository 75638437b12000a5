package common

// Job statuses. A job only ever moves forward: Open -> Hired -> Completed.
const (
	JobOpen      = "Open"
	JobHired     = "Hired"
	JobCompleted = "Completed"
)

// Bid statuses. A bid leaves Pending exactly once, when its job is hired.
const (
	BidPending  = "Pending"
	BidAccepted = "Accepted"
	BidRejected = "Rejected"
)

// User roles.
const (
	RoleEmployer = "Employer"
	RoleMaid     = "Maid"
	RoleAdmin    = "Admin"
)

// Offer statuses for the leaderboard direct-offer flow.
const (
	OfferPending   = "Pending"
	OfferAccepted  = "Accepted"
	OfferDeclined  = "Declined"
	OfferCountered = "Countered"
)

// Dispute statuses.
const (
	DisputeOpen     = "Open"
	DisputeResolved = "Resolved"
)

// Notification kinds emitted by the services.
const (
	KindJobPosted       = "job-posted"
	KindBidPlaced       = "bid-placed"
	KindHired           = "hired"
	KindJobCompleted    = "job-completed"
	KindPaymentReleased = "payment-released"
	KindOfferSent       = "offer-sent"
	KindOfferResponse   = "offer-response"
	KindForumReply      = "forum-reply"
	KindTopicPosted     = "topic-posted"
	KindReviewReceived  = "review-received"
	KindModeratorAction = "moderator-action"
	KindDisputeResolved = "dispute-resolved"
)

// Moderator action types.
const (
	ActionWarning      = "warning"
	ActionSuspension   = "suspension"
	ActionBan          = "ban"
	ActionVerification = "verification"
	ActionDispute      = "dispute"
)

// Moderation severities.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// DefaultBidMessage is used when a bidder submits an empty message.
const DefaultBidMessage = "I'm interested in this job!"
