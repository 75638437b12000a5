package service

import "errors"

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrBidNotFound          = errors.New("no bid at the given index")
	ErrUserNotFound         = errors.New("user not found")
	ErrTopicNotFound        = errors.New("forum topic not found")
	ErrDisputeNotFound      = errors.New("dispute not found")
	ErrOfferNotFound        = errors.New("offer not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrJobNotOpen             = errors.New("job is no longer open")
	ErrJobNotHired            = errors.New("job has no hired bidder yet")
	ErrJobNotCompleted        = errors.New("job is not completed yet")
	ErrDisputeAlreadyResolved = errors.New("dispute is already resolved")

	ErrDuplicateBid        = errors.New("bidder already has a bid on this job")
	ErrOfferAlreadyPending = errors.New("there is already a pending offer for this maid")
	ErrAlreadyReviewed     = errors.New("reviewer already reviewed this job")

	ErrInvalidPay    = errors.New("pay must be a positive amount")
	ErrInvalidPrice  = errors.New("bid price must be a positive amount")
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrUnknownAction = errors.New("unknown moderator action type")

	ErrNotAnEmployer     = errors.New("user is not an employer")
	ErrNotAMaid          = errors.New("user is not a maid")
	ErrNotAModerator     = errors.New("user is not a moderator")
	ErrNotJobOwner       = errors.New("only the job's employer may do this")
	ErrNotHiredBidder    = errors.New("only the hired bidder may do this")
	ErrNotJobParticipant = errors.New("user did not take part in this job")
)
