package service

import (
	"context"
	"errors"
	"fmt"

	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/repo/repo_errors"
)

var actionIcons = map[string]string{
	common.ActionWarning:      "⚠️",
	common.ActionSuspension:   "🚫",
	common.ActionBan:          "🔨",
	common.ActionVerification: "✅",
	common.ActionDispute:      "🛡️",
}

var actionTexts = map[string]string{
	common.ActionWarning:      "Warning Issued",
	common.ActionSuspension:   "Account Suspended",
	common.ActionBan:          "Account Banned",
	common.ActionVerification: "Profile Verified",
	common.ActionDispute:      "Dispute Resolved",
}

var actionSeverities = map[string]string{
	common.ActionWarning:      common.SeverityMedium,
	common.ActionSuspension:   common.SeverityHigh,
	common.ActionBan:          common.SeverityHigh,
	common.ActionVerification: common.SeverityLow,
	common.ActionDispute:      common.SeverityHigh,
}

type ModerationService struct {
	moderationRepo repo.Moderation
	jobRepo        repo.Job
	userRepo       repo.User
	notifier       Notifier
}

func NewModerationService(repos *repo.Repositories, notifier Notifier) *ModerationService {
	return &ModerationService{
		moderationRepo: repos.Moderation,
		jobRepo:        repos.Job,
		userRepo:       repos.User,
		notifier:       notifier,
	}
}

func (s *ModerationService) TakeAction(ctx context.Context, input *entity.ModerationActionInput) (*entity.ModerationLogOutputModel, error) {
	moderator, err := s.requireModerator(ctx, input.ModeratorId)
	if err != nil {
		return nil, err
	}

	target, err := s.userRepo.GetUserById(ctx, input.TargetUserId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	text, ok := actionTexts[input.ActionType]
	if !ok {
		return nil, ErrUnknownAction
	}

	log := &entity.ModerationLog{
		Action:      fmt.Sprintf("%s %s", actionIcons[input.ActionType], text),
		Details:     fmt.Sprintf("%s - User: %s", input.Reason, target.Name),
		ModeratorId: moderator.Id,
		Severity:    actionSeverities[input.ActionType],
	}
	if err = s.moderationRepo.AddLog(ctx, log); err != nil {
		return nil, err
	}

	// Suspensions and bans put the user on the do-not-hire list.
	if input.ActionType == common.ActionSuspension || input.ActionType == common.ActionBan {
		if err = s.userRepo.SetFlagged(ctx, target.Id, true, input.Reason); err != nil {
			return nil, err
		}
	}

	s.notifier.Notify(ctx, target.Id, common.KindModeratorAction,
		fmt.Sprintf("Moderator action: %s - %s", text, input.Reason))

	return mapLog(log, s.userName(ctx)), nil
}

func (s *ModerationService) GetLogs(ctx context.Context, pg *entity.PaginationInput) ([]entity.ModerationLogOutputModel, error) {
	logs, err := s.moderationRepo.GetLogs(ctx, pg)
	if err != nil {
		return nil, err
	}

	out := make([]entity.ModerationLogOutputModel, 0, len(logs))
	for i := range logs {
		out = append(out, *mapLog(&logs[i], s.userName(ctx)))
	}

	return out, nil
}

func (s *ModerationService) CreateDispute(ctx context.Context, jobId string, raisedById string, description string) (*entity.DisputeOutputModel, error) {
	job, err := s.jobRepo.GetJobById(ctx, jobId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrJobNotFound
		}

		return nil, err
	}

	// The counterparty is whichever side of the job did not raise it.
	var againstId string
	switch raisedById {
	case job.EmployerId:
		againstId = job.HiredBidderId
	case job.HiredBidderId:
		againstId = job.EmployerId
	default:
		return nil, ErrNotJobParticipant
	}

	dispute := &entity.Dispute{
		JobId:       jobId,
		RaisedById:  raisedById,
		AgainstId:   againstId,
		Description: description,
	}
	if err = s.moderationRepo.CreateDispute(ctx, dispute); err != nil {
		return nil, err
	}

	return mapDispute(dispute), nil
}

func (s *ModerationService) ResolveDispute(ctx context.Context, disputeId string, moderatorId string, resolution string) (*entity.DisputeOutputModel, error) {
	moderator, err := s.requireModerator(ctx, moderatorId)
	if err != nil {
		return nil, err
	}

	dispute, err := s.moderationRepo.GetDisputeById(ctx, disputeId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrDisputeNotFound
		}

		return nil, err
	}
	if dispute.Status != common.DisputeOpen {
		return nil, ErrDisputeAlreadyResolved
	}

	if err = s.moderationRepo.ResolveDispute(ctx, disputeId, resolution); err != nil {
		if errors.Is(err, repo_errors.ErrConflict) {
			return nil, ErrDisputeAlreadyResolved
		}

		return nil, err
	}

	log := &entity.ModerationLog{
		Action:      fmt.Sprintf("%s %s", actionIcons[common.ActionDispute], actionTexts[common.ActionDispute]),
		Details:     fmt.Sprintf("%s - Dispute: %s", resolution, disputeId),
		ModeratorId: moderator.Id,
		Severity:    actionSeverities[common.ActionDispute],
	}
	if err = s.moderationRepo.AddLog(ctx, log); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Your dispute has been resolved: %s", resolution)
	s.notifier.Notify(ctx, dispute.RaisedById, common.KindDisputeResolved, message)
	s.notifier.Notify(ctx, dispute.AgainstId, common.KindDisputeResolved, message)

	dispute, err = s.moderationRepo.GetDisputeById(ctx, disputeId)
	if err != nil {
		return nil, err
	}

	return mapDispute(dispute), nil
}

func (s *ModerationService) GetDisputes(ctx context.Context, pg *entity.PaginationInput) ([]entity.DisputeOutputModel, error) {
	disputes, err := s.moderationRepo.GetDisputes(ctx, pg)
	if err != nil {
		return nil, err
	}

	out := make([]entity.DisputeOutputModel, 0, len(disputes))
	for i := range disputes {
		out = append(out, *mapDispute(&disputes[i]))
	}

	return out, nil
}

func (s *ModerationService) requireModerator(ctx context.Context, userId string) (*entity.User, error) {
	user, err := s.userRepo.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}
	if !user.Moderator && user.Role != common.RoleAdmin {
		return nil, ErrNotAModerator
	}

	return user, nil
}

func (s *ModerationService) userName(ctx context.Context) func(string) string {
	return func(userId string) string {
		user, err := s.userRepo.GetUserById(ctx, userId)
		if err != nil {
			return userId
		}

		return user.Name
	}
}
