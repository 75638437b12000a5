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

type ForumService struct {
	forumRepo repo.Forum
	userRepo  repo.User
	notifier  Notifier
}

func NewForumService(repos *repo.Repositories, notifier Notifier) *ForumService {
	return &ForumService{
		forumRepo: repos.Forum,
		userRepo:  repos.User,
		notifier:  notifier,
	}
}

func (s *ForumService) GetTopics(ctx context.Context, community string, pg *entity.PaginationInput) ([]entity.ForumTopicOutputModel, error) {
	topics, err := s.forumRepo.GetTopics(ctx, community, pg)
	if err != nil {
		return nil, err
	}

	out := make([]entity.ForumTopicOutputModel, 0, len(topics))
	for i := range topics {
		out = append(out, *mapTopic(&topics[i], s.userName(ctx)))
	}

	return out, nil
}

func (s *ForumService) CreateTopic(ctx context.Context, input *entity.CreateTopicInput) (*entity.ForumTopicOutputModel, error) {
	author, err := s.userRepo.GetUserById(ctx, input.AuthorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	id, err := s.forumRepo.CreateTopic(ctx, input)
	if err != nil {
		return nil, err
	}

	topic, err := s.forumRepo.GetTopicById(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, author.Id, common.KindTopicPosted,
		fmt.Sprintf("Your topic %q has been posted", topic.Title))

	return mapTopic(topic, s.userName(ctx)), nil
}

func (s *ForumService) AddReply(ctx context.Context, topicId string, authorId string, content string) (*entity.ForumTopicOutputModel, error) {
	author, err := s.userRepo.GetUserById(ctx, authorId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrUserNotFound
		}

		return nil, err
	}

	topic, err := s.forumRepo.GetTopicById(ctx, topicId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTopicNotFound
		}

		return nil, err
	}

	post := &entity.ForumPost{
		TopicId:  topicId,
		AuthorId: authorId,
		Content:  content,
	}
	if err = s.forumRepo.AddPost(ctx, topicId, post); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTopicNotFound
		}

		return nil, err
	}

	if topic.AuthorId != authorId {
		s.notifier.Notify(ctx, topic.AuthorId, common.KindForumReply,
			fmt.Sprintf("%s replied to your topic %q", author.Name, topic.Title))
	}

	topic, err = s.forumRepo.GetTopicById(ctx, topicId)
	if err != nil {
		return nil, err
	}

	return mapTopic(topic, s.userName(ctx)), nil
}

func (s *ForumService) LikeTopic(ctx context.Context, topicId string) (*entity.ForumTopicOutputModel, error) {
	if err := s.forumRepo.LikeTopic(ctx, topicId); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrTopicNotFound
		}

		return nil, err
	}

	topic, err := s.forumRepo.GetTopicById(ctx, topicId)
	if err != nil {
		return nil, err
	}

	return mapTopic(topic, s.userName(ctx)), nil
}

// userName returns a resolver suitable for the mappers. Unknown authors
// fall back to the raw id rather than failing the read.
func (s *ForumService) userName(ctx context.Context) func(string) string {
	return func(userId string) string {
		user, err := s.userRepo.GetUserById(ctx, userId)
		if err != nil {
			return userId
		}

		return user.Name
	}
}
