package memdb

import (
	"context"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type ForumRepo struct {
	*Store
}

func NewForumRepo(s *Store) *ForumRepo {
	return &ForumRepo{s}
}

func cloneTopic(t *entity.ForumTopic) *entity.ForumTopic {
	c := *t
	c.Posts = make([]entity.ForumPost, len(t.Posts))
	copy(c.Posts, t.Posts)

	return &c
}

func (r *ForumRepo) CreateTopic(ctx context.Context, input *entity.CreateTopicInput) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	topic := &entity.ForumTopic{
		Id:        uuid.New().String(),
		Title:     input.Title,
		Content:   input.Content,
		AuthorId:  input.AuthorId,
		Community: input.Community,
		Posts:     make([]entity.ForumPost, 0),
		CreatedAt: r.timestamp(),
	}

	r.topics[topic.Id] = topic
	r.topicOrder = append([]string{topic.Id}, r.topicOrder...)

	return topic.Id, nil
}

func (r *ForumRepo) GetTopicById(ctx context.Context, id string) (*entity.ForumTopic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	topic, ok := r.topics[id]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return cloneTopic(topic), nil
}

// GetTopics lists topics for a community, pinned ones first, otherwise
// newest first. An empty community matches everything.
func (r *ForumRepo) GetTopics(ctx context.Context, community string, pg *entity.PaginationInput) ([]entity.ForumTopic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pinned := make([]entity.ForumTopic, 0)
	rest := make([]entity.ForumTopic, 0)
	for _, id := range r.topicOrder {
		topic := r.topics[id]
		if community != "" && topic.Community != community {
			continue
		}
		if topic.Pinned {
			pinned = append(pinned, *cloneTopic(topic))
		} else {
			rest = append(rest, *cloneTopic(topic))
		}
	}
	matched := append(pinned, rest...)

	if pg == nil {
		return matched, nil
	}
	from, to := pg.Slice(len(matched))

	return matched[from:to], nil
}

func (r *ForumRepo) AddPost(ctx context.Context, topicId string, post *entity.ForumPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	topic, ok := r.topics[topicId]
	if !ok {
		return repo_errors.ErrNotFound
	}

	stored := *post
	stored.Id = uuid.New().String()
	stored.TopicId = topicId
	if stored.CreatedAt == "" {
		stored.CreatedAt = r.timestamp()
	}
	topic.Posts = append(topic.Posts, stored)
	post.Id = stored.Id
	post.TopicId = topicId
	post.CreatedAt = stored.CreatedAt

	return nil
}

func (r *ForumRepo) LikeTopic(ctx context.Context, topicId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	topic, ok := r.topics[topicId]
	if !ok {
		return repo_errors.ErrNotFound
	}
	topic.Likes++

	return nil
}
