package entity

// db model
type ForumTopic struct {
	Id        string      `json:"id" db:"id"`
	Title     string      `json:"title" db:"title"`
	Content   string      `json:"content" db:"content"`
	AuthorId  string      `json:"authorId" db:"author_id"`
	Community string      `json:"community" db:"community"`
	Pinned    bool        `json:"pinned" db:"pinned"`
	Likes     int         `json:"likes" db:"likes"`
	Posts     []ForumPost `json:"posts"`
	CreatedAt string      `json:"createdAt" db:"created_at"`
}

type ForumPost struct {
	Id        string `json:"id" db:"id"`
	TopicId   string `json:"topicId" db:"topic_id"`
	AuthorId  string `json:"authorId" db:"author_id"`
	Content   string `json:"content" db:"content"`
	CreatedAt string `json:"createdAt" db:"created_at"`
}

// service input model
type CreateTopicInput struct {
	Title     string // given
	Content   string // given
	AuthorId  string // given
	Community string // given
	// Id sets automatically
	// CreatedAt sets automatically
}

// controller models
type ForumTopicOutputModel struct {
	Id         string                 `json:"id"`
	Title      string                 `json:"title"`
	Content    string                 `json:"content"`
	AuthorId   string                 `json:"authorId"`
	AuthorName string                 `json:"authorName,omitempty"`
	Community  string                 `json:"community"`
	Pinned     bool                   `json:"pinned"`
	Likes      int                    `json:"likes"`
	Posts      []ForumPostOutputModel `json:"posts"`
	CreatedAt  string                 `json:"createdAt"`
}

type ForumPostOutputModel struct {
	Id         string `json:"id"`
	AuthorId   string `json:"authorId"`
	AuthorName string `json:"authorName,omitempty"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}
