package controller

import (
	"net/http"

	"home-connect-api/internal/entity"
	"home-connect-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type forumRoutesHandler struct {
	forumService service.Forum
	validate     *validator.Validate
}

func newForumRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate) *forumRoutesHandler {
	h := &forumRoutesHandler{forumService: services.Forum, validate: v}

	outer.GET("/forum/topics", h.GetTopics)
	outer.POST("/forum/topics/new", h.PostTopic)
	outer.POST("/forum/topics/:topicId/replies", h.PostReply)
	outer.PUT("/forum/topics/:topicId/like", h.LikeTopic)

	return h
}

type getTopicsInput struct {
	Limit     int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset    int32  `query:"offset" validate:"gte=0"`
	Community string `query:"community" validate:"max=100"`
}

func newGetTopicsInput() getTopicsInput {
	return getTopicsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /forum/topics
func (h *forumRoutesHandler) GetTopics(c echo.Context) error {
	var input = newGetTopicsInput()
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	topics, err := h.forumService.GetTopics(c.Request().Context(), input.Community, pg)
	if err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}

		return err
	}
	if e := c.JSON(http.StatusOK, topics); e != nil {
		return e
	}

	return nil
}

type postTopicInput struct {
	Title     string `json:"title" validate:"required,max=200"`
	Content   string `json:"content" validate:"required,max=2000"`
	AuthorId  string `json:"authorId" validate:"required,max=100"`
	Community string `json:"community" validate:"required,max=100"`
}

// /forum/topics/new
func (h *forumRoutesHandler) PostTopic(c echo.Context) error {
	var input postTopicInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateTopicInput{
		Title: input.Title, Content: input.Content,
		AuthorId: input.AuthorId, Community: input.Community,
	}

	topic, err := h.forumService.CreateTopic(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusOK, topic); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type postReplyInput struct {
	TopicId  string `param:"topicId" validate:"required,max=100"`
	AuthorId string `json:"authorId" validate:"required,max=100"`
	Content  string `json:"content" validate:"required,max=2000"`
}

// /forum/topics/:topicId/replies
func (h *forumRoutesHandler) PostReply(c echo.Context) error {
	var input postReplyInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	input.TopicId = c.Param("topicId")
	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	topic, err := h.forumService.AddReply(c.Request().Context(), input.TopicId, input.AuthorId, input.Content)
	if err == nil {
		if e := c.JSON(http.StatusOK, topic); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrTopicNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no topic with given id"}); e != nil {
			return e
		}
	case service.ErrUserNotFound:
		if e := c.JSON(http.StatusUnauthorized, errorResponse{"There is no user with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /forum/topics/:topicId/like
func (h *forumRoutesHandler) LikeTopic(c echo.Context) error {
	topic, err := h.forumService.LikeTopic(c.Request().Context(), c.Param("topicId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, topic); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrTopicNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no topic with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
