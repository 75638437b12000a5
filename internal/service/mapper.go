package service

import (
	"home-connect-api/internal/entity"
)

func mapJob(j *entity.Job) *entity.JobOutputModel {
	return &entity.JobOutputModel{
		Id:            j.Id,
		Title:         j.Title,
		Description:   j.Description,
		Pay:           j.Pay,
		Community:     j.Community,
		Schedule:      j.Schedule,
		EmployerId:    j.EmployerId,
		Status:        j.Status,
		HiredBidderId: j.HiredBidderId,
		Bids:          mapBids(j.Bids),
		CreatedAt:     j.CreatedAt,
	}
}

func mapJobs(jobs []entity.Job) []entity.JobOutputModel {
	s := make([]entity.JobOutputModel, 0)
	for i := range jobs {
		s = append(s, *mapJob(&jobs[i]))
	}

	return s
}

func mapBid(b *entity.Bid) *entity.BidOutputModel {
	return &entity.BidOutputModel{
		Id:          b.Id,
		BidderId:    b.BidderId,
		Price:       b.Price,
		Message:     b.Message,
		Status:      b.Status,
		SubmittedAt: b.SubmittedAt,
	}
}

func mapBids(bids []entity.Bid) []entity.BidOutputModel {
	s := make([]entity.BidOutputModel, 0)
	for i := range bids {
		s = append(s, *mapBid(&bids[i]))
	}

	return s
}

func mapUser(u *entity.User) *entity.UserOutputModel {
	return &entity.UserOutputModel{
		Id:            u.Id,
		Name:          u.Name,
		Role:          u.Role,
		Avatar:        u.Avatar,
		Rep:           u.Rep,
		Premium:       u.Premium,
		Community:     u.Community,
		Rating:        u.Rating,
		CompletedJobs: u.CompletedJobs,
		Badges:        u.Badges,
	}
}

func mapNotification(n *entity.Notification) *entity.NotificationOutputModel {
	return &entity.NotificationOutputModel{
		Id:        n.Id,
		Kind:      n.Kind,
		Icon:      n.Icon,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

func mapTopic(t *entity.ForumTopic, nameOf func(string) string) *entity.ForumTopicOutputModel {
	posts := make([]entity.ForumPostOutputModel, 0)
	for i := range t.Posts {
		p := &t.Posts[i]
		posts = append(posts, entity.ForumPostOutputModel{
			Id:         p.Id,
			AuthorId:   p.AuthorId,
			AuthorName: nameOf(p.AuthorId),
			Content:    p.Content,
			CreatedAt:  p.CreatedAt,
		})
	}

	return &entity.ForumTopicOutputModel{
		Id:         t.Id,
		Title:      t.Title,
		Content:    t.Content,
		AuthorId:   t.AuthorId,
		AuthorName: nameOf(t.AuthorId),
		Community:  t.Community,
		Pinned:     t.Pinned,
		Likes:      t.Likes,
		Posts:      posts,
		CreatedAt:  t.CreatedAt,
	}
}

func mapReview(r *entity.Review, nameOf func(string) string) *entity.ReviewOutputModel {
	return &entity.ReviewOutputModel{
		Id:           r.Id,
		JobId:        r.JobId,
		ReviewerId:   r.ReviewerId,
		ReviewerName: nameOf(r.ReviewerId),
		Rating:       r.Rating,
		Comment:      r.Comment,
		Helpful:      r.Helpful,
		CreatedAt:    r.CreatedAt,
	}
}

func mapLog(l *entity.ModerationLog, nameOf func(string) string) *entity.ModerationLogOutputModel {
	return &entity.ModerationLogOutputModel{
		Id:        l.Id,
		Action:    l.Action,
		Details:   l.Details,
		Moderator: nameOf(l.ModeratorId),
		Severity:  l.Severity,
		CreatedAt: l.CreatedAt,
	}
}

func mapDispute(d *entity.Dispute) *entity.DisputeOutputModel {
	return &entity.DisputeOutputModel{
		Id:          d.Id,
		JobId:       d.JobId,
		RaisedById:  d.RaisedById,
		AgainstId:   d.AgainstId,
		Description: d.Description,
		Status:      d.Status,
		Resolution:  d.Resolution,
		CreatedAt:   d.CreatedAt,
	}
}

func mapOffer(o *entity.Offer) *entity.OfferOutputModel {
	return &entity.OfferOutputModel{
		Id:         o.Id,
		EmployerId: o.EmployerId,
		MaidId:     o.MaidId,
		Status:     o.Status,
		CreatedAt:  o.CreatedAt,
	}
}
