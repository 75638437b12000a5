package memdb

import (
	"home-connect-api/internal/common"
	"home-connect-api/internal/entity"
)

// seed loads the demo dataset the app starts with in memory mode:
// two employers, five maids, three jobs (one already hired), a few
// forum topics, the moderation history and a pair of reviews.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range []entity.User{
		{
			Id: "e1", Name: "You (Employer)", Email: "you@demo.com", Phone: "+5219981234567",
			Role: common.RoleEmployer, Avatar: "👤", Rep: 20, Premium: true,
			Moderator:     true,
			Community:     "Puerto Cancún",
			Notifications: entity.NotificationPreferences{Email: true, SMS: false},
		},
		{
			Id: "e2", Name: "Juan Pérez", Email: "juan@demo.com", Phone: "+5219987654321",
			Role: common.RoleEmployer, Avatar: "👨‍💼", Rep: 15,
			Community:     "Playa del Carmen",
			Notifications: entity.NotificationPreferences{Email: true, SMS: true},
		},
		{
			Id: "m1", Name: "María González", Email: "maria@demo.com", Phone: "+5219981111111",
			Role: common.RoleMaid, Avatar: "👩‍🦱", Rep: 85, Premium: true,
			Community: "Playa del Carmen", Rating: 4.9, CompletedJobs: 127,
			Badges:        []string{"🥇 Top Rated", "⚡ Quick Response", "🛡️ Verified ID"},
			Notifications: entity.NotificationPreferences{Email: true, SMS: true},
		},
		{
			Id: "m2", Name: "Luis Hernández", Email: "luis@demo.com", Phone: "+5219982222222",
			Role: common.RoleMaid, Avatar: "👨‍🧹", Rep: 72,
			Community: "Cancún", Rating: 4.7, CompletedJobs: 89,
			Badges:        []string{"🧹 Deep Clean Expert", "🏠 Residential Pro"},
			Notifications: entity.NotificationPreferences{Email: false, SMS: true},
		},
		{
			Id: "m3", Name: "Rosa Martínez", Email: "rosa@demo.com", Phone: "+5219983333333",
			Role: common.RoleMaid, Avatar: "👩‍🦳", Rep: 95, Premium: true,
			Community: "Tulum", Rating: 5.0, CompletedJobs: 203,
			Badges:        []string{"🏆 Elite Cleaner", "⭐ Perfect Rating", "🛡️ Background Checked"},
			Notifications: entity.NotificationPreferences{Email: true, SMS: true},
		},
		{
			Id: "m4", Name: "Carmen López", Email: "carmen@demo.com", Phone: "+5219984444444",
			Role: common.RoleMaid, Avatar: "👩", Rep: 68,
			Community: "Cancún", Rating: 4.6, CompletedJobs: 76,
			Badges:        []string{"🧼 Eco-Friendly", "🏢 Office Specialist"},
			Notifications: entity.NotificationPreferences{Email: true, SMS: false},
		},
		{
			Id: "m5", Name: "Ana Rodríguez", Email: "ana@demo.com", Phone: "+5219985555555",
			Role: common.RoleMaid, Avatar: "👩‍🦰", Rep: 58,
			Community: "Playa del Carmen", Rating: 4.4, CompletedJobs: 45,
			Badges:        []string{"🌟 Rising Star", "🏠 Move-in Ready"},
			Notifications: entity.NotificationPreferences{Email: true, SMS: true},
		},
		{
			Id: "m6", Name: "Fake Account", Role: common.RoleMaid, Avatar: "❌",
			Flagged: true, FlagReason: "No-show, fake profile, poor quality",
		},
		{
			Id: "m7", Name: "Unreliable Worker", Role: common.RoleMaid, Avatar: "⚠️",
			Flagged: true, FlagReason: "Multiple no-shows, damaged property",
		},
		{
			Id: "m8", Name: "Scam Profile", Role: common.RoleMaid, Avatar: "🚫",
			Flagged: true, FlagReason: "Fraud attempts, fake reviews, identity theft",
		},
	} {
		s.addUserLocked(&u)
	}

	jobs := []entity.Job{
		{
			Id:          "job-1",
			Title:       "Deep Clean 3-Bedroom House",
			Description: "Need thorough cleaning of 3-bedroom house including bathrooms, kitchen, and living areas. Pet-friendly cleaner preferred.",
			Pay:         1200, Community: "Puerto Cancún", Schedule: "2025-09-15",
			EmployerId: "e1", Status: common.JobOpen,
			Bids: []entity.Bid{
				{Id: "bid-1-1", JobId: "job-1", BidderId: "m1", Price: 1100, Message: "I have 5+ years experience with pet-friendly cleaning!", Status: common.BidPending, SubmittedAt: "2025-09-08T10:30:00Z"},
				{Id: "bid-1-2", JobId: "job-1", BidderId: "m2", Price: 1150, Message: "Available this weekend, can bring eco-friendly supplies", Status: common.BidPending, SubmittedAt: "2025-09-08T11:15:00Z"},
			},
			CreatedAt: "2025-09-07T08:00:00Z",
		},
		{
			Id:          "job-2",
			Title:       "Weekly Office Maintenance",
			Description: "Small office space needs weekly cleaning - desks, bathrooms, kitchen area, and floors.",
			Pay:         800, Community: "Playa del Carmen", Schedule: "2025-09-12",
			EmployerId: "e2", Status: common.JobOpen,
			Bids: []entity.Bid{
				{Id: "bid-2-1", JobId: "job-2", BidderId: "m4", Price: 750, Message: "I specialize in office cleaning, very reliable!", Status: common.BidPending, SubmittedAt: "2025-09-08T09:45:00Z"},
			},
			CreatedAt: "2025-09-07T09:00:00Z",
		},
		{
			Id:          "job-3",
			Title:       "Move-out Cleaning Service",
			Description: "Complete move-out cleaning for 2-bedroom apartment. Need everything spotless for deposit return.",
			Pay:         950, Community: "Tulum", Schedule: "2025-09-20",
			EmployerId: "e1", Status: common.JobHired, HiredBidderId: "m3",
			Bids: []entity.Bid{
				{Id: "bid-3-1", JobId: "job-3", BidderId: "m3", Price: 900, Message: "I guarantee deposit-quality cleaning!", Status: common.BidAccepted, SubmittedAt: "2025-09-07T14:20:00Z"},
				{Id: "bid-3-2", JobId: "job-3", BidderId: "m5", Price: 950, Message: "Available anytime, very thorough", Status: common.BidRejected, SubmittedAt: "2025-09-07T16:30:00Z"},
			},
			CreatedAt: "2025-09-06T12:00:00Z",
		},
	}
	for i := range jobs {
		job := jobs[i]
		s.jobs[job.Id] = &job
		s.jobOrder = append(s.jobOrder, job.Id)
	}

	topics := []entity.ForumTopic{
		{
			Id:        "topic-1",
			Title:     "🏆 Best Maids in Playa del Carmen - Recommendations",
			Content:   "Looking for reliable cleaning service recommendations in Playa del Carmen. Who have you had great experiences with?",
			AuthorId:  "e1",
			Community: "Playa del Carmen",
			Pinned:    true,
			Likes:     12,
			Posts: []entity.ForumPost{
				{Id: "post-1-1", TopicId: "topic-1", AuthorId: "m1", Content: "Thank you for considering me! I've been serving Playa del Carmen for 5+ years with excellent reviews.", CreatedAt: "2025-09-08T09:30:00Z"},
				{Id: "post-1-2", TopicId: "topic-1", AuthorId: "e2", Content: "I highly recommend María! She's cleaned my office weekly for 2 years - always professional and thorough.", CreatedAt: "2025-09-08T10:15:00Z"},
			},
			CreatedAt: "2025-09-06T08:00:00Z",
		},
		{
			Id:        "topic-2",
			Title:     "🛡️ Safety Tips for Employers - Avoid Scams",
			Content:   "As an experienced cleaner, here are red flags to watch for when hiring...",
			AuthorId:  "m3",
			Community: "General",
			Likes:     8,
			Posts: []entity.ForumPost{
				{Id: "post-2-1", TopicId: "topic-2", AuthorId: "e1", Content: "Great advice! Always use the escrow system - it protects both parties.", CreatedAt: "2025-09-07T14:20:00Z"},
			},
			CreatedAt: "2025-09-05T10:00:00Z",
		},
		{
			Id:        "topic-3",
			Title:     "💰 Fair Pricing Discussion - What's Reasonable?",
			Content:   "Let's discuss fair pricing for different types of cleaning jobs in Cancún area...",
			AuthorId:  "m2",
			Community: "Cancún",
			Likes:     15,
			Posts:     []entity.ForumPost{},
			CreatedAt: "2025-09-04T16:00:00Z",
		},
	}
	for i := range topics {
		topic := topics[i]
		s.topics[topic.Id] = &topic
		s.topicOrder = append(s.topicOrder, topic.Id)
	}

	s.logs = []entity.ModerationLog{
		{Id: "log-1", Action: "🛡️ Resolved Dispute #15", Details: "Escrow split 60/40 in favor of employer due to incomplete work", ModeratorId: "e1", Severity: common.SeverityHigh, CreatedAt: "2025-09-08T08:30:00Z"},
		{Id: "log-2", Action: "⚠️ Warning Issued", Details: "User 'Unreliable Worker' warned for multiple no-shows", ModeratorId: "e1", Severity: common.SeverityMedium, CreatedAt: "2025-09-07T16:45:00Z"},
		{Id: "log-3", Action: "🚫 Account Suspended", Details: "Fake Account permanently banned for fraudulent activity", ModeratorId: "e1", Severity: common.SeverityHigh, CreatedAt: "2025-09-07T12:20:00Z"},
		{Id: "log-4", Action: "📌 Topic Pinned", Details: "Pinned 'Best Maids in Playa del Carmen' topic for visibility", ModeratorId: "e1", Severity: common.SeverityLow, CreatedAt: "2025-09-07T09:15:00Z"},
		{Id: "log-5", Action: "✅ Review Verified", Details: "Verified authenticity of 5-star review for Rosa Martínez", ModeratorId: "e1", Severity: common.SeverityLow, CreatedAt: "2025-09-06T18:30:00Z"},
	}

	s.reviews = []entity.Review{
		{Id: "review-1", JobId: "job-3", ReviewerId: "e1", RevieweeId: "m3", Rating: 5, Comment: "Absolutely perfect! Rosa left the apartment spotless and I got my full deposit back. Highly recommend!", Helpful: 12, CreatedAt: "2025-09-06T17:00:00Z"},
		{Id: "review-2", JobId: "job-3", ReviewerId: "m3", RevieweeId: "e1", Rating: 5, Comment: "Great employer! Clear instructions, fair payment, and very respectful. Would work for again.", Helpful: 8, CreatedAt: "2025-09-06T17:15:00Z"},
	}
}
