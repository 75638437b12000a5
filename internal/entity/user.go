package entity

// NotificationPreferences are the per-channel opt-in flags a user controls
// from the preferences screen.
type NotificationPreferences struct {
	Email bool `json:"email" db:"notify_email"`
	SMS   bool `json:"sms" db:"notify_sms"`
}

// db model
type User struct {
	Id            string                  `json:"id" db:"id"`
	Name          string                  `json:"name" db:"name"`
	Email         string                  `json:"email" db:"email"`
	Phone         string                  `json:"phone" db:"phone"`
	Role          string                  `json:"role" db:"role"`
	Avatar        string                  `json:"avatar" db:"avatar"`
	Rep           int                     `json:"rep" db:"rep"`
	Premium       bool                    `json:"premium" db:"premium"`
	Community     string                  `json:"community" db:"community"`
	Rating        float64                 `json:"rating" db:"rating"`
	CompletedJobs int                     `json:"completedJobs" db:"completed_jobs"`
	Badges        []string                `json:"badges"`
	Notifications NotificationPreferences `json:"notifications"`
	Moderator     bool                    `json:"moderator" db:"moderator"`
	Flagged       bool                    `json:"flagged" db:"flagged"`
	FlagReason    string                  `json:"flagReason" db:"flag_reason"`
}

// controller model
type UserOutputModel struct {
	Id            string   `json:"id"`
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Avatar        string   `json:"avatar"`
	Rep           int      `json:"rep"`
	Premium       bool     `json:"premium"`
	Community     string   `json:"community"`
	Rating        float64  `json:"rating,omitempty"`
	CompletedJobs int      `json:"completedJobs,omitempty"`
	Badges        []string `json:"badges,omitempty"`
}
