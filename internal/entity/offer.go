package entity

// db model
type Offer struct {
	Id         string `json:"id" db:"id"`
	EmployerId string `json:"employerId" db:"employer_id"`
	MaidId     string `json:"maidId" db:"maid_id"`
	Status     string `json:"status" db:"status"`
	CreatedAt  string `json:"createdAt" db:"created_at"`
}

// controller model
type OfferOutputModel struct {
	Id         string `json:"id"`
	EmployerId string `json:"employerId"`
	MaidId     string `json:"maidId"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
}

// LeaderboardEntry is a ranked maid row on the leaderboard screen.
type LeaderboardEntry struct {
	Rank          int      `json:"rank"`
	UserId        string   `json:"userId"`
	Name          string   `json:"name"`
	Avatar        string   `json:"avatar"`
	Community     string   `json:"community"`
	Rating        float64  `json:"rating"`
	CompletedJobs int      `json:"completedJobs"`
	Rep           int      `json:"rep"`
	Badges        []string `json:"badges"`
}

// DoNotHireEntry flags a user the moderators marked as unsafe to hire.
type DoNotHireEntry struct {
	UserId string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Reason string `json:"reason"`
}

// controller model for the leaderboard screen
type LeaderboardOutputModel struct {
	TopMaids  []LeaderboardEntry `json:"topMaids"`
	DoNotHire []DoNotHireEntry   `json:"doNotHire"`
}
