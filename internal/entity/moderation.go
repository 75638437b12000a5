package entity

// db model
type ModerationLog struct {
	Id          string `json:"id" db:"id"`
	Action      string `json:"action" db:"action"`
	Details     string `json:"details" db:"details"`
	ModeratorId string `json:"moderatorId" db:"moderator_id"`
	Severity    string `json:"severity" db:"severity"`
	CreatedAt   string `json:"createdAt" db:"created_at"`
}

// db model
type Dispute struct {
	Id          string `json:"id" db:"id"`
	JobId       string `json:"jobId" db:"job_id"`
	RaisedById  string `json:"raisedById" db:"raised_by_id"`
	AgainstId   string `json:"againstId" db:"against_id"`
	Description string `json:"description" db:"description"`
	Status      string `json:"status" db:"status"`
	Resolution  string `json:"resolution" db:"resolution"`
	CreatedAt   string `json:"createdAt" db:"created_at"`
}

// service input model
type ModerationActionInput struct {
	ModeratorId  string // given
	TargetUserId string // given
	ActionType   string // given, one of common.Action*
	Reason       string // given
}

// controller models
type ModerationLogOutputModel struct {
	Id        string `json:"id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
	Moderator string `json:"moderator"`
	Severity  string `json:"severity"`
	CreatedAt string `json:"createdAt"`
}

type DisputeOutputModel struct {
	Id          string `json:"id"`
	JobId       string `json:"jobId"`
	RaisedById  string `json:"raisedById"`
	AgainstId   string `json:"againstId"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Resolution  string `json:"resolution,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
