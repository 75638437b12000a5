package entity

// db model
type Review struct {
	Id         string `json:"id" db:"id"`
	JobId      string `json:"jobId" db:"job_id"`
	ReviewerId string `json:"reviewerId" db:"reviewer_id"`
	RevieweeId string `json:"revieweeId" db:"reviewee_id"`
	Rating     int    `json:"rating" db:"rating"`
	Comment    string `json:"comment" db:"comment"`
	Helpful    int    `json:"helpful" db:"helpful"`
	CreatedAt  string `json:"createdAt" db:"created_at"`
}

// service input model
type CreateReviewInput struct {
	JobId      string // given
	ReviewerId string // given
	RevieweeId string // given
	Rating     int    // given, 1..5
	Comment    string // given
	// Id sets automatically
	// CreatedAt sets automatically
}

// controller model
type ReviewOutputModel struct {
	Id           string `json:"id"`
	JobId        string `json:"jobId"`
	ReviewerId   string `json:"reviewerId"`
	ReviewerName string `json:"reviewerName,omitempty"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Helpful      int    `json:"helpful"`
	CreatedAt    string `json:"createdAt"`
}
