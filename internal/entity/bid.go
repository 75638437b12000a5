package entity

// db model
type Bid struct {
	Id          string `json:"id" db:"id"`
	JobId       string `json:"jobId" db:"job_id"`
	BidderId    string `json:"bidderId" db:"bidder_id"`
	Price       int    `json:"price" db:"price"`
	Message     string `json:"message" db:"message"`
	Status      string `json:"status" db:"status"`
	SubmittedAt string `json:"submittedAt" db:"submitted_at"`
}

// service input model
type PlaceBidInput struct {
	JobId    string // given
	BidderId string // given
	Price    int    // given
	Message  string // given, defaults to common.DefaultBidMessage when empty
	Status   string // should be set: "Pending"
	// Id sets automatically
	// SubmittedAt sets automatically
}

// controller model
type BidOutputModel struct {
	Id          string `json:"id"`
	BidderId    string `json:"bidderId"`
	BidderName  string `json:"bidderName,omitempty"`
	Price       int    `json:"price"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	SubmittedAt string `json:"submittedAt"`
}
