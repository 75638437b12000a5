package entity

// db model
type Job struct {
	Id            string `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Description   string `json:"description" db:"description"`
	Pay           int    `json:"pay" db:"pay"`
	Community     string `json:"community" db:"community"`
	Schedule      string `json:"schedule" db:"schedule"`
	EmployerId    string `json:"employerId" db:"employer_id"`
	Status        string `json:"status" db:"status"`
	HiredBidderId string `json:"hiredBidderId" db:"hired_bidder_id"`
	Bids          []Bid  `json:"bids"`
	CreatedAt     string `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateJobInput struct {
	Title       string // given
	Description string // given
	Pay         int    // given
	Community   string // given
	Schedule    string // given
	EmployerId  string // given
	Status      string // should be set: "Open"
	// Id sets automatically
	// CreatedAt sets automatically
}

// repo filter for job listing
type JobFilter struct {
	Community string
	Status    string
}

// controller model
type JobOutputModel struct {
	Id            string           `json:"id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Pay           int              `json:"pay"`
	Community     string           `json:"community"`
	Schedule      string           `json:"schedule"`
	EmployerId    string           `json:"employerId"`
	Status        string           `json:"status"`
	HiredBidderId string           `json:"hiredBidderId,omitempty"`
	Bids          []BidOutputModel `json:"bids"`
	CreatedAt     string           `json:"createdAt"`
}
