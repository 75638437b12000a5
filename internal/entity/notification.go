package entity

// db model
type Notification struct {
	Id          string `json:"id" db:"id"`
	RecipientId string `json:"recipientId" db:"recipient_id"`
	Kind        string `json:"kind" db:"kind"`
	Icon        string `json:"icon" db:"icon"`
	Message     string `json:"message" db:"message"`
	Read        bool   `json:"read" db:"read"`
	CreatedAt   string `json:"createdAt" db:"created_at"`
}

// controller model
type NotificationOutputModel struct {
	Id        string `json:"id"`
	Kind      string `json:"kind"`
	Icon      string `json:"icon"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"createdAt"`
}
