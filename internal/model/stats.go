package model

// AdminStats is the composite report served on GET /admin-stats
type AdminStats struct {
	TotalRooms          int64   `json:"totalRooms"`
	AgreedRooms         int64   `json:"agreedRooms"`
	AvailableRooms      int64   `json:"availableRooms"`
	AvailablePercentage float64 `json:"availablePercentage"`
	AgreedPercentage    float64 `json:"agreedPercentage"`
	Users               int64   `json:"users"`
	Members             int64   `json:"members"`
}
