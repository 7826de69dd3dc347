package request

type OccupancyQuery struct {
	Date string `form:"date"`
}

// LaunchPromotionRequest targets the night of Date, or today when it is empty.
type LaunchPromotionRequest struct {
	Date string `json:"date"`
}
