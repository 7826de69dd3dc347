package request

import (
	"math"

	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Number      int     `json:"number" binding:"required,min=1"`
	Type        string  `json:"type" binding:"required,max=64"`
	Price       float64 `json:"price" binding:"min=0"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

// ToInput converts the decimal nightly price to minor units.
func (r *CreateRoomRequest) ToInput() commands.CreateRoomInput {
	return commands.CreateRoomInput{
		Number:      r.Number,
		Type:        r.Type,
		PriceCents:  int64(math.Round(r.Price * 100)),
		Description: patch.Coalesce(r.Description, ""),
	}
}

type StayQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
}

type RecommendationQuery struct {
	StayQuery
	K *int `form:"k" binding:"omitempty,min=1"`
}

// Count returns the requested k or 0, which selects the default.
func (q *RecommendationQuery) Count() int {
	return patch.Coalesce(q.K, 0)
}
