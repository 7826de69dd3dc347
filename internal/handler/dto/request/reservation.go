package request

import (
	"hotel-booking/internal/pkg/patch"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookRoomRequest leaves date and guest validation to the booking command so
// that both surface as the same domain errors any other caller gets.
type BookRoomRequest struct {
	RoomID   uuid.UUID `json:"room_id" binding:"required"`
	CheckIn  string    `json:"check_in"`
	CheckOut string    `json:"check_out"`
	Guest    string    `json:"guest"`
}

func (r *BookRoomRequest) ToInput() commands.BookRoomInput {
	return commands.BookRoomInput{
		RoomID:   r.RoomID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Guest:    r.Guest,
	}
}

type ListReservationsQuery struct {
	Guest  string `form:"guest" binding:"required"`
	Limit  *int   `form:"limit" binding:"omitempty,min=1"`
	Cursor string `form:"cursor"`
}

func (q *ListReservationsQuery) PageLimit() int {
	return patch.Coalesce(q.Limit, queries.DefaultListLimit)
}
