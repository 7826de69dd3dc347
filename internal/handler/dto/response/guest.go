package response

import (
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubscriberResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromSubscriberViews(views []*queries.SubscriberView) ([]*SubscriberResponse, error) {
	out := make([]*SubscriberResponse, len(views))
	for i, v := range views {
		out[i] = &SubscriberResponse{}
		if err := copier.Copy(out[i], v); err != nil {
			return nil, errs.Wrap(err, "failed to copy subscriber view")
		}
	}
	return out, nil
}

type SubscribeResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

type LoyaltyResponse struct {
	Guest      string     `json:"guest"`
	Points     int        `json:"points"`
	Tier       string     `json:"tier"`
	PercentOff int        `json:"percent_off"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

func FromLoyaltyAccountView(v *queries.LoyaltyAccountView) (*LoyaltyResponse, error) {
	res := &LoyaltyResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to copy loyalty view")
	}
	return res, nil
}
