package components

import (
	"hotel-booking/internal/handler"
	"hotel-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRoomHandler,
		api.NewReservationHandler,
		api.NewSubscriberHandler,
		api.NewGuestHandler,
		api.NewAnalyticsHandler,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	rooms *api.RoomHandler,
	reservations *api.ReservationHandler,
	subscribers *api.SubscriberHandler,
	guests *api.GuestHandler,
	analytics *api.AnalyticsHandler,
) handler.Handlers {
	return handler.Handlers{
		Rooms:        rooms,
		Reservations: reservations,
		Subscribers:  subscribers,
		Guests:       guests,
		Analytics:    analytics,
	}
}
