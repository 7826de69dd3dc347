package components

import (
	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		reservation.NewNightlyPriceCalculator,
		fx.As(new(reservation.PriceCalculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomUseCase,
		commands.NewBookingUseCase,
		commands.NewSubscriberUseCase,
		commands.NewPromotionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRoomQueries,
		queries.NewAvailabilityQueries,
		queries.NewReservationQueries,
		queries.NewRecommendationQueries,
		queries.NewSubscriberQueries,
		queries.NewLoyaltyQueries,
		queries.NewAnalyticsQueries,
	),
)
