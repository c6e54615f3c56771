package components

import (
	"servemart/internal/domain/booking"
	"servemart/internal/pkg/clock"
	"servemart/internal/usecase/commands"
	"servemart/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock) *booking.Services {
		return &booking.Services{Clock: clk}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewSweeperCommands,
		commands.NewPaymentCommands,
		commands.NewServiceCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewUserQueries,
		queries.NewServiceQueries,
	),
)
