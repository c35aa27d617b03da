package components

import (
	"tripmatch/internal/domain/trip"
	"tripmatch/internal/pkg/clock"
	"tripmatch/internal/pkg/config"
	"tripmatch/internal/usecase"
	"tripmatch/internal/usecase/commands"
	"tripmatch/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, size trip.GroupSize) commands.MatchSettings {
		return commands.MatchSettings{
			GroupSize: size,
			Timeout:   cfg.Match.Timeout,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewMatchUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewGroupQueries,
		queries.NewPendingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
