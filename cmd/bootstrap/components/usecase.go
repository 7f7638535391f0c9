package components

import (
	"octo-connect/internal/pkg/clock"
	"octo-connect/internal/pkg/config"
	"octo-connect/internal/pkg/intenttoken"
	"octo-connect/internal/translate"
	"octo-connect/internal/usecase"
	"octo-connect/internal/usecase/commands"
	"octo-connect/internal/usecase/queries"
	"octo-connect/internal/usecase/shared"

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
	fx.Annotate(
		translate.New,
		fx.As(new(shared.Translator)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewQuoteQueries,
		queries.NewBookingQueries,
		func(cfg config.Config, supplier shared.SupplierGateway, translator shared.Translator, signer *intenttoken.Signer) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(supplier, translator, signer, cfg.Supplier.Concurrency)
		},
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewCredentialValidator,
	),
)
