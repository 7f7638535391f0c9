package components

import (
	"octo-connect/internal/handler"
	"octo-connect/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCredentialHandler,
		api.NewProductHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
