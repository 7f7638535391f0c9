package bootstrap

import (
	"octo-connect/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SupplierModule,
	TokenModule,
	components.UseCaseModule,
	components.HandlerModule,
)
