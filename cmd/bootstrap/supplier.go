package bootstrap

import (
	"log/slog"

	"octo-connect/internal/infra/octo"
	"octo-connect/internal/pkg/config"
	"octo-connect/internal/usecase/shared"

	"go.uber.org/fx"
)

var SupplierModule = fx.Module("supplier",
	fx.Provide(
		fx.Annotate(
			NewSupplierClient,
			fx.As(new(shared.SupplierGateway)),
		),
	),
)

func NewSupplierClient(cfg config.Config, logger *slog.Logger) *octo.Client {
	return octo.NewClient(cfg.Supplier, octo.NewSlogSink(logger))
}
