package bootstrap

import (
	"time"

	"octo-connect/internal/pkg/clock"
	"octo-connect/internal/pkg/config"
	"octo-connect/internal/pkg/intenttoken"

	"go.uber.org/fx"
)

var TokenModule = fx.Module("token",
	fx.Provide(
		NewIntentTokenSigner,
	),
)

func NewIntentTokenSigner(cfg config.Config, clk clock.Clock) *intenttoken.Signer {
	tokenDuration, err := time.ParseDuration(cfg.Token.Duration)
	if err != nil {
		panic("invalid TOKEN_DURATION: " + err.Error())
	}

	return intenttoken.NewSigner(cfg.Token.Secret, tokenDuration, clk)
}
