package bootstrap

import (
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.StripeConfig { return cfg.Stripe },
		func(cfg config.Config) config.SlackConfig { return cfg.Slack },
	),
)
