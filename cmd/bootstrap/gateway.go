package bootstrap

import (
	"github.com/Atsu2017-hub/web-ramen/internal/infra/gateway"
	"github.com/Atsu2017-hub/web-ramen/internal/infra/notifier"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			gateway.NewStripeGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			notifier.NewSlackNotifier,
			fx.As(new(commands.ReservationNotifier)),
		),
	),
)
