package components

import (
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/clock"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/config"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewMenuQueries,
		queries.NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthUsecase,
		NewPaymentUsecase,
		commands.NewReservationUsecase,
	),
)

func NewPaymentUsecase(
	gateway commands.PaymentGateway,
	menuReadStore queries.MenuReadStore,
	reservationReadStore queries.ReservationReadStore,
	reservationRepo commands.ReservationRepository,
	cfg config.Config,
) commands.PaymentUsecase {
	return commands.NewPaymentUsecase(gateway, menuReadStore, reservationReadStore, reservationRepo, cfg.Stripe.Currency)
}
