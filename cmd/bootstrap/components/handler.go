package components

import (
	"github.com/Atsu2017-hub/web-ramen/internal/handler"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/api"
	"github.com/Atsu2017-hub/web-ramen/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewMenuHandler,
		api.NewPaymentHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
