package components

import (
	"storeslot/internal/handler"
	"storeslot/internal/handler/api"
	"storeslot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewStoreHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
