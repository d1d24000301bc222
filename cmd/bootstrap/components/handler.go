package components

import (
	"clipvault/internal/handler"
	"clipvault/internal/handler/api"
	"clipvault/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewCheckoutHandler,
		api.NewPaymentReturnHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
