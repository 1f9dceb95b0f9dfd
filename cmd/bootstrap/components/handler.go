package components

import (
	"weekly-menu/internal/handler"
	"weekly-menu/internal/handler/api"
	"weekly-menu/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDishHandler,
		api.NewSuggestionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
