package components

import (
	"tripmatch/internal/handler"
	"tripmatch/internal/handler/api"
	"tripmatch/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewMatchHandler,
		api.NewGroupHandler,
		api.NewHealthHandler,
		middleware.NewAuthMiddleware,
		func(m *api.MatchHandler, g *api.GroupHandler, h *api.HealthHandler) handler.Handlers {
			return handler.Handlers{Match: m, Group: g, Health: h}
		},
	),
	fx.Invoke(handler.NewRouter),
)
