package bootstrap

import (
	"tripmatch/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	FxLogger,
	MetricsModule,
	PersistenceModule,
	EventsModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
)
