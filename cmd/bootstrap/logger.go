package bootstrap

import (
	"log/slog"
	"os"

	"go.uber.org/fx"
)

// LoggerModule provides a plain JSON slog logger. The server entrypoint
// overrides it with a config-aware logger; test assemblies use it as is.
var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
