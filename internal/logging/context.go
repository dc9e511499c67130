package logging

import (
	"context"
	"log/slog"
	"os"
)

type loggerKey struct{}

// Used when nothing stored a logger. It writes to stderr since the CLI prints its table on stdout.
var fallbackLogger = slog.New(slog.NewJSONHandler(os.Stderr, nil)).With(slog.String("logger", "fallback"))

func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallbackLogger
}

func AddToContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// AddMetaToContext stores a logger that adds attrs to every record
func AddMetaToContext(ctx context.Context, attrs ...slog.Attr) context.Context {
	handler := FromContext(ctx).Handler().WithAttrs(attrs)
	return AddToContext(ctx, slog.New(handler))
}
