// Package cmdctx carries the loaded config and logger on a cobra
// command's context, so both the cli package (which builds them in
// PersistentPreRunE) and the commands package (which consumes them) can
// share the values without an import cycle between the two.
package cmdctx

import (
	"context"
	"io"
	"log/slog"

	cfgpkg "github.com/darkcollective/relalg/internal/config"
)

type configKey struct{}
type loggerKey struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *cfgpkg.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Config retrieves the config stored by WithConfig, falling back to
// freshly-loaded defaults if none is present.
func Config(ctx context.Context) *cfgpkg.Config {
	if c, ok := ctx.Value(configKey{}).(*cfgpkg.Config); ok {
		return c
	}
	cfg, _ := cfgpkg.Load("", nil)
	return cfg
}

// Logger retrieves the logger stored by WithLogger, falling back to a
// discard logger if none is present.
func Logger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
