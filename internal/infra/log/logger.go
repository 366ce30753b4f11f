package logs

import (
	"log/slog"
	"os"
	"strings"

	"loyalty/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New builds the process logger. Every record carries the service and env so
// API and worker output can share one sink. Pretty selects the text handler.
func New(params Params) (*slog.Logger, error) {
	envCfg := params.Config.Env

	level, err := parseLogLevel(envCfg.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: envCfg.Debug,
	}

	var handler slog.Handler
	if envCfg.Log.Pretty {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if envCfg.ServiceName != "" {
		logger = logger.With(slog.String("service", envCfg.ServiceName))
	}
	if envCfg.Env != "" {
		logger = logger.With(slog.String("env", envCfg.Env))
	}

	return logger, nil
}

// parseLogLevel converts string log level to slog.Level. Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
