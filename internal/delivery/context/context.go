// Package context carries request scoped values (request id, logger and the
// authenticated actor) across echo.Context and context.Context.
package context

import (
	"context"
	"log/slog"

	"loyalty/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyActor     ContextKey = "actor"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored by the request id middleware, or "".
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault is GetLogger with a fallback for background work.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetActor stores the authenticated principal and tags the request logger with it.
func SetActor(c echo.Context, actor usecase.Actor) {
	c.Set(string(KeyActor), actor)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		logger = logger.With(slog.String("utorid", actor.Utorid))
		c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
	}
}

// GetActor extracts the authenticated principal from echo.Context.
func GetActor(c echo.Context) (usecase.Actor, bool) {
	actor, ok := c.Get(string(KeyActor)).(usecase.Actor)

	return actor, ok
}
