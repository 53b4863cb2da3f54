package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// fromContext pulls the known correlation fields out of ctx.
func fromContext(ctx context.Context) []any {
	var fields []any
	if v, ok := ctx.Value(requestIDKey).(string); ok && v != "" {
		fields = append(fields, "request_id", v)
	}
	if v, ok := ctx.Value(userIDKey).(string); ok && v != "" {
		fields = append(fields, "user_id", v)
	}
	return fields
}

func CtxDebug(ctx context.Context, msg string, args ...any) {
	GetLogger().Debug(msg, append(fromContext(ctx), args...)...)
}

func CtxInfo(ctx context.Context, msg string, args ...any) {
	GetLogger().Info(msg, append(fromContext(ctx), args...)...)
}

func CtxWarn(ctx context.Context, msg string, args ...any) {
	GetLogger().Warn(msg, append(fromContext(ctx), args...)...)
}

func CtxError(ctx context.Context, msg string, args ...any) {
	GetLogger().Error(msg, append(fromContext(ctx), args...)...)
}

func CtxWithError(ctx context.Context, msg string, err error, args ...any) {
	fields := append(fromContext(ctx), "error", err.Error())
	GetLogger().Error(msg, append(fields, args...)...)
}

// CtxLogger returns a logger pre-bound to the context correlation fields.
func CtxLogger(ctx context.Context) *slog.Logger {
	return GetLogger().With(fromContext(ctx)...)
}
