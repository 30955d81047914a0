package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// sessionScoped is implemented by request messages that target a session.
type sessionScoped interface {
	GetSessionID() string
}

// SessionIDOf returns the session a request targets, or "" if it targets none.
func SessionIDOf(req connect.AnyRequest) string {
	if m, ok := req.Any().(sessionScoped); ok {
		return m.GetSessionID()
	}
	return ""
}

// LoggingInterceptor returns a Connect interceptor that logs one record per
// RPC. Successful calls log at info, Connect errors at warn and anything
// else at error.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := requestAttrs(req)
			attrs = append(attrs, slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			level, msg, errAttrs := outcome(err)
			slog.LogAttrs(ctx, level, msg, append(attrs, errAttrs...)...)

			return resp, err
		}
	}
}

// requestAttrs describes the call. The session is omitted for calls that
// do not target one.
func requestAttrs(req connect.AnyRequest) []slog.Attr {
	attrs := []slog.Attr{slog.String("procedure", req.Spec().Procedure)}
	if id := SessionIDOf(req); id != "" {
		attrs = append(attrs, slog.String("session_id", id))
	}
	if addr := req.Peer().Addr; addr != "" {
		attrs = append(attrs, slog.String("peer", addr))
	}
	return attrs
}

func outcome(err error) (slog.Level, string, []slog.Attr) {
	if err == nil {
		return slog.LevelInfo, "RPC ok", nil
	}
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return slog.LevelWarn, "RPC error", []slog.Attr{
			slog.String("code", connectErr.Code().String()),
			slog.String("error", connectErr.Message()),
		}
	}
	return slog.LevelError, "RPC failed", []slog.Attr{slog.Any("error", err)}
}
