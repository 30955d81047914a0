package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/billsplit/pkg/api"
	"github.com/mmynk/billsplit/pkg/logging"
)

func TestSessionIDOf(t *testing.T) {
	tests := []struct {
		name string
		req  connect.AnyRequest
		want string
	}{
		{"session scoped", connect.NewRequest(&api.AddPersonRequest{SessionID: "abc"}), "abc"},
		{"create has no session", connect.NewRequest(&api.CreateSessionRequest{}), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SessionIDOf(tt.req); got != tt.want {
				t.Errorf("SessionIDOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoggingInterceptor(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	slog.SetDefault(slog.New(logging.NewHandler(&buf, slog.LevelDebug, false)))

	tests := []struct {
		name    string
		req     connect.AnyRequest
		err     error
		want    []string
		notWant []string
	}{
		{
			name: "ok",
			req:  connect.NewRequest(&api.AddPersonRequest{SessionID: "abc"}),
			want: []string{"INF", "RPC ok", "session_id=abc", "duration_ms="},
		},
		{
			name:    "connect error",
			req:     connect.NewRequest(&api.GetSessionRequest{SessionID: "gone"}),
			err:     connect.NewError(connect.CodeNotFound, errors.New("session not found")),
			want:    []string{"WRN", "RPC error", "code=not_found", "session_id=gone"},
			notWant: []string{"ERR"},
		},
		{
			name:    "plain error without session",
			req:     connect.NewRequest(&api.CreateSessionRequest{}),
			err:     errors.New("boom"),
			want:    []string{"ERR", "RPC failed", "error=boom"},
			notWant: []string{"session_id="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				return nil, tt.err
			}

			_, err := LoggingInterceptor()(next)(context.Background(), tt.req)
			if err != tt.err {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("log %q missing %q", out, s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("log %q should not contain %q", out, s)
				}
			}
		})
	}
}
