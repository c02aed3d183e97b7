package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/garden-server/internal/logger"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// entries returns the decoded records logged with msg.
func (b *syncBuffer) entries(t *testing.T, msg string) []map[string]any {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(b.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] == msg {
			out = append(out, rec)
		}
	}
	return out
}

func captureLogger() (*logger.Logger, *syncBuffer) {
	buf := &syncBuffer{}
	return &logger.Logger{Logger: slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}, buf
}

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")

	tests := []struct {
		name       string
		handler    grpc.UnaryHandler
		wantErr    error
		wantStatus string
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				time.Sleep(10 * time.Millisecond)
				return "ok", nil
			},
			wantStatus: codes.OK.String(),
		},
		{
			name: "grpc error propagates",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, status.Error(codes.InvalidArgument, "bad input")
			},
			wantStatus: codes.InvalidArgument.String(),
		},
		{
			name: "non-grpc error is logged as Internal",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, boom
			},
			wantErr:    boom,
			wantStatus: codes.Internal.String(),
		},
		{
			name: "wrapped non-grpc error is logged as Internal",
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, errors.Join(errors.New("store"), boom)
			},
			wantErr:    boom,
			wantStatus: codes.Internal.String(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, buf := captureLogger()
			lg := NewLogging(log)

			info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}
			resp, err := lg.HandleGRPC(context.Background(), struct{}{}, info, tt.handler)

			completed := buf.entries(t, "gRPC request completed")
			require.Len(t, completed, 1)
			assert.Equal(t, "/svc/Method", completed[0]["method"])
			assert.Equal(t, tt.wantStatus, completed[0]["status"])

			if tt.wantStatus == codes.OK.String() {
				assert.NoError(t, err)
				assert.Equal(t, "ok", resp)
				assert.Empty(t, buf.entries(t, "gRPC request failed"))
				return
			}

			failed := buf.entries(t, "gRPC request failed")
			require.Len(t, failed, 1)
			assert.Equal(t, tt.wantStatus, failed[0]["status"])

			if tt.wantErr != nil {
				// the error itself is passed on untouched
				assert.ErrorIs(t, err, tt.wantErr)
				_, isStatus := status.FromError(err)
				assert.False(t, isStatus)
			}
		})
	}
}
