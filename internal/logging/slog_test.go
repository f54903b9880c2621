package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return NewSlogLogger(slog.New(h)), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", "msg=dbg", "a=1",
		"level=INFO", "msg=inf", "b=2",
		"level=WARN", "msg=wrn", "c=3",
		"level=ERROR", "msg=err", "d=4",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	log.With("component", "session", "user", "alice@example.org").Info(context.Background(), "refreshed", "rotated", true)

	out := buf.String()
	for _, want := range []string{"msg=refreshed", "component=session", "user=alice@example.org", "rotated=true"} {
		assert.Contains(t, out, want)
	}
}

func TestZerologLogger_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewConsoleLogger(&buf, slog.LevelInfo)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.With("component", "cli").Warn(ctx, "session expired", "user", "bob")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "session expired")
	assert.Contains(t, out, "component=cli")
	assert.Contains(t, out, "user=bob")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		level   string
		wantErr bool
		check   func(t *testing.T, out string)
	}{
		{name: "text", format: "text", level: "info", check: func(t *testing.T, out string) {
			assert.Contains(t, out, "msg=hello")
		}},
		{name: "json", format: "json", level: "debug", check: func(t *testing.T, out string) {
			assert.True(t, strings.HasPrefix(out, "{"))
			assert.Contains(t, out, `"msg":"hello"`)
		}},
		{name: "console", format: "console", level: "warn", check: func(t *testing.T, out string) {
			assert.Empty(t, out, "info is below warn")
		}},
		{name: "defaults", format: "", level: "", check: func(t *testing.T, out string) {
			assert.Contains(t, out, "level=INFO")
		}},
		{name: "bad format", format: "xml", level: "info", wantErr: true},
		{name: "bad level", format: "text", level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.format, tt.level, &buf)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			log.Info(context.Background(), "hello")
			tt.check(t, buf.String())
		})
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	ctx := context.TODO()
	log.Debug(ctx, "x")
	log.Info(ctx, "x")
	log.Warn(ctx, "x")
	log.With("k", "v").Error(ctx, "x")
}
