package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hostcache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer with colors disabled.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New()
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_InfoWarn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("pass /lib/index.ts: 12 files, 15 edges")
	lg.Warn("unresolved import ./missing")

	g := goldie.New(t)
	g.Assert(t, "info_warn", buf.Bytes())
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "standard error",
			err:        errors.New("disk full"),
			goldenName: "error_simple",
		},
		{
			name:       "stdlib chain is not expanded",
			err:        fmt.Errorf("build failed: %w", errors.New("permission denied")),
			goldenName: "error_chain_stdlib",
		},
		{
			name: "zerr chain with metadata",
			err: func() error {
				inner := zerr.With(zerr.New("permission denied"), "path", "/lib/a.ts")
				outer := zerr.Wrap(inner, "failed to load source unit")
				return zerr.With(outer, "entry", "/lib/index.ts")
			}(),
			goldenName: "error_chain_zerr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(zerr.With(zerr.Wrap(errors.New("connection reset"), "failed to save graph snapshot"), "root", "/p"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"operation failed"`)
	assert.Contains(t, out, "failed to save graph snapshot")
	assert.NotContains(t, out, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Info("back to pretty")
	assert.Equal(t, "back to pretty\n", buf.String())
}

func TestLogger_SetOutput_PreservesJSON(t *testing.T) {
	lg, first := newTestLogger(t)
	lg.SetJSON(true)

	second := &bytes.Buffer{}
	lg.SetOutput(second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), `"msg":"moved"`)
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := slog.New(logger.NewPrettyHandler(buf, nil))
	lg.With("entry", "/lib/index.ts").Info("done", "files", 3)
	lg.Debug("filtered")

	g := goldie.New(t)
	g.Assert(t, "handler_attrs", buf.Bytes())
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	require.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	require.True(t, h.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_RelativePaths(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := slog.New(logger.NewPrettyHandler(buf, nil).WithRoot("/work"))
	lg.Info("compiled", "entry", "/work/src/index.ts", "files", 3)
	lg.Warn("processor wrote to stderr", "path", "/vendor/theme.css", "stderr", "deprecated mixin")
	lg.With("entry_point", "/work/src/app.ts").Error("pass failed", "command", "/work/bin/sass")

	g := goldie.New(t)
	g.Assert(t, "handler_relative_paths", buf.Bytes())
}

func TestLogger_Error_RelativePaths(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetRoot("/work")

	inner := zerr.With(zerr.New("processor exited with status 1"), "path", "/work/src/a.scss")
	lg.Error(zerr.With(zerr.Wrap(inner, "failed to load resource"), "entry", "/work/src/index.ts"))

	g := goldie.New(t)
	g.Assert(t, "error_chain_relative", buf.Bytes())
}

func TestLogger_SetJSON_Metadata(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetRoot("/work")
	lg.SetJSON(true)

	inner := zerr.With(zerr.New("no such file"), "path", "/work/src/a.html")
	lg.Error(zerr.With(zerr.Wrap(inner, "failed to load resource"), "path", "/work/src/a.ts"))

	out := buf.String()
	assert.Contains(t, out, `"path":"src/a.ts"`)
	assert.NotContains(t, out, `"path":"src/a.html"`)
	assert.Contains(t, out, "failed to load resource")
}
