package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/exportgen/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(*logger.Logger)
		want string
	}{
		{
			name: "info",
			log:  func(l *logger.Logger) { l.Info("generated 3 files") },
			want: "generated 3 files\n",
		},
		{
			name: "warn",
			log:  func(l *logger.Logger) { l.Warn("no configurations") },
			want: "! no configurations\n",
		},
		{
			name: "debug hidden",
			log:  func(l *logger.Logger) { l.Debug("detail") },
			want: "",
		},
		{
			name: "error",
			log:  func(l *logger.Logger) { l.Error(errors.New("boom")) },
			want: "✗ Error: boom\n",
		},
		{
			name: "nil error",
			log:  func(l *logger.Logger) { l.Error(nil) },
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_Verbose(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetVerbose(true)

	lg.Debug("detail")

	assert.Equal(t, "detail\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("permission denied"), "failed to open stream"), "path", "/out/a.cmake")
	lg.Error(err)

	want := "✗ Error: failed to open stream\n" +
		"       path=/out/a.cmake\n" +
		"\n" +
		"  Caused by:\n" +
		"    → permission denied\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "operation failed", record["msg"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetJSONKeepsOutput(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.SetJSON(false)

	lg.Info("hello")

	assert.Equal(t, "hello\n", buf.String())
}

func TestPrettyHandler_Attrs(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}

	lg := slog.New(logger.NewPrettyHandler(buf, nil)).WithGroup("gen").With("set", "core")
	lg.Info("done", "files", 2)

	assert.Equal(t, "done gen.set=core gen.files=2\n", buf.String())
}
