package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.Component("generate").WithFields(Fields{"layout": "hero.yaml"})
	log.Info("markup written", Fields{"bytes": 512})

	entry := decode(t, buf)
	require.Equal(t, "markup written", entry["message"])
	require.Equal(t, "generate", entry["component"])
	require.Equal(t, "hero.yaml", entry["layout"])
	require.EqualValues(t, 512, entry["bytes"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: LevelFor(false), Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.Info("nor this")
	require.Equal(t, "", strings.TrimSpace(buf.String()))

	log.Warn("but this does")
	require.Contains(t, buf.String(), "but this does")
}

func TestLoggerRejectedIncludesInput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Rejected(errors.New("expected #RGB or #RRGGBB"), "notacolor")

	entry := decode(t, buf)
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "notacolor", entry["input"])
	require.Equal(t, "expected #RGB or #RRGGBB", entry["error"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(Fields{"path": "out.svg"}).Error(errors.New("boom"), "failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "out.svg", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerNilAndNop(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Component("x").Warn("ignored")
		log.Rejected(errors.New("x"), "y")
	})

	require.NotPanics(t, func() { Nop().Error(errors.New("x"), "ignored") })
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}
