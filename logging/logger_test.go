package logging_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/gemdet/logging"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "info"}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("computed", zap.Int("threads", 4))
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "computed", entry["message"])
	require.EqualValues(t, 4, entry["threads"])
}

func TestNewDevelopmentConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug", Development: true}, &buf)
	require.NoError(t, err)

	log.Debug("tracing")
	require.NoError(t, log.Sync())
	require.Contains(t, buf.String(), "tracing")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestParseLevel(t *testing.T) {
	l, err := logging.ParseLevel("warn")
	require.NoError(t, err)
	require.Equal(t, zapcore.WarnLevel, l)

	l, err = logging.ParseLevel("")
	require.NoError(t, err)
	require.Equal(t, zapcore.InfoLevel, l)

	_, err = logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrInvalidLevel)
	_, err = logging.New(logging.Config{Level: "loud"}, &bytes.Buffer{})
	require.ErrorIs(t, err, logging.ErrInvalidLevel)

	require.Equal(t, "warn", logging.DefaultConfig().Level)
}
