package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/weekplan/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]zapcore.Level{
		"":      zap.InfoLevel,
		"info":  zap.InfoLevel,
		"debug": zap.DebugLevel,
		"warn":  zap.WarnLevel,
		"error": zap.ErrorLevel,
	} {
		got, err := logging.ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNew_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weekplan.log")
	log, err := logging.New(logging.Config{Level: "debug", Encoding: "json", OutputPaths: []string{path}})
	require.NoError(t, err)

	log.Debug("solved", zap.String("run_id", "r1"), zap.Int("count", 3))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"solved"`)
	require.Contains(t, string(data), `"count":3`)
}

func TestNew_Rejects(t *testing.T) {
	_, err := logging.New(logging.Config{Encoding: "xml"})
	require.Error(t, err)

	_, err = logging.New(logging.Config{Level: "trace"})
	require.Error(t, err)

	require.NotNil(t, logging.Nop())
}
