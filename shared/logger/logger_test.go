package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"hotelhills/config"
	"hotelhills/shared/logger"

	pkgErrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func capture() *bytes.Buffer {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	return &buf
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)
	logger.InitLogger()

	t.Run("plain errors get a stack", func(t *testing.T) {
		buf := capture()

		logger.ErrorWithStack(errors.New("insert bill: connection reset"))

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "error", line["level"])
		assert.Equal(t, "insert bill: connection reset", line["error"])
		assert.NotEmpty(t, line["stack"])
	})

	t.Run("existing stacks are kept", func(t *testing.T) {
		buf := capture()

		logger.ErrorWithStack(pkgErrors.New("room not reachable"))

		assert.Contains(t, buf.String(), "room not reachable")
		assert.Contains(t, buf.String(), `"stack"`)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		buf := capture()

		logger.ErrorWithStack(nil)

		assert.Empty(t, buf.String())
	})
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.TraceLevel},
		{level: "loud", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure_ProductionWritesJSON(t *testing.T) {
	restore(t)

	var buf bytes.Buffer

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "hotelhills"

	logger.Configure(cfg, &buf)
	buf.Reset()

	log.Info().Str("bill_id", "b-1").Msg("bill generated")
	log.Debug().Msg("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hotelhills", line["app"])
	assert.Equal(t, "b-1", line["bill_id"])
	assert.NotContains(t, buf.String(), "hidden")
}
