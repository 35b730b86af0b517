package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"frontdesk/config"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func restoreGlobals(t *testing.T) {
	t.Helper()

	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	originalTimeFormat := zerolog.TimeFieldFormat

	t.Cleanup(func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
		zerolog.TimeFieldFormat = originalTimeFormat
	})
}

func TestInitLogger(t *testing.T) {
	restoreGlobals(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{level: "debug", expected: zerolog.DebugLevel},
		{level: "info", expected: zerolog.InfoLevel},
		{level: "warn", expected: zerolog.WarnLevel},
		{level: "error", expected: zerolog.ErrorLevel},
		{level: "disabled", expected: zerolog.Disabled},
		{level: "loud", expected: zerolog.TraceLevel},
		{level: "", expected: zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			restoreGlobals(t)
			log.Logger = zerolog.Nop()

			cfg := config.Default()
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("payment gateway timeout"))

	assert.Contains(t, buf.String(), "payment gateway timeout")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestComponent(t *testing.T) {
	restoreGlobals(t)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	l := logger.Component("housekeeping")
	l.Info().Str("room_id", "101").Msg("task created")

	assert.Contains(t, buf.String(), `"component":"housekeeping"`)
	assert.Contains(t, buf.String(), `"room_id":"101"`)
}
