package logger

import (
	"io"
	"os"
	"time"

	"hotelhills/config"
	"hotelhills/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

const defaultLevel = zerolog.TraceLevel

// InitLogger installs a console logger at trace level. It runs before the
// configuration is read, so everything is logged until SetLogLevel narrows it.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(defaultLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// ErrorWithStack logs err with the stack of the caller, unless err already carries one.
func ErrorWithStack(err error) {
	if err == nil {
		return
	}

	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	if _, ok := err.(stackTracer); !ok { //nolint:errorlint
		err = errors.WithStack(err)
	}

	log.Error().Stack().Err(err).Send()
}

// SetLogLevel applies SERVER_LOG_LEVEL, defaulting to trace. Production writes
// JSON lines tagged with the app name.
func SetLogLevel(cfg *config.Config) {
	Configure(cfg, os.Stdout)
}

// Configure is SetLogLevel with an explicit production sink.
func Configure(cfg *config.Config, out io.Writer) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		level = defaultLevel
	}

	if cfg.Server.Env == constant.ServerEnvProduction {
		log.Logger = zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("loglevel", level.String()).Msg("Log level applied")
}
