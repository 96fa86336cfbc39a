package logger

import (
	"io"
	"os"
	"time"

	"desk/config"
	"desk/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs a human readable console logger at trace level. SetLogLevel
// narrows it once configuration is known.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

// ErrorWithStack logs err together with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL. An unparsable level keeps everything.
// In production the console writer is swapped for JSON lines tagged with the app name.
func SetLogLevel(cfg *config.Config) {
	SetOutput(cfg, os.Stdout)

	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}

// SetOutput picks the writer format for the configured environment.
func SetOutput(cfg *config.Config, out io.Writer) {
	if cfg.Server.Env != constant.ServerEnvProduction {
		return
	}

	ctx := zerolog.New(out).With().Timestamp()
	if cfg.App.Name != constant.Empty {
		ctx = ctx.Str("app", cfg.App.Name)
	}

	log.Logger = ctx.Logger()
}
