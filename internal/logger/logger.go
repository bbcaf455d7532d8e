package logger

import (
	"io"
	"os"
	"time"

	"github.com/lshigami/Studynest/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init installs a console writer on the global logger so that anything
// logged before the config is loaded is still readable.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Configure applies the level from the config and, when LOG_FILE is set,
// tees JSON lines into a rotating file.
func Configure(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil || cfg.Log.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	if cfg.Log.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    100, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Caller().Logger()
	log.Info().Str("level", level.String()).Str("file", cfg.Log.File).Msg("Logger configured")
}
