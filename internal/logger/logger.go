package logger

import (
	"context"
	"io"
	"os"
	"time"

	appctx "github.com/baechuer/real-time-ressys/services/admission-service/internal/pkg/context"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

var Logger zerolog.Logger

// Init logs to stderr; stdout carries the ranking output.
func Init() {
	InitWithWriter(os.Stderr)
}

func InitWithWriter(w io.Writer) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	format := os.Getenv("LOG_FORMAT") // "json" or "console"
	if format == "" {
		format = "console"
	}

	if format == "json" {
		Logger = zerolog.New(w).With().Timestamp().Logger().Level(level)
	} else {
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(level)
	}

	zlog.Logger = Logger
}

// Ctx returns the logger tagged with the run id carried by ctx, if any.
func Ctx(ctx context.Context) *zerolog.Logger {
	if runID := appctx.GetRunID(ctx); runID != "" {
		l := Logger.With().Str("run_id", runID).Logger()
		return &l
	}
	return &Logger
}
