package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/audit"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/metrics"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/output"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/service"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/snapshot"
)

const (
	exitOK = iota
	exitConfig
	exitInput
	exitOutput
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		fmt.Fprintf(stderr, "config load failed: %v\n", err)
		return exitConfig
	}

	if cfg.LogLevel != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}
	if cfg.LogFormat != "" {
		_ = os.Setenv("LOG_FORMAT", cfg.LogFormat)
	}
	logger.InitWithWriter(stderr)
	log := logger.Logger.With().
		Str("service", "admission-service").
		Str("env", cfg.AppEnv).
		Logger()

	snap, err := readSnapshot(cfg.RosterPath, stdin)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.RosterPath).Msg("roster read failed")
		return exitInput
	}

	rec := metrics.NewRecorder()
	svc := service.NewRankingService(audit.New(log), rec, cfg.StrictInput)

	res, err := svc.Rank(ctx, snap, service.Overrides{
		DistrictPriority: cfg.DistrictPriority,
		QuotaReservation: cfg.QuotaReservation,
	})
	if err != nil {
		var appErr *domain.AppError
		if errors.As(err, &appErr) {
			log.Error().Str("code", string(appErr.Code)).Msg(appErr.Message)
		} else {
			log.Error().Err(err).Msg("ranking failed")
		}
		return exitInput
	}

	if err := writeResult(cfg.OutputPath, cfg.OutputFormat, stdout, res); err != nil {
		log.Error().Err(err).Str("path", cfg.OutputPath).Msg("output write failed")
		return exitOutput
	}

	if cfg.MetricsTextfile != "" {
		if err := rec.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.Error().Err(err).Str("path", cfg.MetricsTextfile).Msg("metrics textfile write failed")
			return exitOutput
		}
		log.Debug().Str("path", cfg.MetricsTextfile).Msg("metrics textfile written")
	}

	return exitOK
}

func readSnapshot(path string, stdin io.Reader) (snapshot.Snapshot, error) {
	if path == config.StdStream {
		return snapshot.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return snapshot.Snapshot{}, domain.ErrInvalidInput("cannot open roster", err)
	}
	defer f.Close()
	return snapshot.Decode(f)
}

func writeResult(path, format string, stdout io.Writer, res service.Result) (err error) {
	if path == config.StdStream {
		return output.Write(stdout, format, res)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return output.Write(f, format, res)
}
