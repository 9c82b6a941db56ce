package audit

import (
	"context"

	appctx "github.com/baechuer/real-time-ressys/services/admission-service/internal/pkg/context"
	"github.com/rs/zerolog"
)

// Logger writes one structured record per admission decision.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// SeatAssigned logs an applicant taking a seat in a program.
func (l *Logger) SeatAssigned(ctx context.Context, applicantID, program, pass string, choice int, rank int) {
	l.log.Info().
		Str("action", "seat_assigned").
		Str("applicant_id", applicantID).
		Str("program", program).
		Str("pass", pass).
		Int("choice", choice).
		Int("rank", rank).
		Str("run_id", appctx.GetRunID(ctx)).
		Msg("Applicant admitted")
}

// Waitlisted logs an applicant left without a seat.
func (l *Logger) Waitlisted(ctx context.Context, applicantID string, rank int, preferences int) {
	l.log.Info().
		Str("action", "waitlisted").
		Str("applicant_id", applicantID).
		Int("rank", rank).
		Int("preferences", preferences).
		Str("run_id", appctx.GetRunID(ctx)).
		Msg("Applicant wait-listed")
}

func (l *Logger) RunCompleted(ctx context.Context, strategy string, applicants, admitted int) {
	l.log.Info().
		Str("action", "run_completed").
		Str("strategy", strategy).
		Int("applicants", applicants).
		Int("admitted", admitted).
		Str("run_id", appctx.GetRunID(ctx)).
		Msg("Ranking run completed")
}
