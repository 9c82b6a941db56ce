package service

import (
	"context"
	"fmt"
	"time"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/admission"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/logger"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/metrics"
	appctx "github.com/baechuer/real-time-ressys/services/admission-service/internal/pkg/context"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/report"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/snapshot"
	"github.com/google/uuid"
)

// AuditLogger receives one record per decision and one per run.
type AuditLogger interface {
	SeatAssigned(ctx context.Context, applicantID, program, pass string, choice int, rank int)
	Waitlisted(ctx context.Context, applicantID string, rank int, preferences int)
	RunCompleted(ctx context.Context, strategy string, applicants, admitted int)
}

type MetricsRecorder interface {
	RecordRun(strategy string, duration time.Duration)
	RecordApplicants(outcome string, n int)
	SetProgramSeats(program string, quota, filled int)
}

// Overrides replace snapshot policy flags; a nil field keeps the snapshot value.
type Overrides struct {
	DistrictPriority *bool
	QuotaReservation *bool
}

func (o Overrides) Apply(p domain.Policy) domain.Policy {
	if o.DistrictPriority != nil {
		p.EnableDistrictPriority = *o.DistrictPriority
	}
	if o.QuotaReservation != nil {
		p.EnableQuotaReservation = *o.QuotaReservation
	}
	return p
}

type Result struct {
	RunID    string                   `json:"runId"`
	Policy   domain.Policy            `json:"policy"`
	Strategy domain.Strategy          `json:"strategy"`
	Ranked   []domain.RankedApplicant `json:"ranked"`
	Summary  report.Summary           `json:"summary"`
	Groups   report.Groups            `json:"groups"`
}

type RankingService struct {
	audit   AuditLogger
	metrics MetricsRecorder
	strict  bool
}

// NewRankingService wires the optional sinks; audit and metrics may be nil.
func NewRankingService(audit AuditLogger, metrics MetricsRecorder, strict bool) *RankingService {
	return &RankingService{audit: audit, metrics: metrics, strict: strict}
}

// Rank validates the snapshot and runs the engine over it.
func (s *RankingService) Rank(ctx context.Context, snap snapshot.Snapshot, overrides Overrides) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := snapshot.Validate(snap, s.strict); err != nil {
		return Result{}, fmt.Errorf("validate roster: %w", err)
	}

	runID := uuid.NewString()
	ctx = appctx.WithRunID(ctx, runID)
	policy := overrides.Apply(snap.Policy)
	strategy := policy.Strategy()

	logger.Ctx(ctx).Info().
		Str("strategy", string(strategy)).
		Int("applicants", len(snap.Applicants)).
		Int("programs", len(snap.Programs)).
		Int("subjects", len(snap.Subjects)).
		Msg("ranking run started")

	start := time.Now()
	out := admission.Evaluate(snap.Applicants, snap.Programs, snap.Subjects, policy)
	elapsed := time.Since(start)

	res := Result{
		RunID:    runID,
		Policy:   policy,
		Strategy: strategy,
		Ranked:   out.Ranked,
		Summary:  report.Summarize(out.Ranked, snap.Programs, snap.Subjects),
		Groups:   report.Group(out.Ranked, snap.Programs),
	}

	s.recordAudit(ctx, out)
	s.recordMetrics(res, snap.Programs, out.Assignment, elapsed)

	logger.Ctx(ctx).Info().
		Int("admitted", res.Summary.Admitted).
		Int("waitlisted", res.Summary.Waitlisted).
		Dur("elapsed", elapsed).
		Msg("ranking run finished")
	return res, nil
}

func (s *RankingService) recordAudit(ctx context.Context, out admission.Outcome) {
	if s.audit == nil {
		return
	}
	for _, r := range out.Ranked {
		d, _ := out.Assignment.Decision(r.ID)
		if r.Admitted() {
			s.audit.SeatAssigned(ctx, r.ID, r.ProgramName(), string(d.Pass), d.Choice, r.Rank)
		} else {
			s.audit.Waitlisted(ctx, r.ID, r.Rank, len(r.PreferredPrograms))
		}
	}
	s.audit.RunCompleted(ctx, string(out.Assignment.Strategy), len(out.Ranked), out.Assignment.Admitted())
}

func (s *RankingService) recordMetrics(res Result, programs []domain.Program, a admission.Assignment, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RecordRun(string(res.Strategy), elapsed)
	s.metrics.RecordApplicants(metrics.OutcomeAdmitted, res.Summary.Admitted)
	s.metrics.RecordApplicants(metrics.OutcomeWaitlisted, res.Summary.Waitlisted)
	for _, p := range programs {
		s.metrics.SetProgramSeats(p.Name, p.Quota, a.Used(p.Name))
	}
}
