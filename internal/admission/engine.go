package admission

import "github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"

// Outcome bundles the ranked list with the allocation it was built from.
type Outcome struct {
	Ranked     []domain.RankedApplicant
	Assignment Assignment
}

// Run ranks a full roster snapshot: totals, seat allocation, then final
// order. It is synchronous, keeps no state between calls, never mutates its
// inputs, and returns identical output for identical input.
func Run(applicants []domain.Applicant, programs []domain.Program, subjects []domain.Subject, policy domain.Policy) []domain.RankedApplicant {
	return Evaluate(applicants, programs, subjects, policy).Ranked
}

// Evaluate is Run plus the underlying Assignment, for callers that report
// per-pass or per-program detail.
func Evaluate(applicants []domain.Applicant, programs []domain.Program, subjects []domain.Subject, policy domain.Policy) Outcome {
	pool := scoreAll(applicants, subjects)
	assignment := allocate(pool, programs, subjects, policy)
	return Outcome{
		Ranked:     compose(pool, assignment, subjects, policy),
		Assignment: assignment,
	}
}

// Rank composes the final order from an existing assignment.
func Rank(applicants []domain.Applicant, assignment Assignment, subjects []domain.Subject, policy domain.Policy) []domain.RankedApplicant {
	return compose(scoreAll(applicants, subjects), assignment, subjects, policy)
}
