package admission

import (
	"math"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
)

// LegacySubjectKeys is the fixed subject set summed when a run has no
// configured subjects.
var LegacySubjectKeys = []string{"math", "science", "thai", "english", "social"}

// scoreOf returns the applicant's score for a subject id, with missing and
// non-finite values coerced to 0.
func scoreOf(a *domain.Applicant, id string) float64 {
	v, ok := a.Scores[id]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// TotalScore sums the applicant's scores over subjectIDs, or over
// LegacySubjectKeys when subjectIDs is empty.
func TotalScore(a domain.Applicant, subjectIDs []string) float64 {
	if len(subjectIDs) == 0 {
		subjectIDs = LegacySubjectKeys
	}

	total := 0.0
	for _, id := range subjectIDs {
		total += scoreOf(&a, id)
	}
	return total
}

// SubjectIDs extracts ids in their configured order.
func SubjectIDs(subjects []domain.Subject) []string {
	ids := make([]string, len(subjects))
	for i, s := range subjects {
		ids[i] = s.ID
	}
	return ids
}

// SubjectScore is the coerced score used for totals and tie-breaks.
func SubjectScore(a domain.Applicant, id string) float64 {
	return scoreOf(&a, id)
}
