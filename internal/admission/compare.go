package admission

import (
	"cmp"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
)

// LegacyTieBreakKeys is the last-resort cascade consulted after the
// configured subjects fail to separate two applicants. It is independent of
// the configured subject list.
var LegacyTieBreakKeys = []string{"science", "math", "english", "thai", "social"}

// scored pairs an applicant with its precomputed total.
type scored struct {
	app   *domain.Applicant
	total float64
}

// Compare orders two applicants by competitiveness. It returns a negative
// number when a is more competitive than b (a sorts first), positive when b
// is, and 0 when every rule ties.
//
//  1. Higher total score.
//  2. Configured subjects in order: first differing score, higher wins.
//  3. LegacyTieBreakKeys in order: first differing score, higher wins.
func Compare(a, b domain.Applicant, aTotal, bTotal float64, subjects []domain.Subject) int {
	return compareScored(scored{app: &a, total: aTotal}, scored{app: &b, total: bTotal}, subjects)
}

func compareScored(a, b scored, subjects []domain.Subject) int {
	// 1. Total score (desc)
	if c := cmp.Compare(b.total, a.total); c != 0 {
		return c
	}

	// 2. Subject priority
	for _, subj := range subjects {
		if c := cmp.Compare(scoreOf(b.app, subj.ID), scoreOf(a.app, subj.ID)); c != 0 {
			return c
		}
	}

	// 3. Legacy cascade
	for _, key := range LegacyTieBreakKeys {
		if c := cmp.Compare(scoreOf(b.app, key), scoreOf(a.app, key)); c != 0 {
			return c
		}
	}
	return 0
}
