package admission

import (
	"slices"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
)

// compose produces the display order: admitted applicants first, then the
// wait-list. Policy tiers only reorder the wait-list; admitted applicants are
// ordered purely by score.
func compose(pool []scored, assignment Assignment, subjects []domain.Subject, policy domain.Policy) []domain.RankedApplicant {
	ordered := slices.Clone(pool)
	slices.SortStableFunc(ordered, func(a, b scored) int {
		_, aIn := assignment.Program(a.app.ID)
		_, bIn := assignment.Program(b.app.ID)

		// 1. Admitted before wait-listed
		if aIn != bIn {
			return boolFirst(aIn)
		}

		// 2. Wait-list tiers
		if !aIn {
			if policy.EnableQuotaReservation && a.app.IsQuotaReserved != b.app.IsQuotaReserved {
				return boolFirst(a.app.IsQuotaReserved)
			}
			if policy.EnableDistrictPriority && a.app.InDistrict() != b.app.InDistrict() {
				return boolFirst(a.app.InDistrict())
			}
		}

		// 3. Score
		return compareScored(a, b, subjects)
	})

	ranked := make([]domain.RankedApplicant, len(ordered))
	for i, s := range ordered {
		r := domain.RankedApplicant{
			Applicant:  s.app.Clone(),
			TotalScore: s.total,
			Rank:       i + 1, // 1-indexed ranking
		}
		if name, ok := assignment.Program(s.app.ID); ok {
			r.QualifiedProgram = &name
		}
		ranked[i] = r
	}
	return ranked
}

// boolFirst orders a true flag ahead of a false one. Only call it when the
// two flags differ.
func boolFirst(aTrue bool) int {
	if aTrue {
		return -1
	}
	return 1
}
