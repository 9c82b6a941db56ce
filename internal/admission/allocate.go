package admission

import (
	"slices"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
)

// Pass identifies which priority tier an applicant was processed in.
type Pass string

const (
	PassQuotaReserved Pass = "quota_reserved"
	PassInDistrict    Pass = "in_district"
	PassGeneral       Pass = "general"
)

type passSpec struct {
	name   Pass
	member func(*domain.Applicant) bool // nil takes the whole remaining pool
}

// passPlan lays out the allocation passes for a policy. Each pass takes its
// members out of the remaining pool, so the groups are disjoint and earlier
// passes see free seats first.
func passPlan(policy domain.Policy) []passSpec {
	var plan []passSpec

	if policy.Strategy() == domain.StrategyQuota {
		plan = append(plan, passSpec{name: PassQuotaReserved, member: func(a *domain.Applicant) bool {
			return a.IsQuotaReserved
		}})
	}
	if policy.EnableDistrictPriority {
		plan = append(plan, passSpec{name: PassInDistrict, member: func(a *domain.Applicant) bool {
			return a.InDistrict()
		}})
	}
	return append(plan, passSpec{name: PassGeneral})
}

// Decision is the allocator's verdict for one applicant.
type Decision struct {
	Program  string
	Admitted bool
	Pass     Pass
	Choice   int // 1-based preference index that won the seat, 0 if none
}

// Assignment is the result of one allocation run.
type Assignment struct {
	Strategy  domain.Strategy
	decisions map[string]Decision
	used      map[string]int
}

// Program returns the program the applicant was admitted to.
func (a Assignment) Program(applicantID string) (string, bool) {
	d, ok := a.decisions[applicantID]
	if !ok || !d.Admitted {
		return "", false
	}
	return d.Program, true
}

func (a Assignment) Decision(applicantID string) (Decision, bool) {
	d, ok := a.decisions[applicantID]
	return d, ok
}

// Used returns how many seats of the named program were filled.
func (a Assignment) Used(program string) int {
	return a.used[program]
}

// Admitted counts applicants holding a seat.
func (a Assignment) Admitted() int {
	n := 0
	for _, d := range a.decisions {
		if d.Admitted {
			n++
		}
	}
	return n
}

// seatLedger tracks capacity for one call of Allocate and is never shared.
type seatLedger struct {
	programs []domain.Program
	used     []int
}

func newSeatLedger(programs []domain.Program) *seatLedger {
	return &seatLedger{programs: programs, used: make([]int, len(programs))}
}

func (l *seatLedger) take(i int) bool {
	if l.used[i] >= l.programs[i].Quota {
		return false
	}
	l.used[i]++
	return true
}

// Allocate assigns seats. Applicants are processed tier by tier (see
// passPlan); within a tier the most competitive applicant picks first and
// gets the first preference that still has a free seat.
func Allocate(applicants []domain.Applicant, programs []domain.Program, subjects []domain.Subject, policy domain.Policy) Assignment {
	return allocate(scoreAll(applicants, subjects), programs, subjects, policy)
}

func allocate(pool []scored, programs []domain.Program, subjects []domain.Subject, policy domain.Policy) Assignment {
	resolver := NewProgramResolver(programs)
	ledger := newSeatLedger(programs)
	out := Assignment{
		Strategy:  policy.Strategy(),
		decisions: make(map[string]Decision, len(pool)),
		used:      make(map[string]int, len(programs)),
	}

	remaining := slices.Clone(pool)
	for _, spec := range passPlan(policy) {
		var group []scored
		if spec.member == nil {
			group, remaining = remaining, nil
		} else {
			group, remaining = partition(remaining, spec.member)
		}

		slices.SortStableFunc(group, func(a, b scored) int {
			return compareScored(a, b, subjects)
		})
		for _, s := range group {
			out.decisions[s.app.ID] = tryAssign(s.app, resolver, ledger, spec.name)
		}
	}

	for i, p := range programs {
		if _, dup := out.used[p.Name]; !dup {
			out.used[p.Name] = ledger.used[i]
		}
	}
	return out
}

// tryAssign walks the applicant's preferences in order and takes the first
// resolvable program with a free seat.
func tryAssign(a *domain.Applicant, resolver *ProgramResolver, ledger *seatLedger, pass Pass) Decision {
	for n, pref := range a.PreferredPrograms {
		i, ok := resolver.Resolve(pref)
		if !ok {
			continue
		}
		if ledger.take(i) {
			return Decision{Program: ledger.programs[i].Name, Admitted: true, Pass: pass, Choice: n + 1}
		}
	}
	return Decision{Pass: pass}
}

// partition splits pool into members and the rest, keeping input order.
func partition(pool []scored, member func(*domain.Applicant) bool) (in, out []scored) {
	for _, s := range pool {
		if member(s.app) {
			in = append(in, s)
		} else {
			out = append(out, s)
		}
	}
	return in, out
}

func scoreAll(applicants []domain.Applicant, subjects []domain.Subject) []scored {
	ids := SubjectIDs(subjects)
	out := make([]scored, len(applicants))
	for i := range applicants {
		out[i] = scored{app: &applicants[i], total: TotalScore(applicants[i], ids)}
	}
	return out
}
