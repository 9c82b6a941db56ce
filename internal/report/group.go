package report

import "github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"

// ProgramGroup lists the applicants admitted to one program in rank order.
type ProgramGroup struct {
	Program    domain.Program           `json:"program"`
	Applicants []domain.RankedApplicant `json:"applicants"`
}

type Groups struct {
	Programs []ProgramGroup           `json:"programs"`
	Waitlist []domain.RankedApplicant `json:"waitlist"`
}

// Group splits a ranking into per-program lists, in configured program order,
// plus the wait-list. With duplicate program names the first one collects the
// admitted applicants.
func Group(ranked []domain.RankedApplicant, programs []domain.Program) Groups {
	g := Groups{
		Programs: make([]ProgramGroup, len(programs)),
		Waitlist: []domain.RankedApplicant{},
	}
	index := make(map[string]int, len(programs))
	for i, p := range programs {
		g.Programs[i] = ProgramGroup{Program: p, Applicants: []domain.RankedApplicant{}}
		if _, dup := index[p.Name]; !dup {
			index[p.Name] = i
		}
	}

	for _, r := range ranked {
		if !r.Admitted() {
			g.Waitlist = append(g.Waitlist, r)
			continue
		}
		if i, ok := index[r.ProgramName()]; ok {
			g.Programs[i].Applicants = append(g.Programs[i].Applicants, r)
		}
	}
	return g
}
