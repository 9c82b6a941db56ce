// Package report derives the figures shown next to a ranking: overall
// counts, per-program fill and cutoff, and per-subject averages.
package report

import (
	"math"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/admission"
	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
)

type Summary struct {
	Applicants    int            `json:"applicants"`
	Admitted      int            `json:"admitted"`
	Waitlisted    int            `json:"waitlisted"`
	AverageTotal  float64        `json:"averageTotal"`
	MaxTotal      float64        `json:"maxTotal"`
	TotalMaxScore float64        `json:"totalMaxScore"`
	Programs      []ProgramStats `json:"programs"`
	Subjects      []SubjectStats `json:"subjects"`
}

type ProgramStats struct {
	Name        string   `json:"name"`
	Quota       int      `json:"quota"`
	Admitted    int      `json:"admitted"`
	Remaining   int      `json:"remaining"`
	FillPercent float64  `json:"fillPercent"`
	Cutoff      *float64 `json:"cutoff"` // lowest admitted total; nil when nobody got in
	FirstChoice int      `json:"firstChoice"`
}

type SubjectStats struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	MaxScore  float64 `json:"maxScore"`
	Average   float64 `json:"average"`
	FullMarks int     `json:"fullMarks"`
	Zeros     int     `json:"zeros"`
}

// Summarize computes the summary of one ranked run. Programs and subjects are
// reported in their configured order.
func Summarize(ranked []domain.RankedApplicant, programs []domain.Program, subjects []domain.Subject) Summary {
	s := Summary{
		Applicants: len(ranked),
		Programs:   make([]ProgramStats, len(programs)),
		Subjects:   make([]SubjectStats, len(subjects)),
	}

	sum := 0.0
	for i, r := range ranked {
		sum += r.TotalScore
		if i == 0 || r.TotalScore > s.MaxTotal {
			s.MaxTotal = r.TotalScore
		}
		if r.Admitted() {
			s.Admitted++
		}
	}
	s.Waitlisted = s.Applicants - s.Admitted
	if s.Applicants > 0 {
		s.AverageTotal = roundHalfUp(sum/float64(s.Applicants), 0)
	}

	for _, sub := range subjects {
		s.TotalMaxScore += sub.MaxScore
	}

	for i, p := range programs {
		s.Programs[i] = programStats(ranked, p)
	}
	for i, sub := range subjects {
		s.Subjects[i] = subjectStats(ranked, sub)
	}
	return s
}

func programStats(ranked []domain.RankedApplicant, p domain.Program) ProgramStats {
	st := ProgramStats{Name: p.Name, Quota: p.Quota}
	for _, r := range ranked {
		if len(r.PreferredPrograms) > 0 && r.PreferredPrograms[0] == p.Name {
			st.FirstChoice++
		}
		if r.ProgramName() != p.Name || !r.Admitted() {
			continue
		}
		st.Admitted++
		if st.Cutoff == nil || r.TotalScore < *st.Cutoff {
			total := r.TotalScore
			st.Cutoff = &total
		}
	}

	st.Remaining = max(p.Quota-st.Admitted, 0)
	if p.Quota > 0 {
		st.FillPercent = roundHalfUp(min(100, float64(st.Admitted)/float64(p.Quota)*100), 2)
	}
	return st
}

func subjectStats(ranked []domain.RankedApplicant, sub domain.Subject) SubjectStats {
	st := SubjectStats{ID: sub.ID, Name: sub.Name, MaxScore: sub.MaxScore}
	sum := 0.0
	for _, r := range ranked {
		v := admission.SubjectScore(r.Applicant, sub.ID)
		sum += v

		if _, recorded := r.Scores[sub.ID]; !recorded {
			continue
		}
		if v == sub.MaxScore {
			st.FullMarks++
		}
		if v == 0 {
			st.Zeros++
		}
	}
	if len(ranked) > 0 {
		st.Average = roundHalfUp(sum/float64(len(ranked)), 0)
	}
	return st
}

// Percentage expresses total as a share of totalMax, to two decimals.
func Percentage(total, totalMax float64) float64 {
	if totalMax <= 0 {
		return 0
	}
	return roundHalfUp(total/totalMax*100, 2)
}

func roundHalfUp(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Floor(x*scale+0.5) / scale
}
