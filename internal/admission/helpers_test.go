package admission

import "github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"

var mathOnly = []domain.Subject{{ID: "math", Name: "Math", MaxScore: 100}}

func applicant(id string, math float64, prefs ...string) domain.Applicant {
	return domain.Applicant{
		ID:                id,
		FirstName:         id,
		PreferredPrograms: prefs,
		Scores:            map[string]float64{"math": math},
	}
}

func byID(ranked []domain.RankedApplicant) map[string]domain.RankedApplicant {
	m := make(map[string]domain.RankedApplicant, len(ranked))
	for _, r := range ranked {
		m[r.ID] = r
	}
	return m
}
