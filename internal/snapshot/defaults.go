package snapshot

import "github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"

// DefaultSubjectMaxScore is the full mark of every default subject.
const DefaultSubjectMaxScore = 100

// DefaultProgramQuota is the seat quota of every default program.
const DefaultProgramQuota = 10

// DefaultSubjects is the subject list used when a roster carries none.
func DefaultSubjects() []domain.Subject {
	return []domain.Subject{
		{ID: "math", Name: "คณิต", MaxScore: DefaultSubjectMaxScore},
		{ID: "science", Name: "วิทย์", MaxScore: DefaultSubjectMaxScore},
		{ID: "thai", Name: "ไทย", MaxScore: DefaultSubjectMaxScore},
		{ID: "english", Name: "อังกฤษ", MaxScore: DefaultSubjectMaxScore},
		{ID: "social", Name: "สังคม", MaxScore: DefaultSubjectMaxScore},
	}
}

// DefaultPrograms is the study plan list used when a roster carries none.
func DefaultPrograms() []domain.Program {
	return []domain.Program{
		{ID: "1", Name: "วิทย์-คณิต", Quota: DefaultProgramQuota},
		{ID: "2", Name: "ศิลป์-คำนวณ", Quota: DefaultProgramQuota},
		{ID: "3", Name: "ศิลป์-ภาษา", Quota: DefaultProgramQuota},
		{ID: "4", Name: "ศิลป์-สังคม", Quota: DefaultProgramQuota},
		{ID: "5", Name: "ห้องเรียนพิเศษ (คอม/กีฬา)", Quota: DefaultProgramQuota},
	}
}
