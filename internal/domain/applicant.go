package domain

import (
	"maps"
	"slices"
)

type Residence string

const (
	ResidenceInDistrict  Residence = "IN_DISTRICT"
	ResidenceOutDistrict Residence = "OUT_DISTRICT"
)

// Subject is one exam subject. The order of a subject list is the tie-break
// priority: the first subject is the strongest tie-breaker.
type Subject struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	MaxScore float64 `json:"maxScore"`
}

// Program is a study plan with a fixed seat quota.
type Program struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Quota int    `json:"quota"`
}

type Applicant struct {
	ID                string             `json:"id"`
	Title             string             `json:"title"`
	FirstName         string             `json:"firstName"`
	LastName          string             `json:"lastName"`
	PreferredPrograms []string           `json:"preferredPrograms"` // 1st choice first
	Scores            map[string]float64 `json:"scores"`
	Residence         Residence          `json:"residence,omitempty"`
	IsQuotaReserved   bool               `json:"isQuotaReserved"`
}

// InDistrict reports whether the applicant lives inside the school district.
// Anything other than IN_DISTRICT, including an empty value, is out of district.
func (a Applicant) InDistrict() bool {
	return a.Residence == ResidenceInDistrict
}

// FullName joins title, first and last name the way result sheets print them.
func (a Applicant) FullName() string {
	name := a.Title + a.FirstName
	if a.LastName != "" {
		if name != "" {
			name += " "
		}
		name += a.LastName
	}
	return name
}

// Clone returns a copy that shares no slices or maps with a.
func (a Applicant) Clone() Applicant {
	c := a
	c.PreferredPrograms = slices.Clone(a.PreferredPrograms)
	c.Scores = maps.Clone(a.Scores)
	return c
}

// RankedApplicant is an applicant annotated with the result of one run.
type RankedApplicant struct {
	Applicant
	TotalScore       float64 `json:"totalScore"`
	Rank             int     `json:"rank"`
	QualifiedProgram *string `json:"qualifiedProgram"` // nil = wait-listed
}

func (r RankedApplicant) Admitted() bool {
	return r.QualifiedProgram != nil
}

// ProgramName returns the admitted program or "" for wait-listed applicants.
func (r RankedApplicant) ProgramName() string {
	if r.QualifiedProgram == nil {
		return ""
	}
	return *r.QualifiedProgram
}
