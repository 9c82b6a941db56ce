package snapshot

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
)

// Snapshot is one roster handed to the ranking service.
type Snapshot struct {
	Subjects   []domain.Subject   `json:"subjects"`
	Programs   []domain.Program   `json:"programs"`
	Applicants []domain.Applicant `json:"applicants"`
	Policy     domain.Policy      `json:"policy"`
}

// wire types accept the field names used by older exports
// (preferredStreams, isQuota, enableQuota) next to the current ones.
type document struct {
	Subjects   []subjectDoc   `json:"subjects"`
	Programs   []programDoc   `json:"programs"`
	Applicants []applicantDoc `json:"applicants"`
	Policy     *policyDoc     `json:"policy"`
	Criteria   *policyDoc     `json:"criteria"`
}

type subjectDoc struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	MaxScore json.RawMessage `json:"maxScore"`
}

type programDoc struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Quota json.RawMessage `json:"quota"`
}

type applicantDoc struct {
	ID                string                     `json:"id"`
	Title             string                     `json:"title"`
	FirstName         string                     `json:"firstName"`
	LastName          string                     `json:"lastName"`
	PreferredPrograms []string                   `json:"preferredPrograms"`
	PreferredStreams  []string                   `json:"preferredStreams"`
	Scores            map[string]json.RawMessage `json:"scores"`
	Residence         string                     `json:"residence"`
	IsQuotaReserved   *bool                      `json:"isQuotaReserved"`
	IsQuota           *bool                      `json:"isQuota"`
}

type policyDoc struct {
	EnableDistrictPriority bool  `json:"enableDistrictPriority"`
	EnableQuotaReservation *bool `json:"enableQuotaReservation"`
	EnableQuota            *bool `json:"enableQuota"`
}

// Decode reads a snapshot document. Score values are lenient: numbers and
// numeric strings are taken as-is, null drops the entry, anything else counts
// as 0. Absent subjects or programs fall back to the defaults; an explicit
// empty list is kept empty.
func Decode(r io.Reader) (Snapshot, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Snapshot{}, domain.ErrInvalidInput("malformed roster document", err)
	}
	return doc.snapshot(), nil
}

func (d document) snapshot() Snapshot {
	s := Snapshot{
		Subjects:   DefaultSubjects(),
		Programs:   DefaultPrograms(),
		Applicants: make([]domain.Applicant, 0, len(d.Applicants)),
	}

	if d.Subjects != nil {
		s.Subjects = make([]domain.Subject, len(d.Subjects))
		for i, sd := range d.Subjects {
			maxScore, _ := number(sd.MaxScore)
			s.Subjects[i] = domain.Subject{ID: strings.TrimSpace(sd.ID), Name: sd.Name, MaxScore: maxScore}
		}
	}

	if d.Programs != nil {
		s.Programs = make([]domain.Program, len(d.Programs))
		for i, pd := range d.Programs {
			quota, _ := number(pd.Quota)
			s.Programs[i] = domain.Program{ID: pd.ID, Name: pd.Name, Quota: seats(quota)}
		}
	}

	for _, ad := range d.Applicants {
		s.Applicants = append(s.Applicants, ad.applicant())
	}

	p := d.Policy
	if p == nil {
		p = d.Criteria
	}
	if p != nil {
		s.Policy.EnableDistrictPriority = p.EnableDistrictPriority
		s.Policy.EnableQuotaReservation = firstBool(p.EnableQuotaReservation, p.EnableQuota)
	}
	return s
}

func (ad applicantDoc) applicant() domain.Applicant {
	a := domain.Applicant{
		ID:                strings.TrimSpace(ad.ID),
		Title:             ad.Title,
		FirstName:         ad.FirstName,
		LastName:          ad.LastName,
		PreferredPrograms: ad.PreferredPrograms,
		Residence:         domain.Residence(strings.ToUpper(strings.TrimSpace(ad.Residence))),
		IsQuotaReserved:   firstBool(ad.IsQuotaReserved, ad.IsQuota),
	}
	if a.PreferredPrograms == nil {
		a.PreferredPrograms = ad.PreferredStreams
	}
	if a.Residence == "" {
		a.Residence = domain.ResidenceOutDistrict
	}

	if len(ad.Scores) > 0 {
		a.Scores = make(map[string]float64, len(ad.Scores))
		for id, raw := range ad.Scores {
			if v, ok := number(raw); ok {
				a.Scores[id] = v
			}
		}
	}
	return a
}

// number coerces a raw JSON value to a finite float. ok is false only for
// null or a missing value; non-numeric or non-finite input yields (0, true).
func number(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, true
		}
	}
	return 0, true
}

// MaxQuota caps decoded quotas; larger values mean "unlimited" in practice.
const MaxQuota = math.MaxInt32

// seats converts a decoded quota to a seat count. A fractional quota q admits
// while used < q, which for whole seat counts is ceil(q). Values outside
// [-MaxQuota, MaxQuota] are clamped.
func seats(q float64) int {
	q = math.Ceil(q)
	switch {
	case q > MaxQuota:
		return MaxQuota
	case q < -MaxQuota:
		return -MaxQuota
	}
	return int(q)
}

func firstBool(vals ...*bool) bool {
	for _, v := range vals {
		if v != nil {
			return *v
		}
	}
	return false
}
