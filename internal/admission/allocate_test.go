package admission

import (
	"testing"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassPlan(t *testing.T) {
	names := func(p domain.Policy) []Pass {
		var out []Pass
		for _, s := range passPlan(p) {
			out = append(out, s.name)
		}
		return out
	}

	assert.Equal(t, []Pass{PassGeneral}, names(domain.Policy{}))
	assert.Equal(t, []Pass{PassInDistrict, PassGeneral}, names(domain.Policy{EnableDistrictPriority: true}))
	assert.Equal(t, []Pass{PassQuotaReserved, PassGeneral}, names(domain.Policy{EnableQuotaReservation: true}))
	assert.Equal(t, []Pass{PassQuotaReserved, PassInDistrict, PassGeneral},
		names(domain.Policy{EnableDistrictPriority: true, EnableQuotaReservation: true}))
}

func TestAllocate_HigherScorePicksFirst(t *testing.T) {
	programs := []domain.Program{{ID: "a", Name: "A", Quota: 1}, {ID: "b", Name: "B", Quota: 1}}
	applicants := []domain.Applicant{
		applicant("Y", 80, "A", "B"),
		applicant("X", 90, "A", "B"),
	}

	got := Allocate(applicants, programs, mathOnly, domain.Policy{})

	x, ok := got.Program("X")
	require.True(t, ok)
	assert.Equal(t, "A", x)
	y, ok := got.Program("Y")
	require.True(t, ok)
	assert.Equal(t, "B", y)

	d, _ := got.Decision("Y")
	assert.Equal(t, 2, d.Choice)
	assert.Equal(t, PassGeneral, d.Pass)
	assert.Equal(t, domain.StrategyFlat, got.Strategy)
	assert.Equal(t, 1, got.Used("A"))
	assert.Equal(t, 2, got.Admitted())
}

func TestAllocate_NeverExceedsQuota(t *testing.T) {
	programs := []domain.Program{{Name: "C", Quota: 2}}
	var applicants []domain.Applicant
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		applicants = append(applicants, applicant(id, 50, "C"))
	}

	got := Allocate(applicants, programs, mathOnly, domain.Policy{})
	assert.Equal(t, 2, got.Used("C"))
	assert.Equal(t, 2, got.Admitted())
}

func TestAllocate_ZeroAndNegativeQuota(t *testing.T) {
	programs := []domain.Program{
		{Name: "Closed", Quota: 0},
		{Name: "Broken", Quota: -3},
		{Name: "Open", Quota: 1},
	}
	applicants := []domain.Applicant{applicant("s1", 99, "Closed", "Broken", "Open")}

	got := Allocate(applicants, programs, mathOnly, domain.Policy{})
	name, ok := got.Program("s1")
	require.True(t, ok)
	assert.Equal(t, "Open", name)
	assert.Equal(t, 0, got.Used("Closed"))
	assert.Equal(t, 0, got.Used("Broken"))
}

func TestAllocate_FullExactMatchFallsToNextPreference(t *testing.T) {
	// "Sci" resolves exactly and is full; the allocator must not look for a
	// lenient alternative such as "Sci-Math" for the same preference
	programs := []domain.Program{{Name: "Sci", Quota: 1}, {Name: "Sci-Math", Quota: 5}, {Name: "Arts", Quota: 5}}
	applicants := []domain.Applicant{
		applicant("first", 90, "Sci"),
		applicant("second", 80, "Sci", "Arts"),
	}

	got := Allocate(applicants, programs, mathOnly, domain.Policy{})
	name, ok := got.Program("second")
	require.True(t, ok)
	assert.Equal(t, "Arts", name)
}

func TestAllocate_UnmatchedAndEmptyPreferences(t *testing.T) {
	programs := []domain.Program{{Name: "A", Quota: 5}}
	applicants := []domain.Applicant{
		applicant("none", 90),
		applicant("typo", 80, "Zoology", "1.a"),
		applicant("nomatch", 70, "Zoology"),
	}

	got := Allocate(applicants, programs, mathOnly, domain.Policy{})

	_, ok := got.Program("none")
	assert.False(t, ok)
	name, ok := got.Program("typo")
	require.True(t, ok)
	assert.Equal(t, "A", name)
	_, ok = got.Program("nomatch")
	assert.False(t, ok)

	d, ok := got.Decision("nomatch")
	require.True(t, ok)
	assert.False(t, d.Admitted)
	assert.Zero(t, d.Choice)
}

func TestAllocate_QuotaReservationPassRunsFirst(t *testing.T) {
	programs := []domain.Program{{Name: "D", Quota: 1}}
	z := applicant("Z", 50, "D")
	z.IsQuotaReserved = true
	w := applicant("W", 95, "D")

	got := Allocate([]domain.Applicant{w, z}, programs, mathOnly, domain.Policy{EnableQuotaReservation: true})

	name, ok := got.Program("Z")
	require.True(t, ok)
	assert.Equal(t, "D", name)
	_, ok = got.Program("W")
	assert.False(t, ok)

	d, _ := got.Decision("Z")
	assert.Equal(t, PassQuotaReserved, d.Pass)
	assert.Equal(t, domain.StrategyQuota, got.Strategy)
}

func TestAllocate_QuotaFlagIgnoredWhenDisabled(t *testing.T) {
	programs := []domain.Program{{Name: "D", Quota: 1}}
	z := applicant("Z", 50, "D")
	z.IsQuotaReserved = true
	w := applicant("W", 95, "D")

	got := Allocate([]domain.Applicant{z, w}, programs, mathOnly, domain.Policy{})
	name, ok := got.Program("W")
	require.True(t, ok)
	assert.Equal(t, "D", name)
}

func TestAllocate_DistrictPriority(t *testing.T) {
	programs := []domain.Program{{Name: "E", Quota: 1}}
	m := applicant("M", 60, "E")
	m.Residence = domain.ResidenceInDistrict
	n := applicant("N", 99, "E")
	n.Residence = domain.ResidenceOutDistrict

	got := Allocate([]domain.Applicant{n, m}, programs, mathOnly, domain.Policy{EnableDistrictPriority: true})

	name, ok := got.Program("M")
	require.True(t, ok)
	assert.Equal(t, "E", name)
	_, ok = got.Program("N")
	assert.False(t, ok)

	dn, _ := got.Decision("N")
	assert.Equal(t, PassGeneral, dn.Pass)
	dm, _ := got.Decision("M")
	assert.Equal(t, PassInDistrict, dm.Pass)
}

func TestAllocate_QuotaThenDistrictThenGeneral(t *testing.T) {
	programs := []domain.Program{{Name: "P", Quota: 2}}
	reserved := applicant("reserved", 10, "P")
	reserved.IsQuotaReserved = true
	local := applicant("local", 20, "P")
	local.Residence = domain.ResidenceInDistrict
	outsider := applicant("outsider", 100, "P")

	got := Allocate([]domain.Applicant{outsider, local, reserved}, programs, mathOnly,
		domain.Policy{EnableQuotaReservation: true, EnableDistrictPriority: true})

	_, ok := got.Program("reserved")
	assert.True(t, ok)
	_, ok = got.Program("local")
	assert.True(t, ok)
	_, ok = got.Program("outsider")
	assert.False(t, ok)
}

func TestAllocate_ReservedApplicantInDistrictStaysInQuotaPass(t *testing.T) {
	programs := []domain.Program{{Name: "P", Quota: 1}}
	both := applicant("both", 10, "P")
	both.IsQuotaReserved = true
	both.Residence = domain.ResidenceInDistrict

	got := Allocate([]domain.Applicant{both}, programs, mathOnly,
		domain.Policy{EnableQuotaReservation: true, EnableDistrictPriority: true})

	d, ok := got.Decision("both")
	require.True(t, ok)
	assert.Equal(t, PassQuotaReserved, d.Pass)
}

func TestAllocate_NoPrograms(t *testing.T) {
	got := Allocate([]domain.Applicant{applicant("s1", 90, "A")}, nil, mathOnly, domain.Policy{})
	_, ok := got.Program("s1")
	assert.False(t, ok)
	assert.Zero(t, got.Admitted())
}
