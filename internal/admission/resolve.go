package admission

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
)

var ordinalPrefix = regexp.MustCompile(`^[0-9]+\.?`)

// ProgramResolver maps a free-text preference to a program. It is built once
// per run and holds no seat state.
type ProgramResolver struct {
	programs   []domain.Program
	exact      map[string]int
	normalized []string
}

func NewProgramResolver(programs []domain.Program) *ProgramResolver {
	r := &ProgramResolver{
		programs:   programs,
		exact:      make(map[string]int, len(programs)),
		normalized: make([]string, len(programs)),
	}
	for i, p := range programs {
		// duplicate names are a caller error; the first declaration wins
		if _, dup := r.exact[p.Name]; !dup {
			r.exact[p.Name] = i
		}
		r.normalized[i] = normalizeName(p.Name)
	}
	return r
}

// Resolve returns the index of the program pref refers to. An exact name
// match wins; otherwise the first program (in declared order) whose
// normalized name equals, contains, or is contained by the normalized
// preference is returned.
func (r *ProgramResolver) Resolve(pref string) (int, bool) {
	if i, ok := r.exact[pref]; ok {
		return i, true
	}

	p := ordinalPrefix.ReplaceAllString(normalizeName(pref), "")
	if p == "" {
		return -1, false
	}
	for i, k := range r.normalized {
		// an unnamed program would be contained in every preference
		if k == "" {
			continue
		}
		if k == p || strings.Contains(k, p) || strings.Contains(p, k) {
			return i, true
		}
	}
	return -1, false
}

// ResolveProgram is the single-shot form of Resolve.
func ResolveProgram(pref string, programs []domain.Program) (domain.Program, bool) {
	i, ok := NewProgramResolver(programs).Resolve(pref)
	if !ok {
		return domain.Program{}, false
	}
	return programs[i], true
}

// normalizeName lower-cases s and drops every whitespace rune.
func normalizeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}
