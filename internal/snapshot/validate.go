package snapshot

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/baechuer/real-time-ressys/services/admission-service/internal/domain"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

type ruleSet struct {
	v     *validator.Validate
	trans ut.Translator
}

var (
	lenientRules = newRuleSet(false)
	strictRules  = newRuleSet(true)
)

// newRuleSet attaches rules to the domain types through map rules so the
// engine types stay free of validation tags. Strict mode adds the caller
// contract: non-negative quotas, named programs and a known residence.
func newRuleSet(strict bool) ruleSet {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("not_blank", validateNotBlank)

	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(v, trans)

	subject := map[string]string{"ID": "not_blank", "MaxScore": "gte=0"}
	applicant := map[string]string{"ID": "not_blank"}
	if strict {
		applicant["Residence"] = "omitempty,oneof=IN_DISTRICT OUT_DISTRICT"
		v.RegisterStructValidationMapRules(map[string]string{"Name": "not_blank", "Quota": "gte=0"}, domain.Program{})
	}
	v.RegisterStructValidationMapRules(subject, domain.Subject{})
	v.RegisterStructValidationMapRules(applicant, domain.Applicant{})
	return ruleSet{v: v, trans: trans}
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "" {
		return fld.Name
	}
	return name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// Validate checks a decoded snapshot. Lenient mode only rejects records the
// engine cannot key on; strict mode also rejects duplicate applicant ids,
// duplicate program names and the per-record contract rules.
func Validate(s Snapshot, strict bool) error {
	rs := lenientRules
	if strict {
		rs = strictRules
	}

	var messages []string
	for i, sub := range s.Subjects {
		messages = rs.appendFieldErrors(messages, fmt.Sprintf("subjects[%d]", i), rs.v.Struct(sub))
	}
	for i, p := range s.Programs {
		messages = rs.appendFieldErrors(messages, fmt.Sprintf("programs[%d]", i), rs.v.Struct(p))
	}
	for i, a := range s.Applicants {
		messages = rs.appendFieldErrors(messages, fmt.Sprintf("applicants[%d]", i), rs.v.Struct(a))
	}

	if strict {
		if err := rs.v.Var(s.Applicants, "unique=ID"); err != nil {
			messages = append(messages, fmt.Sprintf("applicant id %q is used more than once", firstDuplicate(s.Applicants, func(a domain.Applicant) string { return a.ID })))
		}
		if err := rs.v.Var(s.Programs, "unique=Name"); err != nil {
			messages = append(messages, fmt.Sprintf("program name %q is used more than once", firstDuplicate(s.Programs, func(p domain.Program) string { return p.Name })))
		}
	}

	if len(messages) > 0 {
		return domain.ErrValidation(strings.Join(messages, "; "))
	}
	return nil
}

func (rs ruleSet) appendFieldErrors(messages []string, prefix string, err error) []string {
	if err == nil {
		return messages
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return append(messages, fmt.Sprintf("%s: %v", prefix, err))
	}
	for _, fe := range fieldErrors {
		messages = append(messages, rs.formatFieldError(prefix, fe))
	}
	return messages
}

// formatFieldError prefixes the record path; tags without a message of their
// own use the validator's English translation, which leads with the field.
func (rs ruleSet) formatFieldError(prefix string, fe validator.FieldError) string {
	field := prefix + "." + fe.Field()
	switch fe.Tag() {
	case "not_blank", "required":
		return fmt.Sprintf("%s is required", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return prefix + "." + fe.Translate(rs.trans)
	}
}

func firstDuplicate[T any](items []T, key func(T) string) string {
	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		k := key(it)
		if _, ok := seen[k]; ok {
			return k
		}
		seen[k] = struct{}{}
	}
	return ""
}
