// Package validation applies explicit, per-field rule lists to request values.
//
// Request types list their fields and rules by hand and call Check; nothing here reflects over
// struct tags. Every failing field is collected into apperrors.FieldErrors.
package validation

import (
	"fmt"
	"strings"

	"github.com/SscSPs/currency_rates_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Rule is one validator tag plus the message reported when it fails.
type Rule struct {
	Tag     string
	Message string
}

// Field is a named value and the rules it must satisfy, in order.
// Optional fields with a zero value skip their rules.
type Field struct {
	Name     string
	Value    any
	Optional bool
	Rules    []Rule
}

// Check runs every field's rules and returns apperrors.FieldErrors, or nil when all pass.
// Within a field, evaluation stops at the first failing rule.
func Check(fields ...Field) error {
	errs := apperrors.FieldErrors{}
	for _, f := range fields {
		if f.Optional && validate.Var(f.Value, "required") != nil {
			continue
		}
		for _, r := range f.Rules {
			if err := validate.Var(f.Value, r.Tag); err != nil {
				errs.Add(f.Name, r.Message)
				break
			}
		}
	}
	return errs.OrNil()
}

func Required() Rule {
	return Rule{Tag: "required", Message: "This field is required."}
}

func Email() Rule {
	return Rule{Tag: "email", Message: "Enter a valid email address."}
}

func LengthBetween(min, max int) Rule {
	return Rule{
		Tag:     fmt.Sprintf("min=%d,max=%d", min, max),
		Message: fmt.Sprintf("Ensure this field has between %d and %d characters.", min, max),
	}
}

func MaxLength(max int) Rule {
	return Rule{
		Tag:     fmt.Sprintf("max=%d", max),
		Message: fmt.Sprintf("Ensure this field has no more than %d characters.", max),
	}
}

// MinValue checks a numeric value is at least min.
func MinValue(min int64) Rule {
	return Rule{
		Tag:     fmt.Sprintf("min=%d", min),
		Message: fmt.Sprintf("Ensure this value is greater than or equal to %d.", min),
	}
}

// MaxValue checks a numeric value is at most max.
func MaxValue(max int64) Rule {
	return Rule{
		Tag:     fmt.Sprintf("max=%d", max),
		Message: fmt.Sprintf("Ensure this value is less than or equal to %d.", max),
	}
}

// OneOf restricts a string to the given choices. Choices must not contain spaces.
func OneOf(choices ...string) Rule {
	return Rule{
		Tag:     "oneof=" + strings.Join(choices, " "),
		Message: fmt.Sprintf("Select a valid choice. Allowed: %s.", strings.Join(choices, ", ")),
	}
}

// Date checks a string is a calendar date in YYYY-MM-DD form.
func Date() Rule {
	return Rule{Tag: "datetime=2006-01-02", Message: "Enter a valid date in YYYY-MM-DD format."}
}
