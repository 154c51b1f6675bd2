// Package forms implements the single configurable credential form used by
// every auth screen. A Form is a field set plus a submit handler; register,
// login and signup are just different configurations of it.
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field describes one input. Rules uses go-playground/validator tag syntax.
type Field struct {
	Name        string
	Label       string
	Description string
	Placeholder string
	Secret      bool
	Trim        bool
	Rules       string
}

// Values maps field names to raw input.
type Values map[string]string

// SubmitFunc receives values that already passed validation.
type SubmitFunc func(ctx context.Context, values Values) error

type Form struct {
	Title    string
	Fields   []Field
	OnSubmit SubmitFunc
}

// ValidationError carries one message per failing field, in field order.
type ValidationError struct {
	Fields []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Message returns the message for field, or "".
func (e *ValidationError) Message(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}

// Validate checks values against the field set and returns the normalized
// copy that would be submitted.
func (f *Form) Validate(values Values) (Values, error) {
	normalized := make(Values, len(f.Fields))
	var verr ValidationError

	for _, field := range f.Fields {
		v := values[field.Name]
		if field.Trim {
			v = strings.TrimSpace(v)
		}
		normalized[field.Name] = v

		if field.Rules == "" {
			continue
		}
		if err := validate.Var(v, field.Rules); err != nil {
			verr.Fields = append(verr.Fields, FieldError{Field: field.Name, Message: describe(field, err)})
		}
	}

	if len(verr.Fields) > 0 {
		return nil, &verr
	}
	return normalized, nil
}

// Submit validates values and, only if they pass, hands them to OnSubmit.
func (f *Form) Submit(ctx context.Context, values Values) error {
	normalized, err := f.Validate(values)
	if err != nil {
		return err
	}
	return f.OnSubmit(ctx, normalized)
}

func describe(field Field, err error) string {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return fmt.Sprintf("%s is invalid.", field.Label)
	}

	fe := ves[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field.Label)
	case "min":
		return fmt.Sprintf("%s must contain at least %s character(s).", field.Label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must contain at most %s character(s).", field.Label, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field.Label)
	case tagUsernameFormat:
		return fmt.Sprintf("%s may only contain letters, digits, '.', '_' and '-'.", field.Label)
	case tagPasswordStrength:
		return fmt.Sprintf("%s must contain an upper-case letter, a lower-case letter and a digit.", field.Label)
	default:
		return fmt.Sprintf("%s is invalid.", field.Label)
	}
}
