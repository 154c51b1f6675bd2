package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/forms"
	"github.com/dmitrijs2005/authshell/internal/common"
)

// getSimpleText and getPassword point to the interactive helpers and are
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// runForm prompts for every field of f and submits the answers. Validation
// failures are printed per field and returned without submitting.
func (a *App) runForm(ctx context.Context, f *forms.Form) error {
	fmt.Fprintf(a.out, "== %s ==\n", f.Title)

	values := make(forms.Values, len(f.Fields))
	for _, field := range f.Fields {
		v, err := a.readField(field)
		if err != nil {
			return err
		}
		values[field.Name] = v
	}

	err := f.Submit(ctx, values)

	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Fields {
			fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
		}
	}
	return err
}

func (a *App) readField(field forms.Field) (string, error) {
	prompt := field.Label
	if field.Description != "" {
		prompt += " (" + field.Description + ")"
	}

	if field.Secret {
		pw, err := getPassword(prompt, a.out)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(pw)
		return string(pw), nil
	}

	if field.Placeholder != "" {
		prompt += " [e.g. " + field.Placeholder + "]"
	}
	return getSimpleText(a.reader, prompt, a.out)
}

// submitting prints the loading indicator for the duration of fn.
func (a *App) submitting(fn func() error) error {
	fmt.Fprintln(a.out, "Loading...")
	return fn()
}
