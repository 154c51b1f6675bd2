package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authshell/internal/client/api"
	"github.com/dmitrijs2005/authshell/internal/client/forms"
	"github.com/dmitrijs2005/authshell/internal/client/services"
)

func (a *App) registerForm() *forms.Form {
	return &forms.Form{
		Title:  "Create a new account",
		Fields: forms.RegisterFields(),
		OnSubmit: func(ctx context.Context, v forms.Values) error {
			return a.submitting(func() error {
				_, err := a.authService.Register(ctx, v[forms.FieldUsername], v[forms.FieldPassword])
				return a.afterAuth(ctx, v[forms.FieldUsername], err)
			})
		},
	}
}

func (a *App) loginForm() *forms.Form {
	return &forms.Form{
		Title:  "Log in",
		Fields: forms.LoginFields(),
		OnSubmit: func(ctx context.Context, v forms.Values) error {
			return a.submitting(func() error {
				_, err := a.authService.Login(ctx, v[forms.FieldUsername], v[forms.FieldPassword])
				return a.afterAuth(ctx, v[forms.FieldUsername], err)
			})
		},
	}
}

func (a *App) signupForm() *forms.Form {
	return &forms.Form{
		Title:  "Sign up",
		Fields: forms.SignupFields(),
		OnSubmit: func(ctx context.Context, v forms.Values) error {
			return a.submitting(func() error {
				err := a.authService.Signup(ctx, api.NewUser{
					Name:     v[forms.FieldName],
					Email:    v[forms.FieldEmail],
					Password: v[forms.FieldPassword],
				})
				a.printStatus()
				return err
			})
		},
	}
}

// afterAuth prints the outcome and, on success, navigates to the dashboard.
func (a *App) afterAuth(ctx context.Context, userName string, err error) error {
	a.printStatus()
	if err != nil {
		if errors.Is(err, services.ErrSubmissionInFlight) {
			fmt.Fprintln(a.out, "Please wait for the current request to finish.")
		}
		return err
	}
	a.setUserName(userName)
	return a.Dashboard(ctx)
}

func (a *App) printStatus() {
	if s := a.authService.Status(); s != "" {
		fmt.Fprintln(a.out, s)
	}
}

// Register shows the registration form.
func (a *App) Register(ctx context.Context) error {
	return a.runForm(ctx, a.registerForm())
}

// Login shows the login form.
func (a *App) Login(ctx context.Context) error {
	return a.runForm(ctx, a.loginForm())
}

// Signup shows the JSON signup form.
func (a *App) Signup(ctx context.Context) error {
	return a.runForm(ctx, a.signupForm())
}

// Logout clears the stored token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.setUserName("")
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// Status prints the message of the last submission.
func (a *App) Status(context.Context) error {
	s := a.authService.Status()
	if s == "" {
		s = "No recent activity."
	}
	fmt.Fprintln(a.out, s)
	return nil
}
