package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/authshell/internal/client/api"
	"github.com/dmitrijs2005/authshell/internal/client/services"
)

const maxMaskLen = 32

// MaskToken hides every character of token. The output length is capped so
// long tokens do not flood the terminal.
func MaskToken(token string) string {
	if token == "" {
		return "None"
	}
	n := len([]rune(token))
	if n > maxMaskLen {
		return strings.Repeat("*", maxMaskLen) + "..."
	}
	return strings.Repeat("*", n)
}

// Dashboard reads the stored token and renders it masked, or "None".
func (a *App) Dashboard(ctx context.Context) error {
	token, err := a.session.Load(ctx)
	if err != nil {
		a.log.Error(ctx, "reading session", "error", err)
		return err
	}

	fmt.Fprintln(a.out, "== Account ==")
	fmt.Fprintf(a.out, "User token: %s\n", MaskToken(token))
	fmt.Fprintln(a.out, "Type 'admin' to open the admin view.")
	return nil
}

// Admin renders the admin view once the backend has confirmed the session
// and the admin role.
func (a *App) Admin(ctx context.Context) error {
	st, err := a.guard.RequireAdmin(ctx)
	switch {
	case err == nil:
	case errors.Is(err, services.ErrNotAuthenticated):
		fmt.Fprintln(a.out, "You are not logged in. Use 'login' first.")
		return err
	case errors.Is(err, api.ErrUnauthorized):
		fmt.Fprintln(a.out, "Access denied. Use 'login' with an administrator account.")
		return err
	default:
		fmt.Fprintln(a.out, "Could not verify the session, try again later.")
		return err
	}

	fmt.Fprintln(a.out, "== Admin ==")
	if st.Message != "" {
		fmt.Fprintln(a.out, st.Message)
	}
	return nil
}
