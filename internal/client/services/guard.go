package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authshell/internal/client/api"
	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

var ErrNotAuthenticated = errors.New("not authenticated")

// Guard protects views that need a valid session. Presence of a stored
// token is not enough: the backend must confirm it on every check.
type Guard struct {
	client  api.Client
	session *session.Session
	log     logging.Logger
}

func NewGuard(client api.Client, s *session.Session, log logging.Logger) *Guard {
	return &Guard{client: client, session: s, log: log.With("component", "guard")}
}

// Require returns the stored token once the backend has accepted it.
// It fails with ErrNotAuthenticated when no token is stored and with
// api.ErrUnauthorized when the backend rejects it.
func (g *Guard) Require(ctx context.Context) (string, error) {
	token, err := g.session.Load(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", ErrNotAuthenticated
	}

	if err := g.client.CurrentUser(ctx, token); err != nil {
		g.log.Warn(ctx, "session rejected", "error", err)
		return "", err
	}
	return token, nil
}

// RequireAdmin additionally asks the backend whether the session belongs
// to an administrator.
func (g *Guard) RequireAdmin(ctx context.Context) (*api.AdminStatus, error) {
	token, err := g.Require(ctx)
	if err != nil {
		return nil, err
	}

	st, err := g.client.Admin(ctx, token)
	if err != nil {
		g.log.Warn(ctx, "admin check failed", "error", err)
		return nil, err
	}
	return st, nil
}
