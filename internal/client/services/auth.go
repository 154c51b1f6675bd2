// Package services contains application services for the authshell client.
// This file defines the authentication service: register, login, the JSON
// signup variant, logout, and the loading/status state the UI renders.
package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/authshell/internal/client/api"
	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

// Status messages shown to the user after a submission.
const (
	StatusAccountCreated     = "Account created successfully."
	StatusLoggedIn           = "Logged in successfully."
	StatusUsernameExists     = "Username already exists."
	StatusInvalidCredentials = "Invalid username or password."
)

// ErrSubmissionInFlight is returned when a submission starts while another
// one has not resolved yet. No request is sent in that case.
var ErrSubmissionInFlight = errors.New("submission already in progress")

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register / Login: submit credentials, persist the returned token.
//   - Signup: JSON account creation; does not touch the session.
//   - Logout: clear the stored token.
//   - Loading: true only while a submission is in flight.
//   - Status: the message describing the last submission outcome.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*api.TokenResult, error)
	Login(ctx context.Context, username, password string) (*api.TokenResult, error)
	Signup(ctx context.Context, user api.NewUser) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Loading() bool
	Status() string
}

type authService struct {
	client  api.Client
	session *session.Session
	log     logging.Logger

	loading atomic.Bool

	mu     sync.RWMutex
	status string
}

func NewAuthService(client api.Client, s *session.Session, log logging.Logger) AuthService {
	return &authService{client: client, session: s, log: log.With("component", "auth")}
}

// Register creates an account and stores the issued token. A 400 from the
// server yields StatusUsernameExists.
func (a *authService) Register(ctx context.Context, username, password string) (*api.TokenResult, error) {
	if err := a.begin(); err != nil {
		return nil, err
	}
	defer a.end()

	tr, err := a.client.Register(ctx, username, password)
	if err != nil {
		a.fail(ctx, "register", username, err)
		return nil, err
	}
	if err := a.session.Save(ctx, tr.AccessToken); err != nil {
		a.fail(ctx, "register", username, err)
		return nil, err
	}

	a.log.Info(ctx, "account created", "user", username)
	a.setStatus(StatusAccountCreated)
	return tr, nil
}

// Login authenticates and stores the issued token. A 401 from the server
// yields StatusInvalidCredentials.
func (a *authService) Login(ctx context.Context, username, password string) (*api.TokenResult, error) {
	if err := a.begin(); err != nil {
		return nil, err
	}
	defer a.end()

	tr, err := a.client.Login(ctx, username, password)
	if err != nil {
		a.fail(ctx, "login", username, err)
		return nil, err
	}
	if err := a.session.Save(ctx, tr.AccessToken); err != nil {
		a.fail(ctx, "login", username, err)
		return nil, err
	}

	a.log.Info(ctx, "login successful", "user", username)
	a.setStatus(StatusLoggedIn)
	return tr, nil
}

func (a *authService) Signup(ctx context.Context, user api.NewUser) error {
	if err := a.begin(); err != nil {
		return err
	}
	defer a.end()

	if err := a.client.CreateUser(ctx, user); err != nil {
		a.fail(ctx, "signup", user.Email, err)
		return err
	}

	a.log.Info(ctx, "account created", "email", user.Email)
	a.setStatus(StatusAccountCreated)
	return nil
}

// Logout clears the stored token. The server is not contacted.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.session.Clear(ctx); err != nil {
		return err
	}
	a.setStatus("")
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Loading() bool {
	return a.loading.Load()
}

func (a *authService) Status() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.status
}

func (a *authService) begin() error {
	if !a.loading.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	return nil
}

func (a *authService) end() {
	a.loading.Store(false)
}

// fail maps known rejections to their message. Anything else is logged and
// leaves the status blank.
func (a *authService) fail(ctx context.Context, op, user string, err error) {
	switch {
	case errors.Is(err, api.ErrUsernameExists):
		a.setStatus(StatusUsernameExists)
	case errors.Is(err, api.ErrInvalidCredentials):
		a.setStatus(StatusInvalidCredentials)
	default:
		a.log.Error(ctx, op+" failed", "user", user, "error", err)
		a.setStatus("")
	}
}

func (a *authService) setStatus(s string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = s
}
