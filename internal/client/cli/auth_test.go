package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authshell/internal/client/api"
	"github.com/dmitrijs2005/authshell/internal/client/forms"
)

func TestRegister_InvalidInputBlocksSubmission(t *testing.T) {
	fc := &fakeAPI{}
	a, out := newTestApp(t, nil, fc)
	stubInputs(t, "short", "")

	err := a.Register(context.Background())

	var verr *forms.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, fc.calls, "no request for invalid input")
	assert.Contains(t, out.String(), "username: Username is required.")
	assert.Contains(t, out.String(), "password: Password must contain at least 8 character(s).")
	assert.NotContains(t, out.String(), "Loading...")
}

func TestRegister_UsernameExists(t *testing.T) {
	fc := &fakeAPI{registerErr: api.ErrUsernameExists}
	a, out := newTestApp(t, nil, fc)
	stubInputs(t, "Secret123", "john")

	err := a.Register(context.Background())
	require.ErrorIs(t, err, api.ErrUsernameExists)
	assert.Contains(t, out.String(), "Loading...")
	assert.Contains(t, out.String(), "Username already exists.")
	assert.NotContains(t, out.String(), "User token:")
}

func TestLogin_SuccessNavigatesToDashboard(t *testing.T) {
	fc := &fakeAPI{loginRet: &api.TokenResult{AccessToken: "abc123"}}
	a, out := newTestApp(t, nil, fc)
	stubInputs(t, "Secret123", "  john ")

	require.NoError(t, a.Login(context.Background()))

	tok, err := a.session.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok)
	assert.Equal(t, "john", a.getUserName())
	assert.True(t, a.isLoggedIn())
	assert.Contains(t, out.String(), "Logged in successfully.")
	assert.Contains(t, out.String(), "User token: ******")
	assert.NotContains(t, out.String(), "abc123", "the token is never printed in clear")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	fc := &fakeAPI{loginErr: api.ErrInvalidCredentials}
	a, out := newTestApp(t, nil, fc)
	stubInputs(t, "whatever1", "john")

	err := a.Login(context.Background())
	require.ErrorIs(t, err, api.ErrInvalidCredentials)
	assert.Contains(t, out.String(), "Invalid username or password.")
	assert.False(t, a.isLoggedIn())
}

func TestSignup_UsesJSONVariant(t *testing.T) {
	fc := &fakeAPI{}
	a, out := newTestApp(t, nil, fc)
	prompts := stubInputs(t, "Secret123", "John", "john@example.com")

	require.NoError(t, a.Signup(context.Background()))
	assert.Equal(t, []string{"create"}, fc.calls)
	assert.Equal(t, 3, *prompts)
	assert.Contains(t, out.String(), "Account created successfully.")
}

func TestLogout(t *testing.T) {
	a, out := newTestApp(t, nil, nil)
	require.NoError(t, a.session.Save(context.Background(), "abc123"))
	a.setUserName("john")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Empty(t, a.getUserName())
	assert.Contains(t, out.String(), "Logged out.")
}

func TestStatus(t *testing.T) {
	fc := &fakeAPI{loginErr: api.ErrInvalidCredentials}
	a, out := newTestApp(t, nil, fc)

	require.NoError(t, a.Status(context.Background()))
	assert.Contains(t, out.String(), "No recent activity.")

	stubInputs(t, "whatever1", "john")
	_ = a.Login(context.Background())
	out.Reset()

	require.NoError(t, a.Status(context.Background()))
	assert.Equal(t, "Invalid username or password.\n", out.String())
}
