// Package api talks to the remote authentication service over HTTP.
//
// # Overview
//
// The package provides a transport contract (Client) and its net/http
// implementation (HTTPClient):
//
//   - Register, Login: form-encoded credentials, returning a TokenResult.
//   - CreateUser: JSON signup variant against /user/.
//   - CurrentUser, Admin: bearer-authenticated checks used by route guards.
//   - Ping: reachability probe against the service root.
//
// # Error Handling
//
// HTTP statuses are mapped to sentinel errors matched with errors.Is:
// ErrUsernameExists (400 on /register), ErrInvalidCredentials (401 on
// /login), ErrUnauthorized (401/403 on guarded endpoints), ErrUnavailable
// (transport failures) and ErrUnexpectedStatus for everything else.
//
// Requests are never retried. The token is treated as an opaque string and
// is only ever echoed back in an Authorization header.
package api
