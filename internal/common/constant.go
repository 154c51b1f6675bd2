// Package common contains constants and helpers shared by the client packages.
package common

const (
	// AccessTokenKey is both the response field carrying the token and the
	// key it is stored under locally.
	AccessTokenKey = "access_token"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// DefaultTokenType is assumed when the server omits token_type.
	DefaultTokenType = "bearer"
)
