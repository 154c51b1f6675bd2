package api

import "context"

// Client is the transport contract of the remote authentication service.
// All methods honor ctx cancellation.
type Client interface {
	Register(ctx context.Context, username, password string) (*TokenResult, error)
	Login(ctx context.Context, username, password string) (*TokenResult, error)
	CreateUser(ctx context.Context, user NewUser) error
	CurrentUser(ctx context.Context, token string) error
	Admin(ctx context.Context, token string) (*AdminStatus, error)
	Ping(ctx context.Context) error
}
