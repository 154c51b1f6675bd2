package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/authshell/internal/client/api"
	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authshell/internal/client/services"
	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	guard       *services.Guard
	session     *session.Session
	db          *sql.DB
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	mu       sync.RWMutex
	mode     Mode
	userName string
}

// NewApp wires the local store, the HTTP client and the services from c.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	sess := session.New(metadata.NewSQLiteRepository(db))
	apiClient := api.NewHTTPClient(c.ServerURL, c.RequestTimeout, log)

	return &App{
		config:      c,
		authService: services.NewAuthService(apiClient, sess, log),
		guard:       services.NewGuard(apiClient, sess, log),
		session:     sess,
		db:          db,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.db.Close(); err != nil {
			a.log.Warn(ctx, "closing database", "error", err)
		}
	}()
	a.Root(ctx)
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

func (a *App) getMode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

func (a *App) setUserName(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.userName = name
}

func (a *App) getUserName() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.userName
}

// isLoggedIn reports whether a token is stored. It says nothing about the
// token's validity; protected views go through the guard.
func (a *App) isLoggedIn() bool {
	tok, err := a.session.Token(context.Background())
	return err == nil && tok != ""
}

// StartOnlineStatusWatcher pings the service every interval and flips the
// connectivity mode shown in the prompt. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := a.authService.Ping(pingCtx); err != nil {
			a.setMode(ctx, ModeOffline)
			return
		}
		a.setMode(ctx, ModeOnline)
	}

	check()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			check()
		case <-ctx.Done():
			return
		}
	}
}
