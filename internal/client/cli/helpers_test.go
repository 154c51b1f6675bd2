package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/authshell/internal/client/api"
	"github.com/dmitrijs2005/authshell/internal/client/config"
	"github.com/dmitrijs2005/authshell/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/authshell/internal/client/services"
	"github.com/dmitrijs2005/authshell/internal/client/session"
	"github.com/dmitrijs2005/authshell/internal/client/storage"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

// newTestApp builds an App over a real SQLite session. client backs the
// guard; auth replaces the auth service when non-nil.
func newTestApp(t *testing.T, auth services.AuthService, client api.Client) (*App, *bytes.Buffer) {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cli.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sess := session.New(metadata.NewSQLiteRepository(db))
	if client == nil {
		client = &fakeAPI{}
	}
	if auth == nil {
		auth = services.NewAuthService(client, sess, logging.Nop())
	}

	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:      cfg,
		authService: auth,
		guard:       services.NewGuard(client, sess, logging.Nop()),
		session:     sess,
		db:          db,
		log:         logging.Nop(),
		reader:      bufio.NewReader(strings.NewReader("")),
		out:         &out,
	}, &out
}

// stubInputs answers text prompts in order and every password prompt with
// password. It reports how many prompts were shown.
func stubInputs(t *testing.T, password string, texts ...string) *int {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})

	prompts := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		prompts++
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		prompts++
		return []byte(password), nil
	}
	return &prompts
}

// fakeAPI is an api.Client with canned answers.
type fakeAPI struct {
	registerRet *api.TokenResult
	registerErr error
	loginRet    *api.TokenResult
	loginErr    error
	createErr   error
	currentErr  error
	adminRet    *api.AdminStatus
	adminErr    error
	pingErr     error

	calls []string
}

func (f *fakeAPI) Register(context.Context, string, string) (*api.TokenResult, error) {
	f.calls = append(f.calls, "register")
	return f.registerRet, f.registerErr
}

func (f *fakeAPI) Login(context.Context, string, string) (*api.TokenResult, error) {
	f.calls = append(f.calls, "login")
	return f.loginRet, f.loginErr
}

func (f *fakeAPI) CreateUser(context.Context, api.NewUser) error {
	f.calls = append(f.calls, "create")
	return f.createErr
}

func (f *fakeAPI) CurrentUser(context.Context, string) error {
	f.calls = append(f.calls, "current")
	return f.currentErr
}

func (f *fakeAPI) Admin(context.Context, string) (*api.AdminStatus, error) {
	f.calls = append(f.calls, "admin")
	return f.adminRet, f.adminErr
}

func (f *fakeAPI) Ping(context.Context) error {
	return f.pingErr
}
