package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/authshell/internal/common"
	"github.com/dmitrijs2005/authshell/internal/logging"
)

const (
	registerPath    = "/register"
	loginPath       = "/login"
	createUserPath  = "/user/"
	currentUserPath = "/users/me"
	adminPath       = "/admin"
	rootPath        = "/"

	// error bodies are only kept for diagnostics
	maxErrorBody = 512
)

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
}

// NewHTTPClient builds a client for baseURL. A zero timeout leaves requests
// unbounded, in which case only ctx can stop them.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "api"),
	}
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) (*TokenResult, error) {
	return c.postCredentials(ctx, registerPath, username, password, func(code int) error {
		if code == http.StatusBadRequest {
			return ErrUsernameExists
		}
		return nil
	})
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*TokenResult, error) {
	return c.postCredentials(ctx, loginPath, username, password, func(code int) error {
		if code == http.StatusUnauthorized {
			return ErrInvalidCredentials
		}
		return nil
	})
}

func (c *HTTPClient) CreateUser(ctx context.Context, user NewUser) error {
	body, err := json.Marshal(user)
	if err != nil {
		return err
	}

	resp, err := c.do(ctx, http.MethodPost, createUserPath, "application/json", bytes.NewReader(body), "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return statusError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) CurrentUser(ctx context.Context, token string) error {
	resp, err := c.do(ctx, http.MethodGet, currentUserPath, "", nil, token)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := guardStatus(resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *HTTPClient) Admin(ctx context.Context, token string) (*AdminStatus, error) {
	resp, err := c.do(ctx, http.MethodGet, adminPath, "", nil, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := guardStatus(resp); err != nil {
		return nil, err
	}

	var st AdminStatus
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return &st, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, rootPath, "", nil, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !isSuccess(resp.StatusCode) {
		return ErrUnavailable
	}
	return nil
}

// postCredentials sends the form-encoded username/password pair. known maps
// endpoint-specific statuses to sentinels; it returns nil for the rest.
func (c *HTTPClient) postCredentials(ctx context.Context, path, username, password string, known func(int) error) (*TokenResult, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	resp, err := c.do(ctx, http.MethodPost, path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		if err := known(resp.StatusCode); err != nil {
			return nil, err
		}
		return nil, statusError(resp)
	}

	return decodeToken(resp.Body)
}

func (c *HTTPClient) do(ctx context.Context, method, path, contentType string, body io.Reader, token string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "request done", "method", method, "path", path, "request_id", requestID,
		"status", resp.StatusCode, "duration", time.Since(start))
	return resp, nil
}

func decodeToken(r io.Reader) (*TokenResult, error) {
	var tr TokenResult
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if tr.AccessToken == "" {
		return nil, fmt.Errorf("%w: no %s in body", ErrMalformedResponse, common.AccessTokenKey)
	}
	if tr.TokenType == "" {
		tr.TokenType = common.DefaultTokenType
	}
	return &tr, nil
}

func guardStatus(resp *http.Response) error {
	switch {
	case isSuccess(resp.StatusCode):
		return nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	default:
		return statusError(resp)
	}
}

func statusError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
