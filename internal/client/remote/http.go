package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/diary"
	"github.com/harudiary/haru/internal/logging"
)

const requestTimeout = 10 * time.Second

// HTTPClient implements Client against the diary server's JSON API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client for the server at addr (host:port).
func NewHTTPClient(addr string, logger logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: "http://" + addr,
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger.With("module", "remote"),
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", credentialsRequest{username, password}, nil)
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", credentialsRequest{username, password}, &resp)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	c.mu.Unlock()

	return resp.UserID, nil
}

// Logout drops the session tokens. The refresh token simply expires
// server-side.
func (c *HTTPClient) Logout() {
	c.mu.Lock()
	c.accessToken = ""
	c.refreshToken = ""
	c.mu.Unlock()
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/ping", nil, nil)
}

type createEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type createEntryResponse struct {
	ID string `json:"id"`
}

func (c *HTTPClient) CreateEntry(ctx context.Context, dateKey, content string) (string, error) {
	var resp createEntryResponse
	err := c.do(ctx, http.MethodPost, "/api/entries", createEntryRequest{Title: dateKey, Content: content}, &resp)
	if err != nil {
		return "", err
	}
	return resp.ID, nil
}

type updateEntryRequest struct {
	Content string `json:"content"`
}

func (c *HTTPClient) UpdateEntry(ctx context.Context, id, content string) error {
	return c.do(ctx, http.MethodPut, "/api/entries/"+id, updateEntryRequest{Content: content}, nil)
}

func (c *HTTPClient) DeleteEntry(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/entries/"+id, nil, nil)
}

type listEntriesResponse struct {
	Entries []diary.Entry `json:"entries"`
}

// ListEntries fetches the owner's entries, optionally bounded by a lexical
// [from, to] range on the date key.
func (c *HTTPClient) ListEntries(ctx context.Context, from, to string) ([]diary.Entry, error) {
	path := "/api/entries"
	if from != "" || to != "" {
		path += "?from=" + from + "&to=" + to
	}
	var resp listEntriesResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entries, nil
}

// do issues one JSON request. On a 401 it refreshes the token pair once and
// retries, mirroring the session a long-lived client keeps with the server.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	status, err := c.doOnce(ctx, method, path, body, out)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized && c.tryRefresh(ctx) {
		status, err = c.doOnce(ctx, method, path, body, out)
		if err != nil {
			return err
		}
	}
	return statusError(status)
}

func (c *HTTPClient) doOnce(ctx context.Context, method, path string, body, out any) (int, error) {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.Lock()
	token := c.accessToken
	c.mu.Unlock()
	if token != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return 0, fmt.Errorf("decoding response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (c *HTTPClient) tryRefresh(ctx context.Context) bool {
	c.mu.Lock()
	refresh := c.refreshToken
	c.mu.Unlock()
	if refresh == "" {
		return false
	}

	var resp tokenResponse
	status, err := c.doOnce(ctx, http.MethodPost, "/api/auth/refresh", refreshRequest{RefreshToken: refresh}, &resp)
	if err != nil || status != http.StatusOK {
		c.logger.Warn(ctx, "token refresh failed", "status", status, "error", err)
		return false
	}

	c.mu.Lock()
	c.accessToken = resp.AccessToken
	c.refreshToken = resp.RefreshToken
	c.mu.Unlock()
	return true
}

func statusError(status int) error {
	switch {
	case status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return common.ErrUnauthorized
	case status == http.StatusNotFound:
		return common.ErrNotFound
	case status == http.StatusConflict:
		return common.ErrDuplicate
	default:
		return fmt.Errorf("server returned status %d", status)
	}
}
