package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/logging"
)

func testLogger() logging.Logger {
	return logging.Discard()
}

func newClientFor(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewHTTPClient(strings.TrimPrefix(ts.URL, "http://"), testLogger())
}

func TestLogin_StoresTokensAndReturnsUserID(t *testing.T) {
	c := newClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "alice", body["username"])

		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id": "u1", "access_token": "at", "refresh_token": "rt",
		})
	}))

	userID, err := c.Login(context.Background(), "alice", "pw")
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
	require.Equal(t, "at", c.accessToken)
	require.Equal(t, "rt", c.refreshToken)
}

func TestCreateEntry_SendsTitleAndContent(t *testing.T) {
	var gotAuth string
	c := newClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(common.AuthHeaderName)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "2024-05-05", body["title"])
		require.Equal(t, "hello", body["content"])
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "e1"})
	}))
	c.accessToken = "at"

	id, err := c.CreateEntry(context.Background(), "2024-05-05", "hello")
	require.NoError(t, err)
	require.Equal(t, "e1", id)
	require.Equal(t, common.BearerPrefix+"at", gotAuth)
}

func TestDeleteEntry_MapsNotFound(t *testing.T) {
	c := newClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	err := c.DeleteEntry(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDo_RefreshesOnceOn401(t *testing.T) {
	var updates, refreshes int
	c := newClientFor(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/refresh":
			refreshes++
			_ = json.NewEncoder(w).Encode(map[string]string{
				"user_id": "u1", "access_token": "fresh-at", "refresh_token": "fresh-rt",
			})
		case "/api/entries/e1":
			updates++
			if r.Header.Get(common.AuthHeaderName) != common.BearerPrefix+"fresh-at" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	c.accessToken = "stale-at"
	c.refreshToken = "rt"

	require.NoError(t, c.UpdateEntry(context.Background(), "e1", "new content"))
	require.Equal(t, 2, updates)
	require.Equal(t, 1, refreshes)
	require.Equal(t, "fresh-rt", c.refreshToken)
}

func TestDo_UnreachableServer(t *testing.T) {
	c := NewHTTPClient("127.0.0.1:1", testLogger())

	err := c.Ping(context.Background())
	require.ErrorIs(t, err, common.ErrUnavailable)
}

func TestLogout_DropsTokens(t *testing.T) {
	c := NewHTTPClient("127.0.0.1:1", testLogger())
	c.accessToken = "at"
	c.refreshToken = "rt"

	c.Logout()
	require.Empty(t, c.accessToken)
	require.Empty(t, c.refreshToken)
}
