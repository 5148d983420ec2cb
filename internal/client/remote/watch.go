package remote

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/dateutil"
	"github.com/harudiary/haru/internal/diary"
	"github.com/harudiary/haru/internal/logging"
)

const (
	wsHandshakeTimeout = 5 * time.Second
	reconnectDelay     = 5 * time.Second
)

type snapshotFrame struct {
	Entries []diary.Entry `json:"entries"`
}

func (c *HTTPClient) SubscribeAll(ctx context.Context, onSnapshot func([]diary.Entry)) (CancelFunc, error) {
	return c.watch(ctx, "", "", onSnapshot)
}

func (c *HTTPClient) SubscribeMonth(ctx context.Context, year int, month time.Month, onEntries func([]diary.Entry)) (CancelFunc, error) {
	from, to := dateutil.MonthRange(year, month)
	return c.watch(ctx, from, to, onEntries)
}

// subscription is one live watch. Cancel is safe to call any number of
// times; once called, fn never runs again even if a frame is already in
// flight.
type subscription struct {
	once   sync.Once
	done   chan struct{}
	logger logging.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscription) Cancel() {
	s.once.Do(func() {
		close(s.done)
		s.mu.Lock()
		if s.conn != nil {
			_ = s.conn.Close()
		}
		s.mu.Unlock()
	})
}

func (s *subscription) canceled() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *subscription) setConn(conn *websocket.Conn) {
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()
}

func (c *HTTPClient) watch(ctx context.Context, from, to string, fn func([]diary.Entry)) (CancelFunc, error) {
	sub := &subscription{done: make(chan struct{}), logger: c.logger}

	conn, err := c.dialWatch(ctx, from, to)
	if err != nil {
		return nil, err
	}
	sub.setConn(conn)

	go sub.run(ctx, c, conn, from, to, fn)

	return sub.Cancel, nil
}

// run pumps snapshot frames into fn until canceled, redialing on transport
// errors. The canceled check before each fn call guards against a frame
// landing after Cancel.
func (s *subscription) run(ctx context.Context, c *HTTPClient, conn *websocket.Conn, from, to string, fn func([]diary.Entry)) {
	for {
		for {
			var frame snapshotFrame
			if err := conn.ReadJSON(&frame); err != nil {
				break
			}
			if s.canceled() {
				return
			}
			fn(frame.Entries)
		}
		_ = conn.Close()

		// transport broke: redial until it heals or the watch is released
		for {
			if s.canceled() || ctx.Err() != nil {
				return
			}
			select {
			case <-s.done:
				return
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}

			fresh, err := c.dialWatch(ctx, from, to)
			if err != nil {
				s.logger.Warn(ctx, "watch redial failed", "error", err)
				continue
			}
			if s.canceled() {
				_ = fresh.Close()
				return
			}
			s.setConn(fresh)
			conn = fresh
			break
		}
	}
}

// dialWatch opens the watch socket. A handshake rejected with 401 gets one
// refresh-and-retry, same as plain requests, so a long-idle subscription
// survives access token expiry.
func (c *HTTPClient) dialWatch(ctx context.Context, from, to string) (*websocket.Conn, error) {
	conn, status, err := c.dialWatchOnce(ctx, from, to)
	if err != nil && status == http.StatusUnauthorized && c.tryRefresh(ctx) {
		conn, _, err = c.dialWatchOnce(ctx, from, to)
	}
	return conn, err
}

func (c *HTTPClient) dialWatchOnce(ctx context.Context, from, to string) (*websocket.Conn, int, error) {
	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http") + "/api/entries/watch"
	if from != "" || to != "" {
		wsURL += "?from=" + from + "&to=" + to
	}

	c.mu.Lock()
	token := c.accessToken
	c.mu.Unlock()

	header := http.Header{}
	if token != "" {
		header.Set(common.AuthHeaderName, common.BearerPrefix+token)
	}

	dialer := websocket.Dialer{HandshakeTimeout: wsHandshakeTimeout}
	conn, resp, err := dialer.DialContext(ctx, wsURL, header)
	status := 0
	if resp != nil {
		status = resp.StatusCode
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, status, err
	}
	return conn, status, nil
}
