package httpapi

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/harudiary/haru/internal/diary"
)

const (
	watchWriteTimeout = 5 * time.Second
	watchPingInterval = 30 * time.Second
)

// snapshotFrame is the single server-to-client message type on a watch
// connection: the owner's full (optionally range-filtered) entry set.
type snapshotFrame struct {
	Entries []diary.Entry `json:"entries"`
}

// handleWatch upgrades to WebSocket and streams snapshots: one immediately
// with the current state, then one per qualifying change. The connection
// carries no client-to-server data; reads only serve to detect close.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	from, to, ok := rangeParams(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "from and to must be given together")
		return
	}

	initial, err := s.entries.List(r.Context(), userID, from, to)
	if err != nil {
		s.logger.Error(r.Context(), "initial snapshot failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		s.logger.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	watcher := s.hub.Add(userID, from, to)
	s.logger.Debug(r.Context(), "watcher attached", "user_id", userID, "from", from, "to", to)

	// reader: drains control frames and unblocks on peer close
	go func() {
		defer s.hub.Remove(watcher)
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := func(entries []diary.Entry) error {
		_ = conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
		return conn.WriteJSON(snapshotFrame{Entries: entries})
	}

	if err := write(initial); err != nil {
		s.hub.Remove(watcher)
		conn.Close()
		return
	}

	ticker := time.NewTicker(watchPingInterval)
	defer ticker.Stop()

	for {
		select {
		case snapshot, ok := <-watcher.C():
			if !ok {
				// removed by the reader goroutine
				return
			}
			if err := write(snapshot); err != nil {
				s.hub.Remove(watcher)
				conn.Close()
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(watchWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.hub.Remove(watcher)
				conn.Close()
				return
			}
		}
	}
}
