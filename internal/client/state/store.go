// Package state owns the client's in-memory view of the diary: the signed-in
// owner, the selected date, and a date-keyed map of entries kept consistent
// with the server through a live snapshot subscription.
//
// Mutation discipline is deliberately asymmetric: saving is optimistic (the
// entry appears locally before the server confirms), while edit and delete
// apply locally only after the server confirms. The subscription replaces the
// whole map on every push, so any optimistic entry the server rejected
// disappears with the next snapshot.
package state

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/harudiary/haru/internal/client/remote"
	"github.com/harudiary/haru/internal/dateutil"
	"github.com/harudiary/haru/internal/diary"
	"github.com/harudiary/haru/internal/logging"
)

// Store is the diary state store. All methods are safe for concurrent use;
// remote calls happen outside the lock so a slow server never blocks reads.
type Store struct {
	remote remote.Client
	logger logging.Logger

	mu       sync.Mutex
	ownerID  string
	selected string
	entries  map[string][]diary.Entry
	cancel   remote.CancelFunc
	gen      uint64
}

func NewStore(r remote.Client, logger logging.Logger) *Store {
	return &Store{
		remote:   r,
		logger:   logger.With("module", "state"),
		selected: dateutil.Today(),
		entries:  map[string][]diary.Entry{},
	}
}

// authSource is the slice of the auth service the store observes.
type authSource interface {
	OnChange(fn func(userID string))
}

// BindAuth subscribes the store to sign-in/sign-out transitions.
func (s *Store) BindAuth(a authSource) {
	a.OnChange(s.SetOwner)
}

// SetOwner switches the store to a new owner ("" signs out). The previous
// subscription is released, the map is cleared, and for a non-empty owner a
// fresh subscription repopulates it. The selected date survives owner
// changes.
func (s *Store) SetOwner(userID string) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	cancel := s.cancel
	s.cancel = nil
	s.ownerID = userID
	s.entries = map[string][]diary.Entry{}
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if userID == "" {
		return
	}

	ctx := context.Background()
	c, err := s.remote.SubscribeAll(ctx, func(entries []diary.Entry) {
		s.applySnapshot(gen, entries)
	})
	if err != nil {
		s.logger.Warn(ctx, "entry subscription failed", "error", err)
		return
	}

	s.mu.Lock()
	if s.gen != gen {
		// owner changed again while we were dialing
		s.mu.Unlock()
		c()
		return
	}
	s.cancel = c
	s.mu.Unlock()
}

// Close releases the active subscription, if any.
func (s *Store) Close() {
	s.mu.Lock()
	s.gen++
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// applySnapshot rebuilds the map wholesale from a snapshot. The generation
// check drops frames from a subscription that has since been replaced.
func (s *Store) applySnapshot(gen uint64, entries []diary.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	s.entries = diary.GroupByDate(entries)
}

// SaveAnswer records a new answer for the selected date. A content-identical
// answer already under that date makes this a logged no-op. Otherwise the
// entry appears locally at once under a temporary id and the remote create
// runs after; a failed create is logged, never rolled back — the next
// snapshot is ground truth either way.
func (s *Store) SaveAnswer(ctx context.Context, content string) {
	s.mu.Lock()
	if s.ownerID == "" {
		s.mu.Unlock()
		s.logger.Warn(ctx, "save ignored: not signed in")
		return
	}

	dateKey := s.selected
	for _, e := range s.entries[dateKey] {
		if e.Content == content {
			s.mu.Unlock()
			s.logger.Info(ctx, "duplicate answer ignored", "date", dateKey)
			return
		}
	}

	s.entries[dateKey] = append(s.entries[dateKey], diary.Entry{
		ID:      strconv.FormatInt(time.Now().UnixNano(), 10),
		DateKey: dateKey,
		Content: content,
	})
	s.mu.Unlock()

	if _, err := s.remote.CreateEntry(ctx, dateKey, content); err != nil {
		s.logger.Warn(ctx, "answer not persisted", "date", dateKey, "error", err)
	}
}

// DeleteAnswer removes the entry with the given id from the selected date's
// list, but only after the server confirms the delete. It reports whether
// the delete was confirmed.
func (s *Store) DeleteAnswer(ctx context.Context, id string) bool {
	s.mu.Lock()
	if s.ownerID == "" {
		s.mu.Unlock()
		return false
	}
	dateKey := s.selected
	s.mu.Unlock()

	if err := s.remote.DeleteEntry(ctx, id); err != nil {
		s.logger.Warn(ctx, "delete failed", "id", id, "error", err)
		return false
	}

	s.mu.Lock()
	list := s.entries[dateKey]
	for i, e := range list {
		if e.ID == id {
			s.entries[dateKey] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return true
}

// EditAnswer rewrites an entry's content, applying locally only on server
// confirmation. The boolean tells the edit UI whether to close (true) or
// stay open for retry (false).
func (s *Store) EditAnswer(ctx context.Context, id, content string) bool {
	s.mu.Lock()
	if s.ownerID == "" {
		s.mu.Unlock()
		return false
	}
	dateKey := s.selected
	s.mu.Unlock()

	if err := s.remote.UpdateEntry(ctx, id, content); err != nil {
		s.logger.Warn(ctx, "edit failed", "id", id, "error", err)
		return false
	}

	s.mu.Lock()
	list := s.entries[dateKey]
	for i := range list {
		if list[i].ID == id {
			list[i].Content = content
			break
		}
	}
	s.mu.Unlock()
	return true
}

// OwnerID reports the signed-in owner, if any.
func (s *Store) OwnerID() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ownerID, s.ownerID != ""
}

func (s *Store) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// SetSelectedDate moves focus to another date key. Malformed keys are
// ignored; the key format is load-bearing for range filtering.
func (s *Store) SetSelectedDate(dateKey string) {
	if !dateutil.Valid(dateKey) {
		return
	}
	s.mu.Lock()
	s.selected = dateKey
	s.mu.Unlock()
}

// EntriesFor returns a copy of the entries under one date key.
func (s *Store) EntriesFor(dateKey string) []diary.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.entries[dateKey]
	out := make([]diary.Entry, len(list))
	copy(out, list)
	return out
}

// EntriesByDate returns a copy of the whole map.
func (s *Store) EntriesByDate() map[string][]diary.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]diary.Entry, len(s.entries))
	for k, list := range s.entries {
		cp := make([]diary.Entry, len(list))
		copy(cp, list)
		out[k] = cp
	}
	return out
}
