// Package hub fans per-owner entry snapshots out to live watchers. A watcher
// optionally narrows its view to a lexical [from, to] range on the date key.
package hub

import (
	"sync"

	"github.com/harudiary/haru/internal/diary"
)

const watcherBuffer = 4

// Watcher receives snapshots for one owner. Obtain via Hub.Add, release via
// Hub.Remove.
type Watcher struct {
	owner string
	from  string
	to    string
	ch    chan []diary.Entry
}

// C returns the snapshot delivery channel. It is closed by Hub.Remove.
func (w *Watcher) C() <-chan []diary.Entry {
	return w.ch
}

// Hub is safe for concurrent use by the HTTP layer and the entry service.
type Hub struct {
	mu       sync.Mutex
	watchers map[string]map[*Watcher]struct{}
}

func New() *Hub {
	return &Hub{watchers: make(map[string]map[*Watcher]struct{})}
}

// Add registers a watcher for owner. Empty from/to means no range filter.
func (h *Hub) Add(owner, from, to string) *Watcher {
	w := &Watcher{owner: owner, from: from, to: to, ch: make(chan []diary.Entry, watcherBuffer)}

	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.watchers[owner]
	if !ok {
		set = make(map[*Watcher]struct{})
		h.watchers[owner] = set
	}
	set[w] = struct{}{}
	return w
}

// Remove unregisters w and closes its channel. Safe to call more than once.
func (h *Hub) Remove(w *Watcher) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.watchers[w.owner]
	if !ok {
		return
	}
	if _, ok := set[w]; !ok {
		return
	}
	delete(set, w)
	if len(set) == 0 {
		delete(h.watchers, w.owner)
	}
	close(w.ch)
}

// Broadcast delivers the owner's full snapshot to every watcher, filtered
// per watcher range. A slow consumer has its oldest pending snapshot
// dropped; only the latest state matters.
func (h *Hub) Broadcast(owner string, snapshot []diary.Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for w := range h.watchers[owner] {
		filtered := w.Filter(snapshot)
		select {
		case w.ch <- filtered:
		default:
			select {
			case <-w.ch:
			default:
			}
			select {
			case w.ch <- filtered:
			default:
			}
		}
	}
}

// Filter returns the subset of snapshot within the watcher's range. The
// comparison is plain string ordering on zero-padded date keys.
func (w *Watcher) Filter(snapshot []diary.Entry) []diary.Entry {
	if w.from == "" && w.to == "" {
		out := make([]diary.Entry, len(snapshot))
		copy(out, snapshot)
		return out
	}
	out := make([]diary.Entry, 0, len(snapshot))
	for _, e := range snapshot {
		if e.DateKey >= w.from && e.DateKey <= w.to {
			out = append(out, e)
		}
	}
	return out
}
