// Package remote is the client-side face of the diary server: entry CRUD
// over HTTP and live snapshot subscriptions over WebSocket. The
// authenticated session carries the owner identity; every call operates on
// the signed-in user's collection.
package remote

import (
	"context"
	"time"

	"github.com/harudiary/haru/internal/diary"
)

// CancelFunc releases a subscription. It is idempotent; after the first
// call the subscription's callback never fires again.
type CancelFunc func()

type Client interface {
	Close() error

	Register(ctx context.Context, username, password string) error
	// Login authenticates and returns the signed-in user's id.
	Login(ctx context.Context, username, password string) (string, error)
	Logout()
	Ping(ctx context.Context) error

	// CreateEntry appends a new entry and returns the server-assigned id.
	CreateEntry(ctx context.Context, dateKey, content string) (string, error)
	UpdateEntry(ctx context.Context, id, content string) error
	DeleteEntry(ctx context.Context, id string) error

	// SubscribeAll streams the owner's full entry set: once on subscribe,
	// then again after every remote mutation.
	SubscribeAll(ctx context.Context, onSnapshot func([]diary.Entry)) (CancelFunc, error)

	// SubscribeMonth narrows the stream to entries whose date key falls in
	// the month's lexical range. The range is fixed at subscribe time; a
	// different month needs a fresh subscription.
	SubscribeMonth(ctx context.Context, year int, month time.Month, onEntries func([]diary.Entry)) (CancelFunc, error)
}
