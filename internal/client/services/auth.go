// Package services holds client-side business logic that sits between the
// remote API and the UI.
package services

import (
	"context"
	"sync"

	"github.com/harudiary/haru/internal/client/remote"
	"github.com/harudiary/haru/internal/logging"
)

// Auth tracks the signed-in user and tells interested parties when that
// changes. Listeners receive the new user id, or "" on sign-out.
type Auth struct {
	remote remote.Client
	logger logging.Logger

	mu        sync.Mutex
	userID    string
	listeners []func(userID string)
}

func NewAuth(r remote.Client, logger logging.Logger) *Auth {
	return &Auth{remote: r, logger: logger.With("module", "auth")}
}

// OnChange registers fn to run after every auth state change. Registration
// order is delivery order.
func (a *Auth) OnChange(fn func(userID string)) {
	a.mu.Lock()
	a.listeners = append(a.listeners, fn)
	a.mu.Unlock()
}

// CurrentUserID reports the signed-in user, if any.
func (a *Auth) CurrentUserID() (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.userID, a.userID != ""
}

func (a *Auth) Register(ctx context.Context, username, password string) error {
	return a.remote.Register(ctx, username, password)
}

// Login authenticates and publishes the new user id to listeners.
func (a *Auth) Login(ctx context.Context, username, password string) error {
	userID, err := a.remote.Login(ctx, username, password)
	if err != nil {
		return err
	}

	a.logger.Info(ctx, "signed in", "user_id", userID)
	a.setUser(userID)
	return nil
}

// Logout drops the session and publishes the sign-out to listeners.
func (a *Auth) Logout(ctx context.Context) {
	a.remote.Logout()
	a.logger.Info(ctx, "signed out")
	a.setUser("")
}

// setUser swaps the current user and notifies listeners outside the lock so
// a listener may call back into Auth.
func (a *Auth) setUser(userID string) {
	a.mu.Lock()
	a.userID = userID
	listeners := make([]func(string), len(a.listeners))
	copy(listeners, a.listeners)
	a.mu.Unlock()

	for _, fn := range listeners {
		fn(userID)
	}
}
