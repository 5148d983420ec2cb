package services

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/dbx"
	"github.com/harudiary/haru/internal/server/models"
	"github.com/harudiary/haru/internal/server/repositories/entries"
	"github.com/harudiary/haru/internal/server/repositories/refreshtokens"
	"github.com/harudiary/haru/internal/server/repositories/users"
)

// fakeRepoManager keeps everything in memory. Conn() returns nil; the fake
// repositories never touch the handle they are given.
type fakeRepoManager struct {
	users   *fakeUserRepo
	entries *fakeEntryRepo
	tokens  *fakeTokenRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:   &fakeUserRepo{byName: map[string]*models.User{}},
		entries: &fakeEntryRepo{},
		tokens:  &fakeTokenRepo{byToken: map[string]*models.RefreshToken{}},
	}
}

func (m *fakeRepoManager) Conn() *sql.DB                                      { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository                    { return m.users }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository                { return m.entries }
func (m *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository    { return m.tokens }
func (m *fakeRepoManager) RunMigrations(context.Context) error                { return nil }
func (m *fakeRepoManager) Close() error                                       { return nil }

type fakeUserRepo struct {
	mu     sync.Mutex
	byName map[string]*models.User
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[user.Username]; ok {
		return nil, common.ErrDuplicate
	}
	user.CreatedAt = time.Now()
	r.byName[user.Username] = user
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byName[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

type fakeEntryRepo struct {
	mu      sync.Mutex
	rows    []*models.Entry
	failAll bool
}

func (r *fakeEntryRepo) Insert(_ context.Context, entry *models.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return common.ErrInternal
	}
	copied := *entry
	r.rows = append(r.rows, &copied)
	return nil
}

func (r *fakeEntryRepo) UpdateContent(_ context.Context, userID, id, content string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return common.ErrInternal
	}
	for _, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			row.Content = content
			row.UpdatedAt = updatedAt
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakeEntryRepo) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return common.ErrInternal
	}
	for i, row := range r.rows {
		if row.ID == id && row.UserID == userID {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

func (r *fakeEntryRepo) SelectByUser(_ context.Context, userID string) ([]*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Entry
	for _, row := range r.rows {
		if row.UserID == userID {
			copied := *row
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEntryRepo) SelectByUserRange(_ context.Context, userID, from, to string) ([]*models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Entry
	for _, row := range r.rows {
		if row.UserID == userID && row.Title >= from && row.Title <= to {
			copied := *row
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeTokenRepo struct {
	mu      sync.Mutex
	byToken map[string]*models.RefreshToken
}

func (r *fakeTokenRepo) Add(_ context.Context, token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byToken[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byToken, token)
	return nil
}
