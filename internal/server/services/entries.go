package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/harudiary/haru/internal/diary"
	"github.com/harudiary/haru/internal/logging"
	"github.com/harudiary/haru/internal/server/hub"
	"github.com/harudiary/haru/internal/server/models"
	"github.com/harudiary/haru/internal/server/repositories/repomanager"
)

// EntryService owns the per-user entry collection. Every successful mutation
// re-reads the owner's full snapshot and pushes it through the hub, so
// watchers always see the latest complete state, never deltas.
type EntryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hub         *hub.Hub
	logger      logging.Logger
}

func NewEntryService(m repomanager.RepositoryManager, h *hub.Hub, l logging.Logger) *EntryService {
	return &EntryService{
		db:          m.Conn(),
		repomanager: m,
		hub:         h,
		logger:      l.With("module", "entry_service"),
	}
}

// Create stores a new entry and returns its assigned id.
func (s *EntryService) Create(ctx context.Context, userID, title, content string) (string, error) {
	now := time.Now()
	entry := &models.Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	repo := s.repomanager.Entries(s.db)
	if err := repo.Insert(ctx, entry); err != nil {
		return "", fmt.Errorf("error creating entry: %w", err)
	}

	s.broadcast(ctx, userID)
	return entry.ID, nil
}

// UpdateContent overwrites an entry's content for its owner.
func (s *EntryService) UpdateContent(ctx context.Context, userID, id, content string) error {
	repo := s.repomanager.Entries(s.db)
	if err := repo.UpdateContent(ctx, userID, id, content, time.Now()); err != nil {
		return err
	}

	s.broadcast(ctx, userID)
	return nil
}

// Delete removes an entry owned by userID.
func (s *EntryService) Delete(ctx context.Context, userID, id string) error {
	repo := s.repomanager.Entries(s.db)
	if err := repo.Delete(ctx, userID, id); err != nil {
		return err
	}

	s.broadcast(ctx, userID)
	return nil
}

// List returns the owner's entries, optionally narrowed to the lexical
// [from, to] range on the date key. Empty bounds mean no filter.
func (s *EntryService) List(ctx context.Context, userID, from, to string) ([]diary.Entry, error) {
	repo := s.repomanager.Entries(s.db)

	var (
		rows []*models.Entry
		err  error
	)
	if from == "" && to == "" {
		rows, err = repo.SelectByUser(ctx, userID)
	} else {
		rows, err = repo.SelectByUserRange(ctx, userID, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("error selecting entries: %w", err)
	}

	return toWire(rows), nil
}

// Snapshot returns the owner's complete entry set.
func (s *EntryService) Snapshot(ctx context.Context, userID string) ([]diary.Entry, error) {
	return s.List(ctx, userID, "", "")
}

func (s *EntryService) broadcast(ctx context.Context, userID string) {
	snapshot, err := s.Snapshot(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "snapshot reload failed, watchers not notified", "user_id", userID, "error", err)
		return
	}
	s.hub.Broadcast(userID, snapshot)
}

func toWire(rows []*models.Entry) []diary.Entry {
	result := make([]diary.Entry, 0, len(rows))
	for _, row := range rows {
		result = append(result, diary.Entry{
			ID:        row.ID,
			DateKey:   row.Title,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return result
}
