// Package entries provides the PostgreSQL-backed repository for diary
// entries. Range selection compares the title column lexically: titles are
// zero-padded YYYY-MM-DD keys, so string order is date order.
package entries

import (
	"context"
	"fmt"
	"time"

	"github.com/harudiary/haru/internal/common"
	"github.com/harudiary/haru/internal/dbx"
	"github.com/harudiary/haru/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert stores a new entry.
func (r *PostgresRepository) Insert(ctx context.Context, entry *models.Entry) error {
	query := `
		INSERT INTO entries (id, user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.UserID, entry.Title, entry.Content, entry.CreatedAt, entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// UpdateContent overwrites an entry's content. The user_id predicate keeps
// one owner from touching another's rows; a miss on either column reports
// common.ErrNotFound.
func (r *PostgresRepository) UpdateContent(ctx context.Context, userID, id, content string, updatedAt time.Time) error {
	query := `UPDATE entries SET content=$1, updated_at=$2 WHERE id=$3 AND user_id=$4`

	res, err := r.db.ExecContext(ctx, query, content, updatedAt, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// Delete removes an entry owned by userID.
func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	query := `DELETE FROM entries WHERE id=$1 AND user_id=$2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// SelectByUser returns the owner's full entry set in creation order.
func (r *PostgresRepository) SelectByUser(ctx context.Context, userID string) ([]*models.Entry, error) {
	query := `
		SELECT id, title, content, created_at, updated_at FROM entries
		WHERE user_id=$1 ORDER BY created_at;
	`
	return r.selectEntries(ctx, userID, query, userID)
}

// SelectByUserRange returns entries whose title falls in [from, to],
// compared as strings.
func (r *PostgresRepository) SelectByUserRange(ctx context.Context, userID, from, to string) ([]*models.Entry, error) {
	query := `
		SELECT id, title, content, created_at, updated_at FROM entries
		WHERE user_id=$1 AND title >= $2 AND title <= $3 ORDER BY created_at;
	`
	return r.selectEntries(ctx, userID, query, userID, from, to)
}

func (r *PostgresRepository) selectEntries(ctx context.Context, userID, query string, args ...any) ([]*models.Entry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		item := models.Entry{UserID: userID}
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
