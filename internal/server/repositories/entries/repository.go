package entries

import (
	"context"
	"time"

	"github.com/harudiary/haru/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, entry *models.Entry) error
	UpdateContent(ctx context.Context, userID, id, content string, updatedAt time.Time) error
	Delete(ctx context.Context, userID, id string) error
	SelectByUser(ctx context.Context, userID string) ([]*models.Entry, error)
	SelectByUserRange(ctx context.Context, userID, from, to string) ([]*models.Entry, error)
}
