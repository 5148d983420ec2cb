// Package repomanager bundles repository construction so services can run
// the same repository against either the shared pool or a transaction.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/harudiary/haru/internal/dbx"
	"github.com/harudiary/haru/internal/server/repositories/entries"
	"github.com/harudiary/haru/internal/server/repositories/refreshtokens"
	"github.com/harudiary/haru/internal/server/repositories/users"
)

type RepositoryManager interface {
	Conn() *sql.DB
	Users(db dbx.DBTX) users.Repository
	Entries(db dbx.DBTX) entries.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	RunMigrations(ctx context.Context) error
	Close() error
}
