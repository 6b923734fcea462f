package repomanager

import (
	"context"
	"database/sql"

	"github.com/ivolkov/filecab/internal/dbx"
	"github.com/ivolkov/filecab/internal/server/repositories/files"
	"github.com/ivolkov/filecab/internal/server/repositories/users"
)

// RepositoryManager hands out repositories bound to a DBTX so services can
// run them inside or outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Files(db dbx.DBTX) files.Repository
}
