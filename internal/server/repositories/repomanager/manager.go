package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storeadmin/internal/dbx"
	"github.com/dmitrijs2005/storeadmin/internal/server/repositories/stores"
	"github.com/dmitrijs2005/storeadmin/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Stores(db dbx.DBTX) stores.Repository
}
