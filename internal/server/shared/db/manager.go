// Package db wires the repositories over a single database handle and runs
// schema migrations at startup.
package db

import (
	"context"
	"database/sql"

	"github.com/avasquez/softjobs/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
}
