package sqlite

import (
	"database/sql"
	"embed"

	"github.com/GuiaBolso/darwin"
	"github.com/diegoclair/sqlmigrator"
)

// migrations are applied in file name order and recorded by darwin, so
// each file runs once per database.
//
//go:embed sql/*.sql
var migrations embed.FS

// Migrate creates or upgrades the announcement tables.
func Migrate(db *sql.DB) error {
	migrator := sqlmigrator.New(db, darwin.SqliteDialect{})

	return migrator.Migrate(migrations, "sql")
}
