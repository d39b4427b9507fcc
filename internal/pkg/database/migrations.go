package database

import (
	"database/sql"
	"io/fs"

	"github.com/pressly/goose/v3"
)

// MigrateDatabase applies every pending goose migration from the embedded
// filesystem. The pgx stdlib driver must be registered by the caller.
func MigrateDatabase(databaseUrl string, migrations fs.FS, dir string) error {
	db, err := sql.Open("pgx", databaseUrl)
	if err != nil {
		return err
	}
	defer db.Close()

	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.Up(db, dir); err != nil {
		return err
	}

	return nil
}
