package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/pressly/goose"
)

// Migrate applies the goose migrations found in dir.
func Migrate(cfg DBConfig, dir string) error {
	conn, err := sql.Open("postgres", cfg.ConnString())
	if err != nil {
		return fmt.Errorf("opening migrations connection: %w", err)
	}
	defer conn.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Up(conn, dir); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}
