package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Connect opens the MySQL database behind dsn and verifies the connection.
// ParseTime is forced so DATETIME columns scan into time.Time, and
// ClientFoundRows so UPDATE reports matched rows rather than changed rows
// (an update that rewrites identical values must not look like a miss).
func Connect(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.ClientFoundRows = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	conn := sql.OpenDB(connector)
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return conn, nil
}

// Migrate brings the schema up to date using the embedded migration files.
func Migrate(ctx context.Context, conn *sql.DB) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("mysql"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}
