// Package storage owns the database handle: it opens the pgx connection,
// applies the embedded migrations and hands out repositories bound to it.
// The handle is acquired once at startup and released on shutdown.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/avoronov/authgate/internal/dbx"
	"github.com/avoronov/authgate/internal/server/migrations"
	"github.com/avoronov/authgate/internal/server/users"
)

type PostgresManager struct {
	db *sql.DB
}

// NewPostgresManager opens the database and brings the schema up to date.
func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresManager{db: db}

	if err := m.RunMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

// Users returns a user repository bound to db, which may be the shared
// connection or an open transaction.
func (m *PostgresManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	return goose.UpContext(ctx, m.db, ".")
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}
