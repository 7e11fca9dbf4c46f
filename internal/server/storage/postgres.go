package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avelichko/garagevault/internal/server/migrations"
	"github.com/avelichko/garagevault/internal/server/records"
	"github.com/avelichko/garagevault/internal/server/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresManager struct {
	db      *sql.DB
	users   users.Repository
	records records.Repository
}

func (m *PostgresManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresManager) Users() users.Repository {
	return m.users
}

func (m *PostgresManager) Records() records.Repository {
	return m.records
}

func (m *PostgresManager) Close() error {
	return m.db.Close()
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them.
func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresManager(dsn string) (*PostgresManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	userRepo, err := users.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	recordRepo, err := records.NewPostgresRepository(db)
	if err != nil {
		return nil, fmt.Errorf("record repo creation error: %w", err)
	}

	m := &PostgresManager{
		db:      db,
		users:   userRepo,
		records: recordRepo,
	}

	if err := m.RunMigrations(context.Background()); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}
