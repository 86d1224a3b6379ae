// Package postgres implements the storage ports on PostgreSQL through
// database/sql with the pgx driver. Schema migrations are embedded in the
// binary and applied with goose at startup.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/ekocak/todo-service/internal/adapters/storage/postgres/migrations"
	"github.com/ekocak/todo-service/internal/platform/config"
)

// Store owns the database connection pool and vends repositories bound to it.
type Store struct {
	db *sql.DB
}

// New opens a connection pool against the configured DSN and applies the pool
// limits. The pool is not pinged here; call Migrate or HealthCheck to verify
// connectivity.
func New(cfg *config.DatabaseConfig) (*Store, error) {
	db, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return &Store{db: db}, nil
}

// Migrate applies the embedded goose migrations.
func (s *Store) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("setting migration dialect: %w", err)
	}
	if err := goose.UpContext(ctx, s.db, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Items returns the item repository bound to this store's pool.
func (s *Store) Items() *ItemRepository {
	return NewItemRepository(s.db)
}

// Users returns the user repository bound to this store's pool.
func (s *Store) Users() *UserRepository {
	return NewUserRepository(s.db)
}

// Name identifies this dependency in health check results.
func (s *Store) Name() string {
	return "postgres"
}

// HealthCheck pings the database, reporting pool-level connectivity.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
