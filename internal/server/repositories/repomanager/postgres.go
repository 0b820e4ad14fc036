// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/dbx"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/migrations"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/attendances"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/classes"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/payments"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/receipts"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/students"
	"github.com/uhuum/escolinha-10-na-bola-sub001/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Students returns a students.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Students(db dbx.DBTX) students.Repository {
	return students.NewPostgresRepository(db)
}

// Classes returns a classes.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Classes(db dbx.DBTX) classes.Repository {
	return classes.NewPostgresRepository(db)
}

// Payments returns a payments.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Payments(db dbx.DBTX) payments.Repository {
	return payments.NewPostgresRepository(db)
}

// Attendances returns an attendances.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Attendances(db dbx.DBTX) attendances.Repository {
	return attendances.NewPostgresRepository(db)
}

// Receipts returns a receipts.Repository bound to the provided DBTX.
func (m *PostgresRepositoryManager) Receipts(db dbx.DBTX) receipts.Repository {
	return receipts.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
