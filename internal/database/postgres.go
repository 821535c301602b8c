package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github-scout/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var EmbedMigrations embed.FS

const migrationsDir = "migrations"

// NewPostgresDB opens the pool, waits for the server and applies pending migrations.
func NewPostgresDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := Open(ctx, cfg.DSN())
	if err != nil {
		return nil, err
	}

	if err = MigrateDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// Open connects without touching the schema.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err = db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func MigrateDB(db *sql.DB) error {
	return RunMigrations(db, "up")
}

// RunMigrations runs a goose command (up, down, status, version, reset, redo)
// against the embedded migration set.
func RunMigrations(db *sql.DB, command string, args ...string) error {
	goose.SetBaseFS(EmbedMigrations)
	goose.SetLogger(logrus.StandardLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.RunContext(context.Background(), command, db, migrationsDir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}

	return nil
}
