package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github-scout/internal/database"
	"github-scout/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Unique constraints named in 00001_init.sql.
const (
	prNumberConstraint  = "pull_requests_repository_pr_number_key"
	commitSHAConstraint = "commits_pr_id_sha_key"
)

// runInTx executes fn against queries bound to a single transaction.
// The transaction is rolled back when fn fails.
func runInTx(ctx context.Context, db *sql.DB, queries *database.Queries, fn func(q *database.Queries) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback error: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// pgErrorCode returns the SQLSTATE of a Postgres error, or "" for anything else.
func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func pgConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

// uniqueConflict maps a unique violation on the PR or commit tables to its
// domain error. It returns nil for anything else.
func uniqueConflict(err error) error {
	if pgErrorCode(err) != pgUniqueViolation {
		return nil
	}
	switch pgConstraint(err) {
	case prNumberConstraint:
		return domain.ErrPRAlreadyTracked
	case commitSHAConstraint:
		return domain.ErrInvalidCommit
	}
	return nil
}
