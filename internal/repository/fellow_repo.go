package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github-scout/internal/database"
	"github-scout/internal/domain"
)

// FellowRepository stores fellows in PostgreSQL.
type FellowRepository struct {
	db      *sql.DB
	queries *database.Queries
}

func NewFellowRepository(db *sql.DB, queries *database.Queries) domain.FellowRepository {
	return &FellowRepository{
		db:      db,
		queries: queries,
	}
}

func (r *FellowRepository) Create(ctx context.Context, fellow *domain.Fellow) (*domain.Fellow, error) {
	row, err := r.queries.CreateFellow(ctx, database.CreateFellowParams{
		ID:       fellow.ID,
		FullName: fellow.FullName,
		Username: fellow.Username,
		PodID:    fellow.PodID,
	})
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, domain.ErrFellowAlreadyExists
		case pgForeignKeyViolation:
			return nil, domain.ErrPodNotFound
		}
		return nil, fmt.Errorf("failed to create fellow: %w", err)
	}
	return toFellow(row), nil
}

func (r *FellowRepository) GetByID(ctx context.Context, fellowID string) (*domain.Fellow, error) {
	row, err := r.queries.GetFellowByID(ctx, fellowID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFellowNotFound
		}
		return nil, fmt.Errorf("failed to get fellow: %w", err)
	}
	return toFellow(row), nil
}

// GetPopulated returns the fellow with PRs and commits attached.
func (r *FellowRepository) GetPopulated(ctx context.Context, fellowID string) (*domain.Fellow, error) {
	var fellow *domain.Fellow

	err := runInTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		row, err := q.GetFellowByID(ctx, fellowID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrFellowNotFound
			}
			return fmt.Errorf("failed to get fellow: %w", err)
		}
		prRows, err := q.ListPullRequestsByFellow(ctx, fellowID)
		if err != nil {
			return fmt.Errorf("failed to list pull requests: %w", err)
		}
		commitRows, err := q.ListCommitsByFellow(ctx, fellowID)
		if err != nil {
			return fmt.Errorf("failed to list commits: %w", err)
		}

		fellow = toFellow(row)
		fellow.PRs = toPullRequests(prRows)
		attachCommits(fellow.PRs, commitRows)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return fellow, nil
}

func (r *FellowRepository) ListByPod(ctx context.Context, podID string) ([]*domain.Fellow, error) {
	rows, err := r.queries.ListFellowsByPod(ctx, podID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fellows: %w", err)
	}

	fellows := make([]*domain.Fellow, 0, len(rows))
	for _, row := range rows {
		fellows = append(fellows, toFellow(row))
	}
	return fellows, nil
}

func (r *FellowRepository) Update(ctx context.Context, fellow *domain.Fellow) (*domain.Fellow, error) {
	row, err := r.queries.UpdateFellow(ctx, database.UpdateFellowParams{
		ID:       fellow.ID,
		FullName: fellow.FullName,
		Username: fellow.Username,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFellowNotFound
		}
		return nil, fmt.Errorf("failed to update fellow: %w", err)
	}
	return toFellow(row), nil
}

func (r *FellowRepository) Delete(ctx context.Context, fellowID string) error {
	affected, err := r.queries.DeleteFellow(ctx, fellowID)
	if err != nil {
		return fmt.Errorf("failed to delete fellow: %w", err)
	}
	if affected == 0 {
		return domain.ErrFellowNotFound
	}
	return nil
}
