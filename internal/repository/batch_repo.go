package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github-scout/internal/database"
	"github-scout/internal/domain"
)

// BatchRepository stores batches in PostgreSQL.
type BatchRepository struct {
	db      *sql.DB
	queries *database.Queries
}

func NewBatchRepository(db *sql.DB, queries *database.Queries) domain.BatchRepository {
	return &BatchRepository{
		db:      db,
		queries: queries,
	}
}

func (r *BatchRepository) Create(ctx context.Context, batch *domain.Batch) (*domain.Batch, error) {
	row, err := r.queries.CreateBatch(ctx, database.CreateBatchParams{
		ID:   batch.ID,
		Name: batch.Name,
	})
	if err != nil {
		if pgErrorCode(err) == pgUniqueViolation {
			return nil, domain.ErrBatchAlreadyExists
		}
		return nil, fmt.Errorf("failed to create batch: %w", err)
	}
	return toBatch(row), nil
}

func (r *BatchRepository) GetByID(ctx context.Context, batchID string) (*domain.Batch, error) {
	row, err := r.queries.GetBatchByID(ctx, batchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}
	return toBatch(row), nil
}

// ListPopulated loads the whole hierarchy in five queries inside one
// transaction and nests it in memory.
func (r *BatchRepository) ListPopulated(ctx context.Context) ([]*domain.Batch, error) {
	var batches []*domain.Batch

	err := runInTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		batchRows, err := q.ListBatches(ctx)
		if err != nil {
			return fmt.Errorf("failed to list batches: %w", err)
		}
		podRows, err := q.ListPods(ctx)
		if err != nil {
			return fmt.Errorf("failed to list pods: %w", err)
		}
		fellowRows, err := q.ListFellows(ctx)
		if err != nil {
			return fmt.Errorf("failed to list fellows: %w", err)
		}
		prRows, err := q.ListPullRequests(ctx)
		if err != nil {
			return fmt.Errorf("failed to list pull requests: %w", err)
		}
		commitRows, err := q.ListCommits(ctx)
		if err != nil {
			return fmt.Errorf("failed to list commits: %w", err)
		}

		batches = assembleTree(batchRows, podRows, fellowRows, prRows, commitRows)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batches, nil
}

func (r *BatchRepository) GetPopulated(ctx context.Context, batchID string) (*domain.Batch, error) {
	var batch *domain.Batch

	err := runInTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		batchRow, err := q.GetBatchByID(ctx, batchID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBatchNotFound
			}
			return fmt.Errorf("failed to get batch: %w", err)
		}
		podRows, err := q.ListPodsByBatch(ctx, batchID)
		if err != nil {
			return fmt.Errorf("failed to list pods: %w", err)
		}
		fellowRows, err := q.ListFellowsByBatch(ctx, batchID)
		if err != nil {
			return fmt.Errorf("failed to list fellows: %w", err)
		}
		prRows, err := q.ListPullRequestsByBatch(ctx, batchID)
		if err != nil {
			return fmt.Errorf("failed to list pull requests: %w", err)
		}
		commitRows, err := q.ListCommitsByBatch(ctx, batchID)
		if err != nil {
			return fmt.Errorf("failed to list commits: %w", err)
		}

		batch = assembleTree([]database.Batch{batchRow}, podRows, fellowRows, prRows, commitRows)[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch, nil
}

func (r *BatchRepository) UpdateName(ctx context.Context, batchID, name string) (*domain.Batch, error) {
	row, err := r.queries.UpdateBatchName(ctx, database.UpdateBatchNameParams{
		ID:   batchID,
		Name: name,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to rename batch: %w", err)
	}
	return toBatch(row), nil
}

// Delete removes the batch. Pods, fellows, PRs and commits go with it
// through ON DELETE CASCADE.
func (r *BatchRepository) Delete(ctx context.Context, batchID string) error {
	affected, err := r.queries.DeleteBatch(ctx, batchID)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	if affected == 0 {
		return domain.ErrBatchNotFound
	}
	return nil
}
