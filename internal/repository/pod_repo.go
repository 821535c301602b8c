package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github-scout/internal/database"
	"github-scout/internal/domain"
)

// PodRepository stores pods in PostgreSQL.
type PodRepository struct {
	db      *sql.DB
	queries *database.Queries
}

func NewPodRepository(db *sql.DB, queries *database.Queries) domain.PodRepository {
	return &PodRepository{
		db:      db,
		queries: queries,
	}
}

// Create inserts the pod. pod.ID must already be the composite id.
func (r *PodRepository) Create(ctx context.Context, pod *domain.Pod) (*domain.Pod, error) {
	row, err := r.queries.CreatePod(ctx, database.CreatePodParams{
		ID:      pod.ID,
		Name:    pod.Name,
		BatchID: pod.BatchID,
	})
	if err != nil {
		switch pgErrorCode(err) {
		case pgUniqueViolation:
			return nil, domain.ErrPodAlreadyExists
		case pgForeignKeyViolation:
			return nil, domain.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to create pod: %w", err)
	}
	return toPod(row), nil
}

func (r *PodRepository) GetByID(ctx context.Context, podID string) (*domain.Pod, error) {
	row, err := r.queries.GetPodByID(ctx, podID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPodNotFound
		}
		return nil, fmt.Errorf("failed to get pod: %w", err)
	}
	return toPod(row), nil
}

func (r *PodRepository) ListByBatch(ctx context.Context, batchID string) ([]*domain.Pod, error) {
	rows, err := r.queries.ListPodsByBatch(ctx, batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}

	pods := make([]*domain.Pod, 0, len(rows))
	for _, row := range rows {
		pods = append(pods, toPod(row))
	}
	return pods, nil
}

func (r *PodRepository) UpdateName(ctx context.Context, podID, name string) (*domain.Pod, error) {
	row, err := r.queries.UpdatePodName(ctx, database.UpdatePodNameParams{
		ID:   podID,
		Name: name,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPodNotFound
		}
		return nil, fmt.Errorf("failed to rename pod: %w", err)
	}
	return toPod(row), nil
}

func (r *PodRepository) Delete(ctx context.Context, podID string) error {
	affected, err := r.queries.DeletePod(ctx, podID)
	if err != nil {
		return fmt.Errorf("failed to delete pod: %w", err)
	}
	if affected == 0 {
		return domain.ErrPodNotFound
	}
	return nil
}
