package domain

import (
	"context"
	"time"
)

// Batch is a cohort, the top-level grouping of pods.
type Batch struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Pods      []*Pod
}

// BatchRepository defines storage operations for batches.
type BatchRepository interface {
	Create(ctx context.Context, batch *Batch) (*Batch, error)
	GetByID(ctx context.Context, batchID string) (*Batch, error)
	// ListPopulated returns every batch with pods, fellows, PRs and commits loaded.
	ListPopulated(ctx context.Context) ([]*Batch, error)
	// GetPopulated returns one batch with its whole subtree loaded.
	GetPopulated(ctx context.Context, batchID string) (*Batch, error)
	UpdateName(ctx context.Context, batchID, name string) (*Batch, error)
	// Delete removes the batch; pods, fellows, PRs and commits cascade.
	Delete(ctx context.Context, batchID string) error
}
