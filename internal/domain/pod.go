package domain

import (
	"context"
	"time"
)

// Pod is a sub-group of fellows within a batch.
type Pod struct {
	ID        string
	Name      string
	BatchID   string
	CreatedAt time.Time
	Fellows   []*Fellow
}

// PodID builds the stored pod id from the batch id and the local id.
func PodID(batchID, localID string) string {
	return batchID + "." + localID
}

// PodRepository defines storage operations for pods.
type PodRepository interface {
	Create(ctx context.Context, pod *Pod) (*Pod, error)
	GetByID(ctx context.Context, podID string) (*Pod, error)
	ListByBatch(ctx context.Context, batchID string) ([]*Pod, error)
	UpdateName(ctx context.Context, podID, name string) (*Pod, error)
	Delete(ctx context.Context, podID string) error
}
