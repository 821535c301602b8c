package usecase

import (
	"context"
	"strings"

	"github-scout/internal/domain"
)

// BatchUseCase manages batches.
type BatchUseCase struct {
	batchRepo domain.BatchRepository
}

func NewBatchUseCase(batchRepo domain.BatchRepository) domain.BatchUseCase {
	return &BatchUseCase{
		batchRepo: batchRepo,
	}
}

func (uc *BatchUseCase) CreateBatch(ctx context.Context, id, name string) (*domain.Batch, error) {
	id, name = strings.TrimSpace(id), strings.TrimSpace(name)
	if id == "" {
		return nil, domain.ErrInvalidBatchID
	}
	if name == "" {
		return nil, domain.ErrInvalidBatchName
	}

	return uc.batchRepo.Create(ctx, &domain.Batch{ID: id, Name: name})
}

// ListBatches returns every batch with its whole subtree.
func (uc *BatchUseCase) ListBatches(ctx context.Context) ([]*domain.Batch, error) {
	return uc.batchRepo.ListPopulated(ctx)
}

func (uc *BatchUseCase) GetBatch(ctx context.Context, id string) (*domain.Batch, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidBatchID
	}
	return uc.batchRepo.GetPopulated(ctx, id)
}

func (uc *BatchUseCase) RenameBatch(ctx context.Context, id, name string) (*domain.Batch, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidBatchID
	}
	if name == "" {
		return nil, domain.ErrInvalidBatchName
	}
	return uc.batchRepo.UpdateName(ctx, id, name)
}

func (uc *BatchUseCase) DeleteBatch(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidBatchID
	}
	return uc.batchRepo.Delete(ctx, id)
}
