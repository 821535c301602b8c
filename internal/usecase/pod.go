package usecase

import (
	"context"
	"strings"

	"github-scout/internal/domain"
)

// PodUseCase manages pods.
type PodUseCase struct {
	podRepo    domain.PodRepository
	batchRepo  domain.BatchRepository
	fellowRepo domain.FellowRepository
}

func NewPodUseCase(podRepo domain.PodRepository, batchRepo domain.BatchRepository, fellowRepo domain.FellowRepository) domain.PodUseCase {
	return &PodUseCase{
		podRepo:    podRepo,
		batchRepo:  batchRepo,
		fellowRepo: fellowRepo,
	}
}

// CreatePod stores the pod under "<batchID>.<localID>".
func (uc *PodUseCase) CreatePod(ctx context.Context, localID, name, batchID string) (*domain.Pod, error) {
	localID, name, batchID = strings.TrimSpace(localID), strings.TrimSpace(name), strings.TrimSpace(batchID)
	if localID == "" {
		return nil, domain.ErrInvalidPodID
	}
	if name == "" {
		return nil, domain.ErrInvalidPodName
	}
	if batchID == "" {
		return nil, domain.ErrInvalidBatchID
	}

	if _, err := uc.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}

	return uc.podRepo.Create(ctx, &domain.Pod{
		ID:      domain.PodID(batchID, localID),
		Name:    name,
		BatchID: batchID,
	})
}

func (uc *PodUseCase) ListPods(ctx context.Context, batchID string) ([]*domain.Pod, error) {
	if strings.TrimSpace(batchID) == "" {
		return nil, domain.ErrInvalidBatchID
	}
	if _, err := uc.batchRepo.GetByID(ctx, batchID); err != nil {
		return nil, err
	}
	return uc.podRepo.ListByBatch(ctx, batchID)
}

// GetPod returns the pod with its fellows.
func (uc *PodUseCase) GetPod(ctx context.Context, id string) (*domain.Pod, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidPodID
	}

	pod, err := uc.podRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pod.Fellows, err = uc.fellowRepo.ListByPod(ctx, id)
	if err != nil {
		return nil, err
	}

	return pod, nil
}

func (uc *PodUseCase) RenamePod(ctx context.Context, id, name string) (*domain.Pod, error) {
	name = strings.TrimSpace(name)
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidPodID
	}
	if name == "" {
		return nil, domain.ErrInvalidPodName
	}
	return uc.podRepo.UpdateName(ctx, id, name)
}

func (uc *PodUseCase) DeletePod(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidPodID
	}
	return uc.podRepo.Delete(ctx, id)
}
