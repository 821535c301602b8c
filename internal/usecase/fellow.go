package usecase

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"unicode"

	"github-scout/internal/domain"
)

const (
	fellowIDSuffixLen = 5
	fellowIDAttempts  = 3
	base36            = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// FellowUseCase manages fellows.
type FellowUseCase struct {
	fellowRepo domain.FellowRepository
	podRepo    domain.PodRepository
}

func NewFellowUseCase(fellowRepo domain.FellowRepository, podRepo domain.PodRepository) domain.FellowUseCase {
	return &FellowUseCase{
		fellowRepo: fellowRepo,
		podRepo:    podRepo,
	}
}

// CreateFellow generates the id from the full name. A colliding id is
// regenerated a couple of times before giving up.
func (uc *FellowUseCase) CreateFellow(ctx context.Context, fullName, username, podID string) (*domain.Fellow, error) {
	fullName, username, podID = strings.TrimSpace(fullName), strings.TrimSpace(username), strings.TrimSpace(podID)
	if fullName == "" {
		return nil, domain.ErrInvalidFullName
	}
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}
	if podID == "" {
		return nil, domain.ErrInvalidPodID
	}

	if _, err := uc.podRepo.GetByID(ctx, podID); err != nil {
		return nil, err
	}

	var err error
	for attempt := 0; attempt < fellowIDAttempts; attempt++ {
		var fellow *domain.Fellow
		fellow, err = uc.fellowRepo.Create(ctx, &domain.Fellow{
			ID:       NewFellowID(fullName),
			FullName: fullName,
			Username: username,
			PodID:    podID,
		})
		if err == nil {
			return fellow, nil
		}
		if !errors.Is(err, domain.ErrFellowAlreadyExists) {
			return nil, err
		}
	}
	return nil, err
}

func (uc *FellowUseCase) ListFellows(ctx context.Context, podID string) ([]*domain.Fellow, error) {
	if strings.TrimSpace(podID) == "" {
		return nil, domain.ErrInvalidPodID
	}
	if _, err := uc.podRepo.GetByID(ctx, podID); err != nil {
		return nil, err
	}
	return uc.fellowRepo.ListByPod(ctx, podID)
}

// GetFellow returns the fellow with PRs and commits.
func (uc *FellowUseCase) GetFellow(ctx context.Context, id string) (*domain.Fellow, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidFellowID
	}
	return uc.fellowRepo.GetPopulated(ctx, id)
}

func (uc *FellowUseCase) UpdateFellow(ctx context.Context, id, fullName, username string) (*domain.Fellow, error) {
	fullName, username = strings.TrimSpace(fullName), strings.TrimSpace(username)
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrInvalidFellowID
	}
	if fullName == "" {
		return nil, domain.ErrInvalidFullName
	}
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}

	return uc.fellowRepo.Update(ctx, &domain.Fellow{
		ID:       id,
		FullName: fullName,
		Username: username,
	})
}

func (uc *FellowUseCase) DeleteFellow(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.ErrInvalidFellowID
	}
	return uc.fellowRepo.Delete(ctx, id)
}

// NewFellowID returns slug(fullName) + "-" + 5 random base36 characters.
func NewFellowID(fullName string) string {
	suffix := make([]byte, fellowIDSuffixLen)
	for i := range suffix {
		suffix[i] = base36[rand.Intn(len(base36))]
	}
	return slugify(fullName) + "-" + string(suffix)
}

func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "fellow"
	}
	return slug
}
