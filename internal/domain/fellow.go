package domain

import (
	"context"
	"time"
)

// Fellow is a program participant tracked by GitHub username.
type Fellow struct {
	ID        string
	FullName  string
	Username  string
	PodID     string
	CreatedAt time.Time
	PRs       []*PullRequest
}

// FellowRepository defines storage operations for fellows.
type FellowRepository interface {
	Create(ctx context.Context, fellow *Fellow) (*Fellow, error)
	GetByID(ctx context.Context, fellowID string) (*Fellow, error)
	// GetPopulated returns the fellow with PRs and their commits loaded.
	GetPopulated(ctx context.Context, fellowID string) (*Fellow, error)
	ListByPod(ctx context.Context, podID string) ([]*Fellow, error)
	Update(ctx context.Context, fellow *Fellow) (*Fellow, error)
	Delete(ctx context.Context, fellowID string) error
}
