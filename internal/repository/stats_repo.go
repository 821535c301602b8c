package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github-scout/internal/database"
	"github-scout/internal/domain"
)

// StatsRepository implements the analytics read queries.
type StatsRepository struct {
	queries *database.Queries
}

func NewStatsRepository(queries *database.Queries) domain.StatsRepository {
	return &StatsRepository{
		queries: queries,
	}
}

// ListPRsWithAuthors returns every tracked PR with the owning fellow's
// full name; the name is empty when the fellow row is missing.
func (r *StatsRepository) ListPRsWithAuthors(ctx context.Context) ([]*domain.PullRequest, error) {
	rows, err := r.queries.ListPullRequestsWithAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs with authors: %w", err)
	}

	prs := make([]*domain.PullRequest, len(rows))
	for i, row := range rows {
		pr := toPullRequest(database.PullRequest{
			ID:          row.ID,
			PrNumber:    row.PrNumber,
			Repository:  row.Repository,
			Username:    row.Username,
			FellowID:    row.FellowID,
			Title:       row.Title,
			HtmlUrl:     row.HtmlUrl,
			State:       row.State,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			MergedAt:    row.MergedAt,
			LastChecked: row.LastChecked,
		})
		pr.AuthorFullName = row.FullName
		prs[i] = pr
	}

	return prs, nil
}

func (r *StatsRepository) ListScopePRsCreatedSince(
	ctx context.Context, scope domain.Scope, id string, since time.Time,
) ([]*domain.PullRequest, bool, error) {
	if _, found, err := r.scopeName(ctx, scope, id); err != nil || !found {
		return nil, found, err
	}

	var (
		rows []database.PullRequest
		err  error
	)
	switch scope {
	case domain.ScopeBatch:
		rows, err = r.queries.ListBatchPullRequestsSince(ctx, database.ListBatchPullRequestsSinceParams{
			BatchID:   id,
			CreatedAt: since,
		})
	case domain.ScopePod:
		rows, err = r.queries.ListPodPullRequestsSince(ctx, database.ListPodPullRequestsSinceParams{
			PodID:     id,
			CreatedAt: since,
		})
	case domain.ScopeFellow:
		rows, err = r.queries.ListFellowPullRequestsSince(ctx, database.ListFellowPullRequestsSinceParams{
			FellowID:  id,
			CreatedAt: since,
		})
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to list %s PRs: %w", scope, err)
	}

	return toPullRequests(rows), true, nil
}

// ListScopeCommitsSince returns a single activity for the scope entity, or
// none when it does not exist. Batches and pods are named by name, fellows
// by GitHub username.
func (r *StatsRepository) ListScopeCommitsSince(
	ctx context.Context, scope domain.Scope, id string, since time.Time,
) ([]*domain.ScopeActivity, error) {
	name, found, err := r.scopeName(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return []*domain.ScopeActivity{}, nil
	}

	var rows []database.Commit
	switch scope {
	case domain.ScopeBatch:
		rows, err = r.queries.ListBatchCommitsSince(ctx, database.ListBatchCommitsSinceParams{
			BatchID:    id,
			AuthorDate: since,
		})
	case domain.ScopePod:
		rows, err = r.queries.ListPodCommitsSince(ctx, database.ListPodCommitsSinceParams{
			PodID:      id,
			AuthorDate: since,
		})
	case domain.ScopeFellow:
		rows, err = r.queries.ListFellowCommitsSince(ctx, database.ListFellowCommitsSinceParams{
			FellowID:   id,
			AuthorDate: since,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list %s commits: %w", scope, err)
	}

	return []*domain.ScopeActivity{{Name: name, Commits: toCommits(rows)}}, nil
}

// scopeName looks up the display name of the scope entity.
func (r *StatsRepository) scopeName(ctx context.Context, scope domain.Scope, id string) (string, bool, error) {
	var (
		name string
		err  error
	)
	switch scope {
	case domain.ScopeBatch:
		var b database.Batch
		b, err = r.queries.GetBatchByID(ctx, id)
		name = b.Name
	case domain.ScopePod:
		var p database.Pod
		p, err = r.queries.GetPodByID(ctx, id)
		name = p.Name
	case domain.ScopeFellow:
		var f database.Fellow
		f, err = r.queries.GetFellowByID(ctx, id)
		name = f.Username
	default:
		return "", false, domain.ErrInvalidScope
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %s: %w", scope, err)
	}
	return name, true, nil
}
