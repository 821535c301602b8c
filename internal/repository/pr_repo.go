package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github-scout/internal/database"
	"github-scout/internal/domain"
)

// PRRepository stores pull requests and their commits in PostgreSQL.
type PRRepository struct {
	db      *sql.DB
	queries *database.Queries
}

func NewPRRepository(db *sql.DB, queries *database.Queries) domain.PRRepository {
	return &PRRepository{
		db:      db,
		queries: queries,
	}
}

// CreateWithCommits inserts the PR and all of its commits in one transaction.
func (r *PRRepository) CreateWithCommits(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
	var created *domain.PullRequest

	err := runInTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		row, err := q.CreatePullRequest(ctx, database.CreatePullRequestParams{
			PrNumber:    int32(pr.Number),
			Repository:  pr.Repository,
			Username:    pr.Username,
			FellowID:    pr.FellowID,
			Title:       pr.Title,
			HtmlUrl:     pr.HTMLURL,
			State:       pr.State,
			CreatedAt:   pr.CreatedAt,
			UpdatedAt:   pr.UpdatedAt,
			MergedAt:    nullTime(pr.MergedAt),
			LastChecked: pr.LastChecked,
		})
		if err != nil {
			if conflict := uniqueConflict(err); conflict != nil {
				return conflict
			}
			if pgErrorCode(err) == pgForeignKeyViolation {
				return domain.ErrFellowNotFound
			}
			return fmt.Errorf("failed to create PR: %w", err)
		}

		created = toPullRequest(row)
		created.Commits, err = insertCommits(ctx, q, created.ID, pr.Commits)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (r *PRRepository) GetByID(ctx context.Context, prID int64) (*domain.PullRequest, error) {
	row, err := r.queries.GetPullRequestByID(ctx, prID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPRNotFound
		}
		return nil, fmt.Errorf("failed to get PR: %w", err)
	}

	commitRows, err := r.queries.ListCommitsByPR(ctx, prID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	pr := toPullRequest(row)
	pr.Commits = toCommits(commitRows)
	return pr, nil
}

func (r *PRRepository) ExistsByNumber(ctx context.Context, repository string, number int) (bool, error) {
	count, err := r.queries.PullRequestExistsByNumber(ctx, database.PullRequestExistsByNumberParams{
		Repository: repository,
		PrNumber:   int32(number),
	})
	if err != nil {
		return false, fmt.Errorf("failed to check PR exists: %w", err)
	}
	return count > 0, nil
}

// ListByFellow returns the fellow's PRs with commits attached.
func (r *PRRepository) ListByFellow(ctx context.Context, fellowID string) ([]*domain.PullRequest, error) {
	prRows, err := r.queries.ListPullRequestsByFellow(ctx, fellowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list PRs: %w", err)
	}

	commitRows, err := r.queries.ListCommitsByFellow(ctx, fellowID)
	if err != nil {
		return nil, fmt.Errorf("failed to list commits: %w", err)
	}

	prs := toPullRequests(prRows)
	attachCommits(prs, commitRows)
	return prs, nil
}

// ReplaceWithCommits updates the PR row, drops every commit it had and
// inserts pr.Commits, all or nothing.
func (r *PRRepository) ReplaceWithCommits(ctx context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
	var updated *domain.PullRequest

	err := runInTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		row, err := q.UpdatePullRequest(ctx, database.UpdatePullRequestParams{
			ID:          pr.ID,
			PrNumber:    int32(pr.Number),
			Repository:  pr.Repository,
			Username:    pr.Username,
			Title:       pr.Title,
			HtmlUrl:     pr.HTMLURL,
			State:       pr.State,
			CreatedAt:   pr.CreatedAt,
			UpdatedAt:   pr.UpdatedAt,
			MergedAt:    nullTime(pr.MergedAt),
			LastChecked: pr.LastChecked,
		})
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrPRNotFound
			}
			if conflict := uniqueConflict(err); conflict != nil {
				return conflict
			}
			return fmt.Errorf("failed to update PR: %w", err)
		}

		if _, err = q.DeleteCommitsByPR(ctx, pr.ID); err != nil {
			return fmt.Errorf("failed to delete commits: %w", err)
		}

		updated = toPullRequest(row)
		updated.Commits, err = insertCommits(ctx, q, updated.ID, pr.Commits)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AddCommits appends commits to an existing PR.
func (r *PRRepository) AddCommits(ctx context.Context, prID int64, commits []*domain.Commit) ([]*domain.Commit, error) {
	var added []*domain.Commit

	err := runInTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		if _, err := q.GetPullRequestByID(ctx, prID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrPRNotFound
			}
			return fmt.Errorf("failed to get PR: %w", err)
		}

		var err error
		added, err = insertCommits(ctx, q, prID, commits)
		return err
	})
	if err != nil {
		return nil, err
	}

	return added, nil
}

// Delete removes the commits and then the PR in one transaction.
func (r *PRRepository) Delete(ctx context.Context, prID int64) error {
	return runInTx(ctx, r.db, r.queries, func(q *database.Queries) error {
		if _, err := q.DeleteCommitsByPR(ctx, prID); err != nil {
			return fmt.Errorf("failed to delete commits: %w", err)
		}

		affected, err := q.DeletePullRequest(ctx, prID)
		if err != nil {
			return fmt.Errorf("failed to delete PR: %w", err)
		}
		if affected == 0 {
			return domain.ErrPRNotFound
		}
		return nil
	})
}

func insertCommits(ctx context.Context, q *database.Queries, prID int64, commits []*domain.Commit) ([]*domain.Commit, error) {
	inserted := make([]*domain.Commit, 0, len(commits))
	for _, c := range commits {
		row, err := q.CreateCommit(ctx, database.CreateCommitParams{
			PrID:       prID,
			Sha:        c.SHA,
			Message:    c.Message,
			AuthorName: c.AuthorName,
			AuthorDate: c.AuthorDate,
			HtmlUrl:    c.HTMLURL,
		})
		if err != nil {
			if conflict := uniqueConflict(err); conflict != nil {
				return nil, fmt.Errorf("%w: duplicate sha %s", conflict, c.SHA)
			}
			return nil, fmt.Errorf("failed to create commit %s: %w", c.SHA, err)
		}
		inserted = append(inserted, toCommit(row))
	}
	return inserted, nil
}
