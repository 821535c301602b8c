package domain

import (
	"context"
	"strings"
	"time"
)

const (
	StateOpen   = "open"
	StateClosed = "closed"
)

// Derived PR statuses.
const (
	StatusOpen   = "open"
	StatusMerged = "merged"
	StatusClosed = "closed"
)

// PullRequest is a pull request mirrored from GitHub.
type PullRequest struct {
	ID          int64
	Number      int
	Repository  string
	Username    string
	FellowID    string
	Title       string
	HTMLURL     string
	State       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	MergedAt    *time.Time
	LastChecked time.Time
	Commits     []*Commit

	// AuthorFullName is the full name of the owning fellow when loaded
	// through a join; empty otherwise.
	AuthorFullName string
}

// Status distinguishes merged from closed-without-merging.
func (pr *PullRequest) Status() string {
	switch {
	case pr.State == StateOpen:
		return StatusOpen
	case pr.MergedAt != nil:
		return StatusMerged
	default:
		return StatusClosed
	}
}

// ValidState reports whether state is one of the stored PR states.
func ValidState(state string) bool {
	return state == StateOpen || state == StateClosed
}

// SplitRepository splits "owner/name".
func SplitRepository(repository string) (owner, name string, ok bool) {
	owner, name, ok = strings.Cut(repository, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", false
	}
	return owner, name, true
}

// Commit belongs to exactly one pull request.
type Commit struct {
	ID         int64
	PRID       int64
	SHA        string
	Message    string
	AuthorName string
	AuthorDate time.Time
	HTMLURL    string
}

// PRRepository defines storage operations for pull requests and their commits.
type PRRepository interface {
	// CreateWithCommits inserts the PR and its commits in one transaction.
	CreateWithCommits(ctx context.Context, pr *PullRequest) (*PullRequest, error)
	GetByID(ctx context.Context, prID int64) (*PullRequest, error)
	ExistsByNumber(ctx context.Context, repository string, number int) (bool, error)
	ListByFellow(ctx context.Context, fellowID string) ([]*PullRequest, error)
	// ReplaceWithCommits updates the PR row and replaces its whole commit
	// set atomically.
	ReplaceWithCommits(ctx context.Context, pr *PullRequest) (*PullRequest, error)
	AddCommits(ctx context.Context, prID int64, commits []*Commit) ([]*Commit, error)
	// Delete removes the commits and then the PR in one transaction.
	Delete(ctx context.Context, prID int64) error
}
