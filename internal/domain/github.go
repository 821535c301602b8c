package domain

import (
	"context"
	"time"
)

// RemoteUser is the GitHub account that opened a pull request.
type RemoteUser struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Name      string `json:"name"`
}

// RemotePullRequest is pull request metadata as returned by GitHub.
type RemotePullRequest struct {
	Owner     string
	Repo      string
	Number    int
	Title     string
	HTMLURL   string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
	MergedAt  *time.Time
	Author    RemoteUser
	Commits   []*Commit
}

// Repository returns the "owner/name" coordinate.
func (pr *RemotePullRequest) Repository() string {
	return pr.Owner + "/" + pr.Repo
}

// SourceControl is the client of the source-control host.
type SourceControl interface {
	GetPullRequest(ctx context.Context, owner, repo string, number int) (*RemotePullRequest, error)
	ListCommits(ctx context.Context, owner, repo string, number int) ([]*Commit, error)
	SearchPullRequestsByAuthor(ctx context.Context, owner, repo, username string) ([]*RemotePullRequest, error)
}
