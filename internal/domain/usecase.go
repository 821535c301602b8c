package domain

import "context"

// BatchUseCase defines business logic for batches.
type BatchUseCase interface {
	CreateBatch(ctx context.Context, id, name string) (*Batch, error)
	ListBatches(ctx context.Context) ([]*Batch, error)
	GetBatch(ctx context.Context, id string) (*Batch, error)
	RenameBatch(ctx context.Context, id, name string) (*Batch, error)
	DeleteBatch(ctx context.Context, id string) error
}

// PodUseCase defines business logic for pods.
type PodUseCase interface {
	CreatePod(ctx context.Context, localID, name, batchID string) (*Pod, error)
	ListPods(ctx context.Context, batchID string) ([]*Pod, error)
	GetPod(ctx context.Context, id string) (*Pod, error)
	RenamePod(ctx context.Context, id, name string) (*Pod, error)
	DeletePod(ctx context.Context, id string) error
}

// FellowUseCase defines business logic for fellows.
type FellowUseCase interface {
	CreateFellow(ctx context.Context, fullName, username, podID string) (*Fellow, error)
	ListFellows(ctx context.Context, podID string) ([]*Fellow, error)
	GetFellow(ctx context.Context, id string) (*Fellow, error)
	UpdateFellow(ctx context.Context, id, fullName, username string) (*Fellow, error)
	DeleteFellow(ctx context.Context, id string) error
}

// PRCoordinates identifies a remote pull request either by URL or by
// owner/repo/number.
type PRCoordinates struct {
	URL    string
	Owner  string
	Repo   string
	Number int
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Repository string
	Found      int
	Imported   []*PullRequest
	Skipped    int
}

// PRUseCase defines business logic for tracked pull requests.
type PRUseCase interface {
	CreatePR(ctx context.Context, pr *PullRequest) (*PullRequest, error)
	GetPR(ctx context.Context, id int64) (*PullRequest, error)
	ListFellowPRs(ctx context.Context, fellowID string) ([]*PullRequest, error)
	UpdatePR(ctx context.Context, pr *PullRequest) (*PullRequest, error)
	AddCommits(ctx context.Context, prID int64, commits []*Commit) ([]*Commit, error)
	DeletePR(ctx context.Context, id int64) error

	FetchRemotePR(ctx context.Context, coords PRCoordinates) (*RemotePullRequest, error)
	TrackPR(ctx context.Context, fellowID string, coords PRCoordinates) (*PullRequest, error)
	RefreshPR(ctx context.Context, id int64) (*PullRequest, error)
	// ImportFellowPRs may return a non-nil result with an error; the
	// result then holds the PRs imported before the failure.
	ImportFellowPRs(ctx context.Context, fellowID, repository string) (*ImportResult, error)
}

// AnalyticsUseCase defines the analytics views.
type AnalyticsUseCase interface {
	PRsByFellow(ctx context.Context) ([]*RepoStats, error)
	PRSeries(ctx context.Context, scope Scope, id string, days int) (*PRSeries, error)
	CommitStats(ctx context.Context, scope Scope, id string) ([]*CommitStat, error)
	Dashboard(ctx context.Context, scope Scope, id string, days int) (*Dashboard, error)
}
