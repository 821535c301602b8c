package domain

import (
	"context"
	"encoding/json"
	"time"
)

// ScopeActivity holds the commits of one top-level entity of a scope,
// already filtered to the requested window.
type ScopeActivity struct {
	Name    string
	Commits []*Commit
}

// StatsRepository defines the read queries that feed analytics.
type StatsRepository interface {
	// ListPRsWithAuthors returns every tracked PR with AuthorFullName set.
	ListPRsWithAuthors(ctx context.Context) ([]*PullRequest, error)
	// ListScopePRsCreatedSince returns the PRs under the scope entity created
	// at or after since. found is false when the entity does not exist.
	ListScopePRsCreatedSince(ctx context.Context, scope Scope, id string, since time.Time) (prs []*PullRequest, found bool, err error)
	// ListScopeCommitsSince returns one activity per matching entity.
	ListScopeCommitsSince(ctx context.Context, scope Scope, id string, since time.Time) ([]*ScopeActivity, error)
}

// StateCount counts PRs by state.
type StateCount struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// RepoStats is the open/closed breakdown of one repository.
type RepoStats struct {
	Repo    string                 `json:"repo"`
	Open    int                    `json:"open"`
	Closed  int                    `json:"closed"`
	Fellows map[string]*StateCount `json:"fellows"`
}

// SeriesPoint is one calendar day of the PR series. Counts holds only
// repositories with at least one PR that day.
type SeriesPoint struct {
	Date   string
	Counts map[string]int
}

// MarshalJSON flattens the point into {"date": ..., "<repo>": n}.
func (p SeriesPoint) MarshalJSON() ([]byte, error) {
	row := make(map[string]any, len(p.Counts)+1)
	for repo, n := range p.Counts {
		row[repo] = n
	}
	row["date"] = p.Date
	return json.Marshal(row)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (p *SeriesPoint) UnmarshalJSON(data []byte) error {
	var row map[string]json.RawMessage
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	p.Counts = make(map[string]int, len(row))
	for key, raw := range row {
		if key == "date" {
			if err := json.Unmarshal(raw, &p.Date); err != nil {
				return err
			}
			continue
		}
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		p.Counts[key] = n
	}
	return nil
}

// RepoTrend summarizes one repository over the dense daily series.
type RepoTrend struct {
	Total  int     `json:"total"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Peak   int     `json:"peak"`
}

// PRSeries is the daily PR-creation series of a trailing window.
type PRSeries struct {
	Repos   []string              `json:"repos"`
	PRs     []SeriesPoint         `json:"prs"`
	Summary map[string]*RepoTrend `json:"summary,omitempty"`
}

// CommitStat is the commit count of one entity in the trailing window.
type CommitStat struct {
	Name    string `json:"name"`
	Commits int    `json:"commits"`
}

// Dashboard bundles the three analytics views of one scope.
type Dashboard struct {
	ByRepo  []*RepoStats  `json:"prs_by_fellow"`
	Series  *PRSeries     `json:"prs"`
	Commits []*CommitStat `json:"commits"`
}
