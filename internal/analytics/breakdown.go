package analytics

import (
	"sort"

	"github-scout/internal/domain"
)

const unknownFellow = "unknown"

// BreakdownByRepo counts open and closed PRs per repository and, within a
// repository, per fellow full name. Two fellows sharing a full name share a
// bucket. PRs in any other state create their buckets but are not counted.
func BreakdownByRepo(prs []*domain.PullRequest) map[string]*domain.RepoStats {
	result := make(map[string]*domain.RepoStats)

	for _, pr := range prs {
		bucket, ok := result[pr.Repository]
		if !ok {
			bucket = &domain.RepoStats{
				Repo:    pr.Repository,
				Fellows: make(map[string]*domain.StateCount),
			}
			result[pr.Repository] = bucket
		}

		fellowKey := pr.AuthorFullName
		if fellowKey == "" {
			fellowKey = unknownFellow
		}
		fellow, ok := bucket.Fellows[fellowKey]
		if !ok {
			fellow = &domain.StateCount{}
			bucket.Fellows[fellowKey] = fellow
		}

		switch pr.State {
		case domain.StateOpen:
			bucket.Open++
			fellow.Open++
		case domain.StateClosed:
			bucket.Closed++
			fellow.Closed++
		}
	}

	return result
}

// SortedRepoStats lists the buckets ordered by repository name.
func SortedRepoStats(byRepo map[string]*domain.RepoStats) []*domain.RepoStats {
	stats := make([]*domain.RepoStats, 0, len(byRepo))
	for _, s := range byRepo {
		stats = append(stats, s)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Repo < stats[j].Repo
	})
	return stats
}
