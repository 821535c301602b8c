package analytics

import "github-scout/internal/domain"

// CountCommits reports one entry per scope entity with the number of
// commits already narrowed to the trailing window by the store.
func CountCommits(activities []*domain.ScopeActivity) []*domain.CommitStat {
	result := make([]*domain.CommitStat, 0, len(activities))
	for _, a := range activities {
		result = append(result, &domain.CommitStat{
			Name:    a.Name,
			Commits: len(a.Commits),
		})
	}
	return result
}
