package analytics

import (
	"time"

	"github-scout/internal/domain"

	"github.com/montanaflynn/stats"
)

// DateSeries groups PRs by creation day and repository and emits one row
// for every calendar day from WindowStart(now, days) through now, including
// days without PRs. An empty input yields an empty series with no rows.
func DateSeries(prs []*domain.PullRequest, now time.Time, days int) *domain.PRSeries {
	if len(prs) == 0 {
		return &domain.PRSeries{Repos: []string{}, PRs: []domain.SeriesPoint{}}
	}

	loc := now.Location()
	byDate := make(map[string]map[string]int)
	repos := make([]string, 0)
	seen := make(map[string]struct{})

	for _, pr := range prs {
		date := pr.CreatedAt.In(loc).Format(DateLayout)
		counts, ok := byDate[date]
		if !ok {
			counts = make(map[string]int)
			byDate[date] = counts
		}
		counts[pr.Repository]++

		if _, ok := seen[pr.Repository]; !ok {
			seen[pr.Repository] = struct{}{}
			repos = append(repos, pr.Repository)
		}
	}

	series := &domain.PRSeries{
		Repos: repos,
		PRs:   make([]domain.SeriesPoint, 0, days+1),
	}
	for day := WindowStart(now, days); !day.After(now); day = day.AddDate(0, 0, 1) {
		date := day.Format(DateLayout)
		counts := make(map[string]int, len(byDate[date]))
		for repo, n := range byDate[date] {
			counts[repo] = n
		}
		series.PRs = append(series.PRs, domain.SeriesPoint{Date: date, Counts: counts})
	}

	series.Summary = summarize(series)
	return series
}

func summarize(series *domain.PRSeries) map[string]*domain.RepoTrend {
	summary := make(map[string]*domain.RepoTrend, len(series.Repos))

	for _, repo := range series.Repos {
		daily := make(stats.Float64Data, 0, len(series.PRs))
		for _, point := range series.PRs {
			daily = append(daily, float64(point.Counts[repo]))
		}

		trend := &domain.RepoTrend{}
		if len(daily) == 0 {
			summary[repo] = trend
			continue
		}
		total, _ := daily.Sum()
		mean, _ := daily.Mean()
		median, _ := daily.Median()
		peak, _ := daily.Max()

		trend.Total = int(total)
		trend.Mean, _ = stats.Round(mean, 2)
		trend.Median = median
		trend.Peak = int(peak)
		summary[repo] = trend
	}

	return summary
}
