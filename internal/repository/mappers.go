package repository

import (
	"database/sql"
	"time"

	"github-scout/internal/database"
	"github-scout/internal/domain"
)

func toBatch(b database.Batch) *domain.Batch {
	return &domain.Batch{
		ID:        b.ID,
		Name:      b.Name,
		CreatedAt: b.CreatedAt,
		Pods:      []*domain.Pod{},
	}
}

func toPod(p database.Pod) *domain.Pod {
	return &domain.Pod{
		ID:        p.ID,
		Name:      p.Name,
		BatchID:   p.BatchID,
		CreatedAt: p.CreatedAt,
		Fellows:   []*domain.Fellow{},
	}
}

func toFellow(f database.Fellow) *domain.Fellow {
	return &domain.Fellow{
		ID:        f.ID,
		FullName:  f.FullName,
		Username:  f.Username,
		PodID:     f.PodID,
		CreatedAt: f.CreatedAt,
		PRs:       []*domain.PullRequest{},
	}
}

func toPullRequest(pr database.PullRequest) *domain.PullRequest {
	// NullTime → *time.Time
	var mergedAt *time.Time
	if pr.MergedAt.Valid {
		t := pr.MergedAt.Time
		mergedAt = &t
	}

	return &domain.PullRequest{
		ID:          pr.ID,
		Number:      int(pr.PrNumber),
		Repository:  pr.Repository,
		Username:    pr.Username,
		FellowID:    pr.FellowID,
		Title:       pr.Title,
		HTMLURL:     pr.HtmlUrl,
		State:       pr.State,
		CreatedAt:   pr.CreatedAt,
		UpdatedAt:   pr.UpdatedAt,
		MergedAt:    mergedAt,
		LastChecked: pr.LastChecked,
		Commits:     []*domain.Commit{},
	}
}

func toCommit(c database.Commit) *domain.Commit {
	return &domain.Commit{
		ID:         c.ID,
		PRID:       c.PrID,
		SHA:        c.Sha,
		Message:    c.Message,
		AuthorName: c.AuthorName,
		AuthorDate: c.AuthorDate,
		HTMLURL:    c.HtmlUrl,
	}
}

func toPullRequests(rows []database.PullRequest) []*domain.PullRequest {
	prs := make([]*domain.PullRequest, 0, len(rows))
	for _, row := range rows {
		prs = append(prs, toPullRequest(row))
	}
	return prs
}

func toCommits(rows []database.Commit) []*domain.Commit {
	commits := make([]*domain.Commit, 0, len(rows))
	for _, row := range rows {
		commits = append(commits, toCommit(row))
	}
	return commits
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// attachCommits hangs every commit under its PR. Commits of PRs not in
// prs are dropped.
func attachCommits(prs []*domain.PullRequest, commits []database.Commit) {
	byID := make(map[int64]*domain.PullRequest, len(prs))
	for _, pr := range prs {
		byID[pr.ID] = pr
	}
	for _, c := range commits {
		if pr, ok := byID[c.PrID]; ok {
			pr.Commits = append(pr.Commits, toCommit(c))
		}
	}
}

// assembleTree nests flat rows into batch → pod → fellow → PR → commit.
func assembleTree(
	batchRows []database.Batch,
	podRows []database.Pod,
	fellowRows []database.Fellow,
	prRows []database.PullRequest,
	commitRows []database.Commit,
) []*domain.Batch {
	prs := toPullRequests(prRows)
	attachCommits(prs, commitRows)

	fellows := make(map[string]*domain.Fellow, len(fellowRows))
	orderedFellows := make([]*domain.Fellow, 0, len(fellowRows))
	for _, row := range fellowRows {
		f := toFellow(row)
		fellows[f.ID] = f
		orderedFellows = append(orderedFellows, f)
	}
	for _, pr := range prs {
		if f, ok := fellows[pr.FellowID]; ok {
			f.PRs = append(f.PRs, pr)
		}
	}

	pods := make(map[string]*domain.Pod, len(podRows))
	orderedPods := make([]*domain.Pod, 0, len(podRows))
	for _, row := range podRows {
		p := toPod(row)
		pods[p.ID] = p
		orderedPods = append(orderedPods, p)
	}
	for _, f := range orderedFellows {
		if p, ok := pods[f.PodID]; ok {
			p.Fellows = append(p.Fellows, f)
		}
	}

	batches := make([]*domain.Batch, 0, len(batchRows))
	byID := make(map[string]*domain.Batch, len(batchRows))
	for _, row := range batchRows {
		b := toBatch(row)
		byID[b.ID] = b
		batches = append(batches, b)
	}
	for _, p := range orderedPods {
		if b, ok := byID[p.BatchID]; ok {
			b.Pods = append(b.Pods, p)
		}
	}

	return batches
}
