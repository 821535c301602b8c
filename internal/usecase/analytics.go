package usecase

import (
	"context"
	"strings"
	"time"

	"github-scout/internal/analytics"
	"github-scout/internal/domain"

	"golang.org/x/sync/errgroup"
)

// AnalyticsUseCase serves the three analytics views.
type AnalyticsUseCase struct {
	statsRepo domain.StatsRepository
	loc       *time.Location
	now       func() time.Time
}

// NewAnalyticsUseCase buckets days in loc; now is the clock the trailing
// windows are measured from.
func NewAnalyticsUseCase(statsRepo domain.StatsRepository, loc *time.Location, now func() time.Time) domain.AnalyticsUseCase {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &AnalyticsUseCase{
		statsRepo: statsRepo,
		loc:       loc,
		now:       now,
	}
}

// PRsByFellow breaks every tracked PR down by repository and fellow.
func (uc *AnalyticsUseCase) PRsByFellow(ctx context.Context) ([]*domain.RepoStats, error) {
	prs, err := uc.statsRepo.ListPRsWithAuthors(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.SortedRepoStats(analytics.BreakdownByRepo(prs)), nil
}

// PRSeries returns the dense daily PR series of the last days days. An
// unknown entity yields the empty series.
func (uc *AnalyticsUseCase) PRSeries(ctx context.Context, scope domain.Scope, id string, days int) (*domain.PRSeries, error) {
	scope, id, days, err := validateScopeQuery(scope, id, days)
	if err != nil {
		return nil, err
	}

	now := uc.now().In(uc.loc)
	since := analytics.WindowStart(now, days)

	prs, found, err := uc.statsRepo.ListScopePRsCreatedSince(ctx, scope, id, since)
	if err != nil {
		return nil, err
	}
	if !found {
		prs = nil
	}

	return analytics.DateSeries(prs, now, days), nil
}

// CommitStats counts commits authored in the last seven days.
func (uc *AnalyticsUseCase) CommitStats(ctx context.Context, scope domain.Scope, id string) ([]*domain.CommitStat, error) {
	scope, id, _, err := validateScopeQuery(scope, id, analytics.CommitWindowDays)
	if err != nil {
		return nil, err
	}

	since := analytics.WindowStart(uc.now().In(uc.loc), analytics.CommitWindowDays)

	activities, err := uc.statsRepo.ListScopeCommitsSince(ctx, scope, id, since)
	if err != nil {
		return nil, err
	}
	return analytics.CountCommits(activities), nil
}

// Dashboard runs the three views concurrently. They are not read from a
// common snapshot.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context, scope domain.Scope, id string, days int) (*domain.Dashboard, error) {
	scope, id, days, err := validateScopeQuery(scope, id, days)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		byRepo, err := uc.PRsByFellow(gctx)
		dashboard.ByRepo = byRepo
		return err
	})
	g.Go(func() error {
		series, err := uc.PRSeries(gctx, scope, id, days)
		dashboard.Series = series
		return err
	})
	g.Go(func() error {
		commits, err := uc.CommitStats(gctx, scope, id)
		dashboard.Commits = commits
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// validateScopeQuery rejects bad input before any I/O. It returns the
// normalized scope and id and resolves the default window.
func validateScopeQuery(scope domain.Scope, id string, days int) (domain.Scope, string, int, error) {
	if scope == "" {
		return "", "", 0, domain.ErrMissingScopeParameter
	}
	parsed, err := domain.ParseScope(string(scope))
	if err != nil {
		return "", "", 0, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", "", 0, domain.ErrMissingScopeParameter
	}
	if days == 0 {
		days = analytics.DefaultWindowDays
	}
	if days < 0 || days > analytics.MaxWindowDays {
		return "", "", 0, domain.ErrInvalidWindow
	}
	return parsed, id, days, nil
}
