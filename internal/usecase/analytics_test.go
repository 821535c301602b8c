package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github-scout/internal/domain"
	"github-scout/internal/domain/mocks"
	"github-scout/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func at(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func TestAnalyticsUseCase_PRsByFellow(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	statsRepo.On("ListPRsWithAuthors", ctx).Return([]*domain.PullRequest{
		{Repository: "z/z", State: "open", AuthorFullName: "Jo"},
		{Repository: "a/b", State: "open", AuthorFullName: "Jo"},
		{Repository: "a/b", State: "closed", AuthorFullName: "Jo"},
		{Repository: "a/b", State: "open", AuthorFullName: "Al"},
	}, nil)

	result, err := uc.PRsByFellow(ctx)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "a/b", result[0].Repo)
	assert.Equal(t, 2, result[0].Open)
	assert.Equal(t, 1, result[0].Closed)
	assert.Equal(t, &domain.StateCount{Open: 1, Closed: 1}, result[0].Fellows["Jo"])
	assert.Equal(t, "z/z", result[1].Repo)
}

func TestAnalyticsUseCase_PRSeries_DefaultWindow(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	since := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	statsRepo.On("ListScopePRsCreatedSince", ctx, domain.ScopeBatch, "25.SUM", at(since)).
		Return([]*domain.PullRequest{{Repository: "o/r", CreatedAt: fixedNow.Add(-time.Hour)}}, true, nil)

	series, err := uc.PRSeries(ctx, domain.ScopeBatch, "25.SUM", 0)

	require.NoError(t, err)
	require.Len(t, series.PRs, 8)
	assert.Equal(t, "10/12/2026", series.PRs[0].Date)
	assert.Equal(t, "10/19/2026", series.PRs[7].Date)
	assert.Equal(t, 1, series.PRs[7].Counts["o/r"])
	statsRepo.AssertExpectations(t)
}

func TestAnalyticsUseCase_PRSeries_UnknownEntityIsEmpty(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	statsRepo.On("ListScopePRsCreatedSince", ctx, domain.ScopePod, "nope", mock.Anything).Return(nil, false, nil)

	series, err := uc.PRSeries(ctx, domain.ScopePod, "nope", 30)

	require.NoError(t, err)
	body, err := json.Marshal(series)
	require.NoError(t, err)
	assert.JSONEq(t, `{"repos":[],"prs":[]}`, string(body))
}

func TestAnalyticsUseCase_PRSeries_UsesConfiguredZone(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	// 20:00 UTC is already the 20th in UTC+9.
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	uc := usecase.NewAnalyticsUseCase(statsRepo, tokyo, func() time.Time { return now })

	since := time.Date(2026, 10, 13, 0, 0, 0, 0, tokyo)
	statsRepo.On("ListScopePRsCreatedSince", ctx, domain.ScopeFellow, "jo-aaaaa", at(since)).Return(nil, true, nil)

	_, err := uc.PRSeries(ctx, domain.ScopeFellow, "jo-aaaaa", 7)

	require.NoError(t, err)
	statsRepo.AssertExpectations(t)
}

func TestAnalyticsUseCase_ValidationBeforeIO(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	testCases := []struct {
		name     string
		scope    domain.Scope
		id       string
		days     int
		expected error
	}{
		{"Unknown scope", domain.Scope("team"), "x", 7, domain.ErrInvalidScope},
		{"Missing scope", "", "x", 7, domain.ErrMissingScopeParameter},
		{"Missing id", domain.ScopeBatch, "", 7, domain.ErrMissingScopeParameter},
		{"Negative window", domain.ScopeBatch, "x", -1, domain.ErrInvalidWindow},
		{"Window too long", domain.ScopeBatch, "x", 366, domain.ErrInvalidWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.PRSeries(ctx, tc.scope, tc.id, tc.days)
			assert.ErrorIs(t, err, tc.expected)

			_, err = uc.Dashboard(ctx, tc.scope, tc.id, tc.days)
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	_, err := uc.CommitStats(ctx, domain.Scope("TEAM"), "x")
	assert.ErrorIs(t, err, domain.ErrInvalidScope)

	statsRepo.AssertNotCalled(t, "ListScopePRsCreatedSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	statsRepo.AssertNotCalled(t, "ListScopeCommitsSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	statsRepo.AssertNotCalled(t, "ListPRsWithAuthors", mock.Anything)
}

func TestAnalyticsUseCase_NormalizesScopeBeforeQuerying(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	statsRepo.On("ListPRsWithAuthors", mock.Anything).Return(nil, nil)
	statsRepo.On("ListScopePRsCreatedSince", mock.Anything, domain.ScopeBatch, "25.SUM", mock.Anything).Return(nil, true, nil)
	statsRepo.On("ListScopeCommitsSince", mock.Anything, domain.ScopeBatch, "25.SUM", mock.Anything).
		Return([]*domain.ScopeActivity{{Name: "Summer"}}, nil)

	_, err := uc.PRSeries(ctx, domain.Scope("batch "), " 25.SUM", 7)
	require.NoError(t, err)

	_, err = uc.CommitStats(ctx, domain.Scope(" batch"), "25.SUM ")
	require.NoError(t, err)

	dashboard, err := uc.Dashboard(ctx, domain.Scope("batch\t"), "25.SUM", 0)
	require.NoError(t, err)
	assert.Equal(t, []*domain.CommitStat{{Name: "Summer", Commits: 0}}, dashboard.Commits)

	statsRepo.AssertNumberOfCalls(t, "ListScopePRsCreatedSince", 2)
	statsRepo.AssertNumberOfCalls(t, "ListScopeCommitsSince", 2)
}

func TestAnalyticsUseCase_CommitStats(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	since := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	statsRepo.On("ListScopeCommitsSince", ctx, domain.ScopeFellow, "jo-aaaaa", at(since)).
		Return([]*domain.ScopeActivity{{Name: "jodoe", Commits: []*domain.Commit{{SHA: "a"}, {SHA: "b"}, {SHA: "c"}}}}, nil)

	stats, err := uc.CommitStats(ctx, domain.ScopeFellow, "jo-aaaaa")

	require.NoError(t, err)
	assert.Equal(t, []*domain.CommitStat{{Name: "jodoe", Commits: 3}}, stats)
}

func TestAnalyticsUseCase_Dashboard(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	statsRepo.On("ListPRsWithAuthors", mock.Anything).Return([]*domain.PullRequest{{Repository: "o/r", State: "open"}}, nil)
	statsRepo.On("ListScopePRsCreatedSince", mock.Anything, domain.ScopeBatch, "b", mock.Anything).Return(nil, true, nil)
	statsRepo.On("ListScopeCommitsSince", mock.Anything, domain.ScopeBatch, "b", mock.Anything).
		Return([]*domain.ScopeActivity{{Name: "Batch B"}}, nil)

	dashboard, err := uc.Dashboard(ctx, domain.ScopeBatch, "b", 14)

	require.NoError(t, err)
	assert.Len(t, dashboard.ByRepo, 1)
	assert.Empty(t, dashboard.Series.PRs)
	assert.Equal(t, []*domain.CommitStat{{Name: "Batch B", Commits: 0}}, dashboard.Commits)
}

func TestAnalyticsUseCase_Dashboard_PropagatesFailure(t *testing.T) {
	ctx := context.Background()
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewAnalyticsUseCase(statsRepo, time.UTC, clock)

	boom := errors.New("db down")
	statsRepo.On("ListPRsWithAuthors", mock.Anything).Return(nil, boom)
	statsRepo.On("ListScopePRsCreatedSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, true, nil)
	statsRepo.On("ListScopeCommitsSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	dashboard, err := uc.Dashboard(ctx, domain.ScopePod, "b.1", 7)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, dashboard)
}
