package handler_test

import (
	"net/http"
	"testing"

	"github-scout/api"
	"github-scout/internal/domain"
	"github-scout/internal/domain/mocks"
	"github-scout/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestAnalyticsHandler_GetPRsByFellow(t *testing.T) {
	uc := mocks.NewAnalyticsUseCase(t)
	uc.On("PRsByFellow", mock.Anything).Return([]*domain.RepoStats{{
		Repo:   "a/b",
		Open:   2,
		Closed: 1,
		Fellows: map[string]*domain.StateCount{
			"Jo": {Open: 1, Closed: 1},
			"Al": {Open: 1},
		},
	}}, nil)

	h := handler.NewAnalyticsHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/analytics/prs-by-fellow", "")

	require.NoError(t, h.GetPRsByFellow(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"repos":[{"repo":"a/b","open":2,"closed":1,
		"fellows":{"Jo":{"open":1,"closed":1},"Al":{"open":1,"closed":0}}}]}`, rec.Body.String())
}

func TestAnalyticsHandler_GetPRSeries_EmptyShape(t *testing.T) {
	uc := mocks.NewAnalyticsUseCase(t)
	uc.On("PRSeries", mock.Anything, domain.ScopeBatch, "25.SUM", 0).
		Return(&domain.PRSeries{Repos: []string{}, PRs: []domain.SeriesPoint{}}, nil)

	h := handler.NewAnalyticsHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/analytics/prs?type=batch&id=25.SUM", "")

	require.NoError(t, h.GetPRSeries(c, api.GetPRSeriesParams{Type: ptr("batch"), Id: ptr("25.SUM")}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"repos":[],"prs":[]}`, rec.Body.String())
}

func TestAnalyticsHandler_GetPRSeries_FlattensRows(t *testing.T) {
	uc := mocks.NewAnalyticsUseCase(t)
	uc.On("PRSeries", mock.Anything, domain.ScopePod, "25.SUM.1", 1).Return(&domain.PRSeries{
		Repos: []string{"x"},
		PRs: []domain.SeriesPoint{
			{Date: "10/18/2026", Counts: map[string]int{"x": 1}},
			{Date: "10/19/2026", Counts: map[string]int{}},
		},
		Summary: map[string]*domain.RepoTrend{"x": {Total: 1, Mean: 0.5, Median: 0.5, Peak: 1}},
	}, nil)

	h := handler.NewAnalyticsHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/analytics/prs", "")

	require.NoError(t, h.GetPRSeries(c, api.GetPRSeriesParams{Type: ptr("pod"), Id: ptr("25.SUM.1"), Days: ptr(1)}))

	assert.JSONEq(t, `{
		"repos":["x"],
		"prs":[{"date":"10/18/2026","x":1},{"date":"10/19/2026"}],
		"summary":{"x":{"total":1,"mean":0.5,"median":0.5,"peak":1}}
	}`, rec.Body.String())
}

func TestAnalyticsHandler_GetPRSeries_InvalidScope(t *testing.T) {
	uc := mocks.NewAnalyticsUseCase(t)
	uc.On("PRSeries", mock.Anything, domain.Scope("team"), "x", 0).Return(nil, domain.ErrInvalidScope)

	h := handler.NewAnalyticsHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/analytics/prs?type=team&id=x", "")

	require.NoError(t, h.GetPRSeries(c, api.GetPRSeriesParams{Type: ptr("team"), Id: ptr("x")}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid type parameter")
}

func TestAnalyticsHandler_GetCommitStats(t *testing.T) {
	uc := mocks.NewAnalyticsUseCase(t)
	uc.On("CommitStats", mock.Anything, domain.ScopeFellow, "ada-x7k2p").
		Return([]*domain.CommitStat{{Name: "ada", Commits: 4}}, nil)

	h := handler.NewAnalyticsHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/analytics/commits", "")

	require.NoError(t, h.GetCommitStats(c, api.GetCommitStatsParams{Type: ptr("fellow"), Id: ptr("ada-x7k2p")}))

	assert.JSONEq(t, `{"commits":[{"name":"ada","commits":4}]}`, rec.Body.String())
}

func TestAnalyticsHandler_GetDashboard(t *testing.T) {
	uc := mocks.NewAnalyticsUseCase(t)
	uc.On("Dashboard", mock.Anything, domain.ScopeBatch, "25.SUM", 30).Return(&domain.Dashboard{
		ByRepo:  []*domain.RepoStats{},
		Series:  &domain.PRSeries{Repos: []string{}, PRs: []domain.SeriesPoint{}},
		Commits: []*domain.CommitStat{{Name: "25.SUM", Commits: 0}},
	}, nil)

	h := handler.NewAnalyticsHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/analytics/dashboard", "")

	require.NoError(t, h.GetDashboard(c, api.GetDashboardParams{Type: ptr("batch"), Id: ptr("25.SUM"), Days: ptr(30)}))

	assert.JSONEq(t, `{
		"prs_by_fellow":[],
		"prs":{"repos":[],"prs":[]},
		"commits":[{"name":"25.SUM","commits":0}]
	}`, rec.Body.String())
}
