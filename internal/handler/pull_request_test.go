package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github-scout/internal/domain"
	"github-scout/internal/domain/mocks"
	"github-scout/internal/handler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPRHandler_CreatePullRequest_MapsPayload(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	authored := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	uc.On("CreatePR", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool {
		return pr.Repository == "o/r" &&
			pr.Number == 5 &&
			pr.FellowID == "ada-x7k2p" &&
			pr.State == domain.StateOpen &&
			pr.CreatedAt.Equal(created) &&
			len(pr.Commits) == 1 &&
			pr.Commits[0].SHA == "abc" &&
			pr.Commits[0].AuthorDate.Equal(authored)
	})).Return(func(_ context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
		pr.ID = 42
		return pr, nil
	})

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/prs", `{
		"repository":"o/r","pr_number":5,"user_id":"ada-x7k2p","state":"open",
		"created_at":"2026-10-01T09:00:00Z",
		"commits":[{"sha":"abc","author_date":"2026-10-01T08:00:00Z","message":"init"}]
	}`)

	require.NoError(t, h.CreatePullRequest(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	pr := decode(t, rec)["pr"].(map[string]interface{})
	assert.EqualValues(t, 42, pr["id"])
	assert.Equal(t, "ada-x7k2p", pr["user_id"])
	assert.Nil(t, pr["merged_at"])
}

func TestPRHandler_CreatePullRequest_DuplicateNumber(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("CreatePR", mock.Anything, mock.Anything).Return(nil, domain.ErrPRAlreadyTracked)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/prs", `{"repository":"o/r","pr_number":5,"state":"open"}`)

	require.NoError(t, h.CreatePullRequest(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "PR_EXISTS", errorCode(t, rec))
}

func TestPRHandler_UpdatePullRequest_UsesPathID(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("UpdatePR", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool {
		return pr.ID == 9 && pr.Commits != nil && len(pr.Commits) == 0
	})).Return(&domain.PullRequest{ID: 9, Repository: "o/r", State: domain.StateClosed, Commits: []*domain.Commit{}}, nil)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPut, "/prs/9", `{"repository":"o/r","pr_number":1,"state":"closed","commits":[]}`)

	require.NoError(t, h.UpdatePullRequest(c, 9))

	assert.Equal(t, http.StatusOK, rec.Code)
	pr := decode(t, rec)["pr"].(map[string]interface{})
	assert.Equal(t, "closed", pr["status"])
	assert.Equal(t, []interface{}{}, pr["commits"])
}

func TestPRHandler_UpdatePullRequest_OmittedFieldsStayEmpty(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("UpdatePR", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool {
		return pr.ID == 9 &&
			pr.Commits == nil &&
			pr.CreatedAt.IsZero() &&
			pr.Title == "" &&
			pr.MergedAt == nil
	})).Return(&domain.PullRequest{ID: 9, Repository: "o/r", State: domain.StateOpen}, nil)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPut, "/prs/9", `{"repository":"o/r","pr_number":1,"state":"open"}`)

	require.NoError(t, h.UpdatePullRequest(c, 9))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPRHandler_MergedStatus(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	merged := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	uc.On("GetPR", mock.Anything, int64(3)).
		Return(&domain.PullRequest{ID: 3, State: domain.StateClosed, MergedAt: &merged}, nil)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodGet, "/prs/3", "")

	require.NoError(t, h.GetPullRequest(c, 3))

	pr := decode(t, rec)["pr"].(map[string]interface{})
	assert.Equal(t, "closed", pr["state"])
	assert.Equal(t, "merged", pr["status"])
	assert.Equal(t, "2026-09-09T00:00:00Z", pr["merged_at"])
}

func TestPRHandler_TrackPullRequest(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("TrackPR", mock.Anything, "ada-x7k2p", domain.PRCoordinates{URL: "https://github.com/o/r/pull/5"}).
		Return(&domain.PullRequest{ID: 1, Number: 5, Repository: "o/r", State: domain.StateOpen}, nil)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/prs/track", `{"fellow_id":"ada-x7k2p","pr_url":"https://github.com/o/r/pull/5"}`)

	require.NoError(t, h.TrackPullRequest(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestPRHandler_TrackPullRequest_UpstreamFailure(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("TrackPR", mock.Anything, "ada-x7k2p", mock.Anything).Return(nil, domain.ErrUpstreamFetch)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/prs/track", `{"fellow_id":"ada-x7k2p","owner":"o","repo":"r","pull_number":5}`)

	require.NoError(t, h.TrackPullRequest(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "UPSTREAM_ERROR", errorCode(t, rec))
	assert.Contains(t, rec.Body.String(), "Failed to fetch GitHub data")
}

func TestPRHandler_AddCommits(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("AddCommits", mock.Anything, int64(4), mock.MatchedBy(func(commits []*domain.Commit) bool {
		return len(commits) == 2 && commits[1].SHA == "b"
	})).Return([]*domain.Commit{{ID: 1, PRID: 4, SHA: "a"}, {ID: 2, PRID: 4, SHA: "b"}}, nil)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/prs/4/commits", `{"commits":[
		{"sha":"a","author_date":"2026-10-01T00:00:00Z"},
		{"sha":"b","author_date":"2026-10-02T00:00:00Z"}]}`)

	require.NoError(t, h.AddPullRequestCommits(c, 4))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, decode(t, rec)["commits"], 2)
}

func TestPRHandler_ImportPullRequests(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("ImportFellowPRs", mock.Anything, "ada-x7k2p", "https://github.com/o/r").
		Return(&domain.ImportResult{
			Repository: "o/r",
			Found:      3,
			Skipped:    1,
			Imported:   []*domain.PullRequest{{ID: 1, Number: 1}, {ID: 2, Number: 2}},
		}, nil)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodPost, "/prs/import", `{"fellow_id":"ada-x7k2p","repository":"https://github.com/o/r"}`)

	require.NoError(t, h.ImportPullRequests(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decode(t, rec)["result"].(map[string]interface{})
	assert.EqualValues(t, 3, result["found"])
	assert.EqualValues(t, 1, result["skipped"])
	assert.Len(t, result["imported"], 2)
}

func TestPRHandler_DeletePullRequest(t *testing.T) {
	uc := mocks.NewPRUseCase(t)
	uc.On("DeletePR", mock.Anything, int64(8)).Return(nil)

	h := handler.NewPRHandler(uc, quietLogger())
	c, rec := newContext(http.MethodDelete, "/prs/8", "")

	require.NoError(t, h.DeletePullRequest(c, 8))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
