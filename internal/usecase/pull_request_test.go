package usecase_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github-scout/internal/domain"
	"github-scout/internal/domain/mocks"
	"github-scout/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type prFixture struct {
	prRepo     *mocks.PRRepository
	fellowRepo *mocks.FellowRepository
	source     *mocks.SourceControl
	uc         domain.PRUseCase
}

func newPRFixture(concurrency int) *prFixture {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &prFixture{
		prRepo:     &mocks.PRRepository{},
		fellowRepo: &mocks.FellowRepository{},
		source:     &mocks.SourceControl{},
	}
	f.uc = usecase.NewPRUseCase(f.prRepo, f.fellowRepo, f.source, logger, concurrency)
	return f
}

var jo = &domain.Fellow{ID: "jo-doe-abcde", FullName: "Jo Doe", Username: "jodoe", PodID: "b.1"}

func remotePR(number int) *domain.RemotePullRequest {
	created := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	return &domain.RemotePullRequest{
		Owner:     "octo",
		Repo:      "repo",
		Number:    number,
		Title:     "Remote title",
		HTMLURL:   "https://github.com/octo/repo/pull/1",
		State:     "open",
		CreatedAt: created,
		UpdatedAt: created,
		Author:    domain.RemoteUser{Login: "jodoe"},
		Commits: []*domain.Commit{
			{SHA: "aaa", AuthorDate: created},
			{SHA: "bbb", AuthorDate: created},
		},
	}
}

func TestPRUseCase_CreatePR_ValidationErrors(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)
	now := time.Now()

	testCases := []struct {
		name     string
		pr       *domain.PullRequest
		expected error
	}{
		{"Missing fellow", &domain.PullRequest{Repository: "o/r", Number: 1, State: "open"}, domain.ErrInvalidFellowID},
		{"Bad repository", &domain.PullRequest{FellowID: "f", Repository: "nope", Number: 1, State: "open"}, domain.ErrInvalidRepository},
		{"Zero number", &domain.PullRequest{FellowID: "f", Repository: "o/r", State: "open"}, domain.ErrInvalidPRNumber},
		{"Bad state", &domain.PullRequest{FellowID: "f", Repository: "o/r", Number: 1, State: "merged"}, domain.ErrInvalidPRState},
		{"Commit without sha", &domain.PullRequest{
			FellowID: "f", Repository: "o/r", Number: 1, State: "open",
			Commits: []*domain.Commit{{AuthorDate: now}},
		}, domain.ErrInvalidCommit},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pr, err := f.uc.CreatePR(ctx, tc.pr)
			assert.ErrorIs(t, err, tc.expected)
			assert.Nil(t, pr)
		})
	}

	f.fellowRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.prRepo.AssertNotCalled(t, "CreateWithCommits", mock.Anything, mock.Anything)
}

func TestPRUseCase_CreatePR_FillsDefaults(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	f.fellowRepo.On("GetByID", ctx, jo.ID).Return(jo, nil)
	f.prRepo.On("CreateWithCommits", ctx, mock.MatchedBy(func(pr *domain.PullRequest) bool {
		return pr.Username == "jodoe" &&
			!pr.CreatedAt.IsZero() &&
			pr.UpdatedAt.Equal(pr.CreatedAt) &&
			!pr.LastChecked.IsZero()
	})).Return(&domain.PullRequest{ID: 7}, nil)

	pr, err := f.uc.CreatePR(ctx, &domain.PullRequest{
		FellowID:   jo.ID,
		Repository: "octo/repo",
		Number:     3,
		State:      "closed",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), pr.ID)
	f.prRepo.AssertExpectations(t)
}

func storedPR() *domain.PullRequest {
	created := time.Date(2026, 8, 3, 9, 30, 0, 0, time.UTC)
	merged := created.Add(48 * time.Hour)
	return &domain.PullRequest{
		ID:          5,
		Number:      3,
		Repository:  "octo/repo",
		Username:    "jodoe",
		FellowID:    jo.ID,
		Title:       "Stored title",
		HTMLURL:     "https://github.com/octo/repo/pull/3",
		State:       "closed",
		CreatedAt:   created,
		UpdatedAt:   merged,
		MergedAt:    &merged,
		LastChecked: merged,
		Commits:     []*domain.Commit{{SHA: "keep", AuthorDate: created}},
	}
}

func TestPRUseCase_UpdatePR_KeepsOmittedFields(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)
	stored := storedPR()

	var written *domain.PullRequest
	f.prRepo.On("GetByID", ctx, int64(5)).Return(stored, nil)
	f.prRepo.On("ReplaceWithCommits", ctx, mock.Anything).
		Return(func(_ context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
			written = pr
			return pr, nil
		})

	_, err := f.uc.UpdatePR(ctx, &domain.PullRequest{
		ID:         5,
		Repository: "octo/repo",
		Number:     3,
		State:      "open",
	})

	require.NoError(t, err)
	require.NotNil(t, written)
	assert.Equal(t, "open", written.State)
	assert.True(t, written.CreatedAt.Equal(stored.CreatedAt), "created_at moved to %s", written.CreatedAt)
	assert.True(t, written.UpdatedAt.Equal(stored.UpdatedAt))
	assert.True(t, written.LastChecked.Equal(stored.LastChecked))
	assert.Equal(t, stored.MergedAt, written.MergedAt)
	assert.Equal(t, "Stored title", written.Title)
	assert.Equal(t, "jodoe", written.Username)
	assert.Equal(t, stored.HTMLURL, written.HTMLURL)
	assert.Equal(t, jo.ID, written.FellowID)
	assert.Equal(t, stored.Commits, written.Commits)
}

func TestPRUseCase_UpdatePR_SuppliedFieldsWin(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	f.prRepo.On("GetByID", ctx, int64(5)).Return(storedPR(), nil)
	f.prRepo.On("ReplaceWithCommits", ctx, mock.MatchedBy(func(pr *domain.PullRequest) bool {
		return pr.Title == "New title" &&
			pr.Username == "someone" &&
			pr.CreatedAt.Equal(created) &&
			len(pr.Commits) == 0
	})).Return(&domain.PullRequest{ID: 5}, nil)

	_, err := f.uc.UpdatePR(ctx, &domain.PullRequest{
		ID:         5,
		Repository: "octo/repo",
		Number:     3,
		State:      "closed",
		Title:      "New title",
		Username:   "someone",
		CreatedAt:  created,
		Commits:    []*domain.Commit{},
	})

	require.NoError(t, err)
	f.prRepo.AssertExpectations(t)
}

func TestPRUseCase_UpdatePR_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		f := newPRFixture(1)
		_, err := f.uc.UpdatePR(ctx, &domain.PullRequest{Repository: "octo/repo", Number: 3, State: "open"})
		assert.ErrorIs(t, err, domain.ErrInvalidPRID)
		f.prRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown PR", func(t *testing.T) {
		f := newPRFixture(1)
		f.prRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrPRNotFound)
		_, err := f.uc.UpdatePR(ctx, &domain.PullRequest{ID: 404, Repository: "octo/repo", Number: 3, State: "open"})
		assert.ErrorIs(t, err, domain.ErrPRNotFound)
		f.prRepo.AssertNotCalled(t, "ReplaceWithCommits", mock.Anything, mock.Anything)
	})
}

func TestPRUseCase_TrackPR_Success(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	f.fellowRepo.On("GetByID", ctx, jo.ID).Return(jo, nil)
	f.prRepo.On("ExistsByNumber", ctx, "octo/repo", 12).Return(false, nil)
	f.source.On("GetPullRequest", ctx, "octo", "repo", 12).Return(remotePR(12), nil)
	f.prRepo.On("CreateWithCommits", ctx, mock.MatchedBy(func(pr *domain.PullRequest) bool {
		return pr.FellowID == jo.ID &&
			pr.Repository == "octo/repo" &&
			pr.Number == 12 &&
			pr.Username == "jodoe" &&
			len(pr.Commits) == 2 &&
			!pr.LastChecked.IsZero()
	})).Return(&domain.PullRequest{ID: 1, Number: 12}, nil)

	pr, err := f.uc.TrackPR(ctx, jo.ID, domain.PRCoordinates{URL: "https://github.com/octo/repo/pull/12"})

	assert.NoError(t, err)
	assert.Equal(t, 12, pr.Number)
	f.source.AssertExpectations(t)
	f.prRepo.AssertExpectations(t)
}

func TestPRUseCase_TrackPR_AlreadyTracked(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	f.fellowRepo.On("GetByID", ctx, jo.ID).Return(jo, nil)
	f.prRepo.On("ExistsByNumber", ctx, "octo/repo", 12).Return(true, nil)

	pr, err := f.uc.TrackPR(ctx, jo.ID, domain.PRCoordinates{Owner: "octo", Repo: "repo", Number: 12})

	assert.ErrorIs(t, err, domain.ErrPRAlreadyTracked)
	assert.Nil(t, pr)
	f.source.AssertNotCalled(t, "GetPullRequest", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPRUseCase_TrackPR_BadInputIsRejectedBeforeIO(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	_, err := f.uc.TrackPR(ctx, jo.ID, domain.PRCoordinates{URL: "https://github.com/octo/repo/issues/1"})
	assert.ErrorIs(t, err, domain.ErrInvalidPRURL)

	_, err = f.uc.TrackPR(ctx, jo.ID, domain.PRCoordinates{Owner: "octo"})
	assert.ErrorIs(t, err, domain.ErrMissingPRCoordinates)

	_, err = f.uc.TrackPR(ctx, "", domain.PRCoordinates{Owner: "octo", Repo: "repo", Number: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidFellowID)

	f.fellowRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPRUseCase_FetchRemotePR_HidesUpstreamCause(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	f.source.On("GetPullRequest", ctx, "octo", "repo", 5).Return(nil, errors.New("GET https://api.github.com/...: 401 Bad credentials"))

	remote, err := f.uc.FetchRemotePR(ctx, domain.PRCoordinates{Owner: "octo", Repo: "repo", Number: 5})

	assert.ErrorIs(t, err, domain.ErrUpstreamFetch)
	assert.NotContains(t, err.Error(), "credentials")
	assert.Nil(t, remote)
}

func TestPRUseCase_RefreshPR_ReplacesRowAndCommits(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	stored := &domain.PullRequest{ID: 9, Number: 12, Repository: "octo/repo", FellowID: jo.ID, Username: "jodoe", State: "open"}
	merged := remotePR(12)
	merged.State = "closed"
	mergedAt := merged.CreatedAt.Add(time.Hour)
	merged.MergedAt = &mergedAt

	f.prRepo.On("GetByID", ctx, int64(9)).Return(stored, nil)
	f.source.On("GetPullRequest", ctx, "octo", "repo", 12).Return(merged, nil)
	f.prRepo.On("ReplaceWithCommits", ctx, mock.MatchedBy(func(pr *domain.PullRequest) bool {
		return pr.ID == 9 && pr.FellowID == jo.ID && pr.State == "closed" && pr.MergedAt != nil && len(pr.Commits) == 2
	})).Return(func(_ context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
		return pr, nil
	})

	refreshed, err := f.uc.RefreshPR(ctx, 9)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusMerged, refreshed.Status())
	f.prRepo.AssertExpectations(t)
}

func TestPRUseCase_RefreshPR_UpstreamFailureLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	f.prRepo.On("GetByID", ctx, int64(9)).Return(&domain.PullRequest{ID: 9, Number: 1, Repository: "octo/repo"}, nil)
	f.source.On("GetPullRequest", ctx, "octo", "repo", 1).Return(nil, errors.New("timeout"))

	_, err := f.uc.RefreshPR(ctx, 9)

	assert.ErrorIs(t, err, domain.ErrUpstreamFetch)
	f.prRepo.AssertNotCalled(t, "ReplaceWithCommits", mock.Anything, mock.Anything)
}

func TestPRUseCase_ImportFellowPRs(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(2)

	f.fellowRepo.On("GetByID", ctx, jo.ID).Return(jo, nil)
	f.source.On("SearchPullRequestsByAuthor", ctx, "octo", "repo", "jodoe").
		Return([]*domain.RemotePullRequest{remotePR(1), remotePR(2), remotePR(3)}, nil)

	f.prRepo.On("ExistsByNumber", mock.Anything, "octo/repo", 1).Return(true, nil)
	f.prRepo.On("ExistsByNumber", mock.Anything, "octo/repo", 2).Return(false, nil)
	f.prRepo.On("ExistsByNumber", mock.Anything, "octo/repo", 3).Return(false, nil)
	f.source.On("GetPullRequest", mock.Anything, "octo", "repo", 2).Return(remotePR(2), nil)
	f.source.On("GetPullRequest", mock.Anything, "octo", "repo", 3).Return(remotePR(3), nil)
	f.prRepo.On("CreateWithCommits", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool { return pr.Number == 2 })).
		Return(&domain.PullRequest{ID: 2, Number: 2}, nil)
	// tracked concurrently by someone else between the check and the insert
	f.prRepo.On("CreateWithCommits", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool { return pr.Number == 3 })).
		Return(nil, domain.ErrPRAlreadyTracked)

	result, err := f.uc.ImportFellowPRs(ctx, jo.ID, "https://github.com/octo/repo")

	require.NoError(t, err)
	assert.Equal(t, "octo/repo", result.Repository)
	assert.Equal(t, 3, result.Found)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, result.Imported, 1)
	assert.Equal(t, 2, result.Imported[0].Number)
	f.source.AssertNotCalled(t, "GetPullRequest", mock.Anything, "octo", "repo", 1)
}

func TestPRUseCase_ImportFellowPRs_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid repository", func(t *testing.T) {
		f := newPRFixture(1)
		_, err := f.uc.ImportFellowPRs(ctx, jo.ID, "not a repo")
		assert.ErrorIs(t, err, domain.ErrInvalidRepoURL)
	})

	t.Run("unknown fellow", func(t *testing.T) {
		f := newPRFixture(1)
		f.fellowRepo.On("GetByID", ctx, "ghost").Return(nil, domain.ErrFellowNotFound)
		_, err := f.uc.ImportFellowPRs(ctx, "ghost", "octo/repo")
		assert.ErrorIs(t, err, domain.ErrFellowNotFound)
	})

	t.Run("search fails", func(t *testing.T) {
		f := newPRFixture(1)
		f.fellowRepo.On("GetByID", ctx, jo.ID).Return(jo, nil)
		f.source.On("SearchPullRequestsByAuthor", ctx, "octo", "repo", "jodoe").Return(nil, errors.New("rate limited"))
		_, err := f.uc.ImportFellowPRs(ctx, jo.ID, "octo/repo")
		assert.ErrorIs(t, err, domain.ErrUpstreamFetch)
	})

	t.Run("store fails", func(t *testing.T) {
		f := newPRFixture(1)
		f.fellowRepo.On("GetByID", ctx, jo.ID).Return(jo, nil)
		f.source.On("SearchPullRequestsByAuthor", ctx, "octo", "repo", "jodoe").
			Return([]*domain.RemotePullRequest{remotePR(1)}, nil)
		f.prRepo.On("ExistsByNumber", mock.Anything, "octo/repo", 1).Return(false, errors.New("connection reset"))
		_, err := f.uc.ImportFellowPRs(ctx, jo.ID, "octo/repo")
		assert.EqualError(t, err, "connection reset")
	})
}

func TestPRUseCase_ImportFellowPRs_ReturnsPartialResultOnFailure(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	f.fellowRepo.On("GetByID", ctx, jo.ID).Return(jo, nil)
	f.source.On("SearchPullRequestsByAuthor", ctx, "octo", "repo", "jodoe").
		Return([]*domain.RemotePullRequest{remotePR(3), remotePR(1), remotePR(2)}, nil)
	f.prRepo.On("ExistsByNumber", mock.Anything, "octo/repo", mock.Anything).Return(false, nil)
	for _, n := range []int{1, 2, 3} {
		f.source.On("GetPullRequest", mock.Anything, "octo", "repo", n).Return(remotePR(n), nil)
	}

	storeDown := errors.New("disk full")
	f.prRepo.On("CreateWithCommits", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool { return pr.Number == 2 })).
		Return(nil, storeDown)
	f.prRepo.On("CreateWithCommits", mock.Anything, mock.MatchedBy(func(pr *domain.PullRequest) bool { return pr.Number != 2 })).
		Return(func(_ context.Context, pr *domain.PullRequest) (*domain.PullRequest, error) {
			return &domain.PullRequest{ID: int64(pr.Number), Number: pr.Number}, nil
		})

	result, err := f.uc.ImportFellowPRs(ctx, jo.ID, "octo/repo")

	assert.ErrorIs(t, err, storeDown)
	require.NotNil(t, result)
	assert.Equal(t, 3, result.Found)
	require.Len(t, result.Imported, 2)
	assert.Equal(t, 1, result.Imported[0].Number)
	assert.Equal(t, 3, result.Imported[1].Number)
}

func TestPRUseCase_AddCommitsAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newPRFixture(1)

	commits := []*domain.Commit{{SHA: "ccc", AuthorDate: time.Now()}}
	f.prRepo.On("AddCommits", ctx, int64(4), commits).Return(commits, nil)
	f.prRepo.On("Delete", ctx, int64(4)).Return(nil)

	added, err := f.uc.AddCommits(ctx, 4, commits)
	assert.NoError(t, err)
	assert.Equal(t, commits, added)

	_, err = f.uc.AddCommits(ctx, 4, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidCommit)

	_, err = f.uc.AddCommits(ctx, 0, commits)
	assert.ErrorIs(t, err, domain.ErrInvalidPRID)

	assert.NoError(t, f.uc.DeletePR(ctx, 4))
	f.prRepo.AssertExpectations(t)
}
