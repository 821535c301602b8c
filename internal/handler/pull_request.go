package handler

import (
	"net/http"

	"github-scout/api"
	"github-scout/internal/domain"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// PRHandler serves the tracked pull request endpoints.
type PRHandler struct {
	*BaseHandler
	prUseCase domain.PRUseCase
}

func NewPRHandler(prUseCase domain.PRUseCase, logger *logrus.Logger) *PRHandler {
	return &PRHandler{
		BaseHandler: NewBaseHandler(logger),
		prUseCase:   prUseCase,
	}
}

// CreatePullRequest stores a PR and its commits from the request payload.
func (h *PRHandler) CreatePullRequest(c echo.Context) error {
	var req api.CreatePullRequestJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind create PR request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	pr := fromPullRequestInput(req)
	logEntry := h.logRequest(c, "create_pr").WithFields(logrus.Fields{
		"repository": pr.Repository,
		"pr_number":  pr.Number,
		"fellow_id":  pr.FellowID,
	})

	created, err := h.prUseCase.CreatePR(c.Request().Context(), pr)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to create PR")
	}

	logEntry.WithFields(logrus.Fields{
		"pr_id":         created.ID,
		"commits_count": len(created.Commits),
	}).Info("PR created")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"pr": toAPIPullRequest(created),
	})
}

func (h *PRHandler) ListFellowPullRequests(c echo.Context, fellowId api.FellowId) error {
	logEntry := h.logRequest(c, "list_fellow_prs").WithField("fellow_id", fellowId)

	prs, err := h.prUseCase.ListFellowPRs(c.Request().Context(), fellowId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to list fellow PRs")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"prs": toAPIPullRequests(prs),
	})
}

func (h *PRHandler) GetPullRequest(c echo.Context, prId api.PrId) error {
	logEntry := h.logRequest(c, "get_pr").WithField("pr_id", prId)

	pr, err := h.prUseCase.GetPR(c.Request().Context(), prId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to get PR")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pr": toAPIPullRequest(pr),
	})
}

// UpdatePullRequest updates the PR and replaces its commits. Omitted fields are
// left zero here and filled from the stored row by the use case.
func (h *PRHandler) UpdatePullRequest(c echo.Context, prId api.PrId) error {
	var req api.UpdatePullRequestJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind update PR request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	pr := fromPullRequestInput(req)
	pr.ID = prId
	logEntry := h.logRequest(c, "update_pr").WithField("pr_id", prId)

	updated, err := h.prUseCase.UpdatePR(c.Request().Context(), pr)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to update PR")
	}

	logEntry.WithField("commits_count", len(updated.Commits)).Info("PR updated")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"pr": toAPIPullRequest(updated),
	})
}

func (h *PRHandler) DeletePullRequest(c echo.Context, prId api.PrId) error {
	logEntry := h.logRequest(c, "delete_pr").WithField("pr_id", prId)

	if err := h.prUseCase.DeletePR(c.Request().Context(), prId); err != nil {
		return h.fail(c, logEntry, err, "Failed to delete PR")
	}

	logEntry.Info("PR deleted")
	return c.NoContent(http.StatusNoContent)
}

func (h *PRHandler) AddPullRequestCommits(c echo.Context, prId api.PrId) error {
	var req api.AddPullRequestCommitsJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind add commits request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "add_commits").WithFields(logrus.Fields{
		"pr_id":         prId,
		"commits_count": len(req.Commits),
	})

	commits, err := h.prUseCase.AddCommits(c.Request().Context(), prId, fromCommitInputs(req.Commits))
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to add commits")
	}

	logEntry.Info("Commits added")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"commits": toAPICommits(commits),
	})
}

// TrackPullRequest fetches a PR from GitHub and stores it under the fellow.
func (h *PRHandler) TrackPullRequest(c echo.Context) error {
	var req api.TrackPullRequestJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind track PR request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	coords := domain.PRCoordinates{
		URL:    deref(req.PrUrl),
		Owner:  deref(req.Owner),
		Repo:   deref(req.Repo),
		Number: deref(req.PullNumber),
	}
	logEntry := h.logRequest(c, "track_pr").WithFields(logrus.Fields{
		"fellow_id": req.FellowId,
		"pr_url":    coords.URL,
	})

	pr, err := h.prUseCase.TrackPR(c.Request().Context(), req.FellowId, coords)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to track PR")
	}

	logEntry.WithField("pr_id", pr.ID).Info("PR tracked")
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"pr": toAPIPullRequest(pr),
	})
}

// RefreshPullRequest re-reads a tracked PR from GitHub.
func (h *PRHandler) RefreshPullRequest(c echo.Context, prId api.PrId) error {
	logEntry := h.logRequest(c, "refresh_pr").WithField("pr_id", prId)

	pr, err := h.prUseCase.RefreshPR(c.Request().Context(), prId)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to refresh PR")
	}

	logEntry.WithField("commits_count", len(pr.Commits)).Info("PR refreshed")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"pr": toAPIPullRequest(pr),
	})
}

func (h *PRHandler) ImportPullRequests(c echo.Context) error {
	var req api.ImportPullRequestsJSONRequestBody
	if err := c.Bind(&req); err != nil {
		h.logger.WithError(err).Warn("Failed to bind import request")
		return c.JSON(http.StatusBadRequest, toErrorResponse(api.INVALIDREQUEST, err.Error()))
	}

	logEntry := h.logRequest(c, "import_prs").WithFields(logrus.Fields{
		"fellow_id":  req.FellowId,
		"repository": req.Repository,
	})

	result, err := h.prUseCase.ImportFellowPRs(c.Request().Context(), req.FellowId, req.Repository)
	if err != nil {
		if result != nil {
			logEntry = logEntry.WithField("imported_before_failure", len(result.Imported))
		}
		return h.fail(c, logEntry, err, "Failed to import PRs")
	}

	logEntry.WithFields(logrus.Fields{
		"imported": len(result.Imported),
		"skipped":  result.Skipped,
	}).Info("PRs imported")
	return c.JSON(http.StatusOK, map[string]interface{}{
		"result": toAPIImportResult(result),
	})
}

// GetGitHubPullRequest proxies a PR read without storing anything.
func (h *PRHandler) GetGitHubPullRequest(c echo.Context, params api.GetGitHubPullRequestParams) error {
	coords := domain.PRCoordinates{
		URL:    deref(params.PrUrl),
		Owner:  deref(params.Owner),
		Repo:   deref(params.Repo),
		Number: deref(params.PullNumber),
	}
	logEntry := h.logRequest(c, "fetch_remote_pr").WithFields(logrus.Fields{
		"pr_url": coords.URL,
		"owner":  coords.Owner,
		"repo":   coords.Repo,
		"number": coords.Number,
	})

	remote, err := h.prUseCase.FetchRemotePR(c.Request().Context(), coords)
	if err != nil {
		return h.fail(c, logEntry, err, "Failed to fetch remote PR")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"pull_request": toAPIRemotePullRequest(remote),
	})
}
