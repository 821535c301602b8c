package handler

import (
	"net/http"

	"github-scout/api"
	"github-scout/internal/domain"
)

// Domain → API conversions.

func toAPIBatch(batch *domain.Batch) api.Batch {
	pods := make([]api.Pod, len(batch.Pods))
	for i, pod := range batch.Pods {
		pods[i] = toAPIPod(pod)
	}
	return api.Batch{
		Id:        batch.ID,
		Name:      batch.Name,
		CreatedAt: batch.CreatedAt,
		Pods:      pods,
	}
}

func toAPIBatches(batches []*domain.Batch) []api.Batch {
	result := make([]api.Batch, len(batches))
	for i, batch := range batches {
		result[i] = toAPIBatch(batch)
	}
	return result
}

func toAPIPod(pod *domain.Pod) api.Pod {
	fellows := make([]api.Fellow, len(pod.Fellows))
	for i, fellow := range pod.Fellows {
		fellows[i] = toAPIFellow(fellow)
	}
	return api.Pod{
		Id:        pod.ID,
		Name:      pod.Name,
		BatchId:   pod.BatchID,
		CreatedAt: pod.CreatedAt,
		Fellows:   fellows,
	}
}

func toAPIPods(pods []*domain.Pod) []api.Pod {
	result := make([]api.Pod, len(pods))
	for i, pod := range pods {
		result[i] = toAPIPod(pod)
	}
	return result
}

func toAPIFellow(fellow *domain.Fellow) api.Fellow {
	return api.Fellow{
		Id:        fellow.ID,
		FullName:  fellow.FullName,
		Username:  fellow.Username,
		PodId:     fellow.PodID,
		CreatedAt: fellow.CreatedAt,
		Prs:       toAPIPullRequests(fellow.PRs),
	}
}

func toAPIFellows(fellows []*domain.Fellow) []api.Fellow {
	result := make([]api.Fellow, len(fellows))
	for i, fellow := range fellows {
		result[i] = toAPIFellow(fellow)
	}
	return result
}

func toAPIPullRequest(pr *domain.PullRequest) api.PullRequest {
	return api.PullRequest{
		Id:          pr.ID,
		PrNumber:    pr.Number,
		Repository:  pr.Repository,
		Username:    pr.Username,
		UserId:      pr.FellowID,
		Title:       pr.Title,
		HtmlUrl:     pr.HTMLURL,
		State:       api.PullRequestState(pr.State),
		Status:      api.PullRequestStatus(pr.Status()),
		CreatedAt:   pr.CreatedAt,
		UpdatedAt:   pr.UpdatedAt,
		MergedAt:    pr.MergedAt,
		LastChecked: pr.LastChecked,
		Commits:     toAPICommits(pr.Commits),
	}
}

func toAPIPullRequests(prs []*domain.PullRequest) []api.PullRequest {
	result := make([]api.PullRequest, len(prs))
	for i, pr := range prs {
		result[i] = toAPIPullRequest(pr)
	}
	return result
}

func toAPICommits(commits []*domain.Commit) []api.Commit {
	result := make([]api.Commit, len(commits))
	for i, commit := range commits {
		result[i] = api.Commit{
			Id:         commit.ID,
			PrId:       commit.PRID,
			Sha:        commit.SHA,
			Message:    commit.Message,
			AuthorName: commit.AuthorName,
			AuthorDate: commit.AuthorDate,
			HtmlUrl:    commit.HTMLURL,
		}
	}
	return result
}

func toAPIRemotePullRequest(remote *domain.RemotePullRequest) api.RemotePullRequest {
	status := (&domain.PullRequest{State: remote.State, MergedAt: remote.MergedAt}).Status()
	return api.RemotePullRequest{
		Owner:     remote.Owner,
		Repo:      remote.Repo,
		Number:    remote.Number,
		Title:     remote.Title,
		HtmlUrl:   remote.HTMLURL,
		State:     remote.State,
		Status:    status,
		CreatedAt: remote.CreatedAt,
		UpdatedAt: remote.UpdatedAt,
		MergedAt:  remote.MergedAt,
		User: api.RemoteUser{
			Login:     remote.Author.Login,
			AvatarUrl: remote.Author.AvatarURL,
			HtmlUrl:   remote.Author.HTMLURL,
			Name:      remote.Author.Name,
		},
		Commits: toAPICommits(remote.Commits),
	}
}

func toAPIImportResult(result *domain.ImportResult) api.ImportResult {
	return api.ImportResult{
		Repository: result.Repository,
		Found:      result.Found,
		Skipped:    result.Skipped,
		Imported:   toAPIPullRequests(result.Imported),
	}
}

func toAPIRepoStats(stats []*domain.RepoStats) []api.RepoStats {
	result := make([]api.RepoStats, len(stats))
	for i, s := range stats {
		fellows := make(map[string]api.StateCount, len(s.Fellows))
		for name, count := range s.Fellows {
			fellows[name] = api.StateCount{Open: count.Open, Closed: count.Closed}
		}
		result[i] = api.RepoStats{
			Repo:    s.Repo,
			Open:    s.Open,
			Closed:  s.Closed,
			Fellows: fellows,
		}
	}
	return result
}

func toAPISeries(series *domain.PRSeries) api.PRSeries {
	rows := make([]map[string]interface{}, len(series.PRs))
	for i, point := range series.PRs {
		row := make(map[string]interface{}, len(point.Counts)+1)
		for repo, n := range point.Counts {
			row[repo] = n
		}
		row["date"] = point.Date
		rows[i] = row
	}

	repos := make([]string, len(series.Repos))
	copy(repos, series.Repos)

	out := api.PRSeries{Repos: repos, Prs: rows}
	if series.Summary != nil {
		summary := make(map[string]api.RepoTrend, len(series.Summary))
		for repo, trend := range series.Summary {
			summary[repo] = api.RepoTrend{
				Total:  trend.Total,
				Mean:   float32(trend.Mean),
				Median: float32(trend.Median),
				Peak:   trend.Peak,
			}
		}
		out.Summary = &summary
	}
	return out
}

func toAPICommitStats(stats []*domain.CommitStat) []api.CommitStat {
	result := make([]api.CommitStat, len(stats))
	for i, s := range stats {
		result[i] = api.CommitStat{Name: s.Name, Commits: s.Commits}
	}
	return result
}

func toAPIDashboard(d *domain.Dashboard) api.Dashboard {
	return api.Dashboard{
		PrsByFellow: toAPIRepoStats(d.ByRepo),
		Prs:         toAPISeries(d.Series),
		Commits:     toAPICommitStats(d.Commits),
	}
}

// API → domain conversions.

func fromPullRequestInput(req api.PullRequestInput) *domain.PullRequest {
	pr := &domain.PullRequest{
		Number:     req.PrNumber,
		Repository: req.Repository,
		State:      string(req.State),
		Username:   deref(req.Username),
		FellowID:   deref(req.UserId),
		Title:      deref(req.Title),
		HTMLURL:    deref(req.HtmlUrl),
		MergedAt:   req.MergedAt,
	}
	if req.CreatedAt != nil {
		pr.CreatedAt = *req.CreatedAt
	}
	if req.UpdatedAt != nil {
		pr.UpdatedAt = *req.UpdatedAt
	}
	if req.LastChecked != nil {
		pr.LastChecked = *req.LastChecked
	}
	if req.Commits != nil {
		pr.Commits = fromCommitInputs(*req.Commits)
	}
	return pr
}

func fromCommitInputs(inputs []api.CommitInput) []*domain.Commit {
	commits := make([]*domain.Commit, len(inputs))
	for i, in := range inputs {
		commits[i] = &domain.Commit{
			SHA:        in.Sha,
			Message:    deref(in.Message),
			AuthorName: deref(in.AuthorName),
			AuthorDate: in.AuthorDate,
			HTMLURL:    deref(in.HtmlUrl),
		}
	}
	return commits
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// Errors.

var statusByCode = map[api.ErrorResponseErrorCode]int{
	api.INVALIDREQUEST: http.StatusBadRequest,
	api.UNAUTHORIZED:   http.StatusUnauthorized,
	api.NOTFOUND:       http.StatusNotFound,
	api.BATCHEXISTS:    http.StatusConflict,
	api.PODEXISTS:      http.StatusConflict,
	api.FELLOWEXISTS:   http.StatusConflict,
	api.PREXISTS:       http.StatusConflict,
	api.UPSTREAMERROR:  http.StatusBadGateway,
}

func toErrorResponse(code api.ErrorResponseErrorCode, message string) api.ErrorResponse {
	var resp api.ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	return resp
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return toErrorResponse(api.ErrorResponseErrorCode(httpErr.Code), httpErr.Message)
}

// errorResponse resolves err to a status and body. Unmapped errors are
// reported as INTERNAL_ERROR without their text.
func errorResponse(err error) (int, api.ErrorResponse) {
	httpErr, exists := domain.ToHTTPError(err)
	if !exists {
		return http.StatusInternalServerError, toErrorResponse(api.INTERNALERROR, "internal server error")
	}
	status, ok := statusByCode[api.ErrorResponseErrorCode(httpErr.Code)]
	if !ok {
		status = http.StatusInternalServerError
	}
	return status, toAPIErrorResponse(httpErr)
}

func codeForStatus(status int) api.ErrorResponseErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return api.INVALIDREQUEST
	case http.StatusUnauthorized:
		return api.UNAUTHORIZED
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return api.NOTFOUND
	default:
		return api.INTERNALERROR
	}
}
