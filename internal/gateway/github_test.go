package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// setupTestGateway points both clients at a mock server.
func setupTestGateway(t *testing.T, handler http.Handler) (*GitHubGateway, *httptest.Server) {
	server := httptest.NewServer(handler)

	restClient := github.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	restClient.BaseURL = baseURL

	graphqlClient := githubv4.NewEnterpriseClient(server.URL, server.Client())

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        discardLogger(),
	}, server
}

const pullJSON = `{
	"number": 42,
	"title": "Add dashboard",
	"html_url": "https://github.com/octo/repo/pull/42",
	"state": "closed",
	"created_at": "2026-10-01T10:00:00Z",
	"updated_at": "2026-10-02T10:00:00Z",
	"merged_at": "2026-10-02T09:00:00Z",
	"user": {"login": "jodoe", "avatar_url": "https://avatars/jodoe", "html_url": "https://github.com/jodoe"}
}`

func commitJSON(sha string) string {
	return fmt.Sprintf(`{
		"sha": %q,
		"html_url": "https://github.com/octo/repo/commit/%s",
		"commit": {"message": "msg %s", "author": {"name": "Jo Doe", "date": "2026-10-01T11:00:00Z"}}
	}`, sha, sha, sha)
}

func TestGitHubGateway_GetPullRequest(t *testing.T) {
	var serverURL string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/repo/pulls/42", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, pullJSON)
	})
	mux.HandleFunc("/repos/octo/repo/pulls/42/commits", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			fmt.Fprintf(w, "[%s]", commitJSON("ccc"))
			return
		}
		w.Header().Set("Link", fmt.Sprintf(`<%s/repos/octo/repo/pulls/42/commits?page=2>; rel="next"`, serverURL))
		fmt.Fprintf(w, "[%s,%s]", commitJSON("aaa"), commitJSON("bbb"))
	})

	gateway, server := setupTestGateway(t, mux)
	defer server.Close()
	serverURL = server.URL

	pr, err := gateway.GetPullRequest(context.Background(), "octo", "repo", 42)
	require.NoError(t, err)

	assert.Equal(t, "octo/repo", pr.Repository())
	assert.Equal(t, 42, pr.Number)
	assert.Equal(t, "Add dashboard", pr.Title)
	assert.Equal(t, "closed", pr.State)
	assert.Equal(t, "jodoe", pr.Author.Login)
	require.NotNil(t, pr.MergedAt)
	assert.Equal(t, time.Date(2026, 10, 2, 9, 0, 0, 0, time.UTC), pr.MergedAt.UTC())

	require.Len(t, pr.Commits, 3)
	assert.Equal(t, "aaa", pr.Commits[0].SHA)
	assert.Equal(t, "msg aaa", pr.Commits[0].Message)
	assert.Equal(t, "Jo Doe", pr.Commits[0].AuthorName)
	assert.Equal(t, "ccc", pr.Commits[2].SHA)
}

func TestGitHubGateway_GetPullRequest_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		handlerFunc    func(w http.ResponseWriter, r *http.Request)
		expectedErrMsg string
	}{
		{
			name: "pull request lookup fails",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message": "Not Found"}`)
			},
			expectedErrMsg: "failed to get pull request octo/repo#1",
		},
		{
			name: "commit listing fails",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/repos/octo/repo/pulls/1" {
					fmt.Fprint(w, pullJSON)
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "boom"}`)
			},
			expectedErrMsg: "failed to list commits of octo/repo#1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gateway, server := setupTestGateway(t, http.HandlerFunc(tc.handlerFunc))
			defer server.Close()

			_, err := gateway.GetPullRequest(context.Background(), "octo", "repo", 1)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErrMsg)
		})
	}
}

func TestGitHubGateway_SearchPullRequestsByAuthor(t *testing.T) {
	calls := 0
	handler := func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "repo:octo/repo is:pr author:jodoe")

		calls++
		if calls == 1 {
			fmt.Fprint(w, `{"data":{"search":{"pageInfo":{"hasNextPage":true,"endCursor":"c1"},"nodes":[
				{"__typename":"PullRequest","number":1,"title":"one","url":"https://github.com/octo/repo/pull/1","state":"OPEN",
				 "createdAt":"2026-10-01T00:00:00Z","updatedAt":"2026-10-01T00:00:00Z","mergedAt":null,
				 "repository":{"name":"repo","owner":{"login":"octo"}},"author":{"login":"jodoe","avatarUrl":"","url":""}},
				{"__typename":"Issue"}
			]}}}`)
			return
		}
		assert.Contains(t, string(body), "c1")
		fmt.Fprint(w, `{"data":{"search":{"pageInfo":{"hasNextPage":false,"endCursor":""},"nodes":[
			{"__typename":"PullRequest","number":2,"title":"two","url":"https://github.com/octo/repo/pull/2","state":"MERGED",
			 "createdAt":"2026-10-02T00:00:00Z","updatedAt":"2026-10-03T00:00:00Z","mergedAt":"2026-10-03T00:00:00Z",
			 "repository":{"name":"repo","owner":{"login":"octo"}},"author":{"login":"jodoe","avatarUrl":"","url":""}}
		]}}}`)
	}

	gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
	defer server.Close()

	prs, err := gateway.SearchPullRequestsByAuthor(context.Background(), "octo", "repo", "jodoe")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	require.Len(t, prs, 2)
	assert.Equal(t, 1, prs[0].Number)
	assert.Equal(t, "open", prs[0].State)
	assert.Nil(t, prs[0].MergedAt)
	assert.Equal(t, "octo/repo", prs[1].Repository())
	assert.Equal(t, "closed", prs[1].State)
	assert.NotNil(t, prs[1].MergedAt)
}

func TestGitHubGateway_SearchPullRequestsByAuthor_Error(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"errors":[{"message":"Something went wrong"}]}`)
	}

	gateway, server := setupTestGateway(t, http.HandlerFunc(handler))
	defer server.Close()

	_, err := gateway.SearchPullRequestsByAuthor(context.Background(), "octo", "repo", "jodoe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search pull requests")
}

func TestNewGitHubGateway_EnterpriseBaseURL(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/repos/octo/repo/pulls/7/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		fmt.Fprintf(w, "[%s]", commitJSON("abc"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	gateway, err := NewGitHubGateway("secret", server.URL+"/api/v3/", discardLogger())
	require.NoError(t, err)

	commits, err := gateway.ListCommits(context.Background(), "octo", "repo", 7)
	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, "abc", commits[0].SHA)
}

func TestGraphqlEndpoint(t *testing.T) {
	assert.Equal(t, "https://ghe.local/api/graphql", graphqlEndpoint("https://ghe.local/api/v3/"))
	assert.Equal(t, "https://ghe.local/api/graphql", graphqlEndpoint("https://ghe.local"))
}
