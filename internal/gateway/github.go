// Package gateway talks to GitHub: pull request metadata and commits over
// REST, author search over GraphQL.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github-scout/internal/domain"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	perPage     = 100
	searchLimit = 50
)

// GitHubGateway implements domain.SourceControl.
type GitHubGateway struct {
	restClient    *github.Client
	graphqlClient *githubv4.Client
	logger        *logrus.Logger
}

// searchPullRequestsQuery pages through `is:pr author:x repo:o/r` results.
type searchPullRequestsQuery struct {
	Search struct {
		PageInfo struct {
			HasNextPage bool
			EndCursor   githubv4.String
		}
		Nodes []struct {
			Typename    string `graphql:"__typename"`
			PullRequest struct {
				Number     int
				Title      string
				URL        string
				State      githubv4.PullRequestState
				CreatedAt  githubv4.DateTime
				UpdatedAt  githubv4.DateTime
				MergedAt   *githubv4.DateTime
				Repository struct {
					Name  string
					Owner struct {
						Login string
					}
				}
				Author struct {
					Login     string
					AvatarURL string `graphql:"avatarUrl"`
					URL       string
				}
			} `graphql:"... on PullRequest"`
		}
	} `graphql:"search(query: $query, type: ISSUE, first: $first, after: $cursor)"`
}

// NewGitHubGateway builds REST and GraphQL clients sharing one rate-limit
// aware transport. An empty token talks to GitHub anonymously; an empty
// baseURL means github.com.
func NewGitHubGateway(token, baseURL string, logger *logrus.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}

	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	httpClient := &http.Client{Transport: transport, Timeout: 30 * time.Second}

	restClient := github.NewClient(httpClient)
	graphqlClient := githubv4.NewClient(httpClient)

	if baseURL != "" {
		restClient, err = restClient.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", baseURL, err)
		}
		graphqlClient = githubv4.NewEnterpriseClient(graphqlEndpoint(baseURL), httpClient)
	}

	return &GitHubGateway{
		restClient:    restClient,
		graphqlClient: graphqlClient,
		logger:        logger,
	}, nil
}

// graphqlEndpoint maps an Enterprise REST base (https://host/api/v3/) to
// its GraphQL endpoint (https://host/api/graphql).
func graphqlEndpoint(baseURL string) string {
	u := strings.TrimSuffix(baseURL, "/")
	if strings.HasSuffix(u, "/api/v3") {
		return strings.TrimSuffix(u, "/v3") + "/graphql"
	}
	return u + "/api/graphql"
}

// GetPullRequest fetches the PR and its full commit list.
func (g *GitHubGateway) GetPullRequest(ctx context.Context, owner, repo string, number int) (*domain.RemotePullRequest, error) {
	g.logger.WithFields(logrus.Fields{
		"owner":  owner,
		"repo":   repo,
		"number": number,
	}).Debug("Fetching pull request")

	pr, _, err := g.restClient.PullRequests.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get pull request %s/%s#%d: %w", owner, repo, number, err)
	}

	commits, err := g.ListCommits(ctx, owner, repo, number)
	if err != nil {
		return nil, err
	}

	remote := &domain.RemotePullRequest{
		Owner:     owner,
		Repo:      repo,
		Number:    pr.GetNumber(),
		Title:     pr.GetTitle(),
		HTMLURL:   pr.GetHTMLURL(),
		State:     pr.GetState(),
		CreatedAt: pr.GetCreatedAt().Time,
		UpdatedAt: pr.GetUpdatedAt().Time,
		Author: domain.RemoteUser{
			Login:     pr.GetUser().GetLogin(),
			AvatarURL: pr.GetUser().GetAvatarURL(),
			HTMLURL:   pr.GetUser().GetHTMLURL(),
			Name:      pr.GetUser().GetName(),
		},
		Commits: commits,
	}
	if pr.MergedAt != nil {
		mergedAt := pr.GetMergedAt().Time
		remote.MergedAt = &mergedAt
	}

	return remote, nil
}

// ListCommits pages through every commit of the PR.
func (g *GitHubGateway) ListCommits(ctx context.Context, owner, repo string, number int) ([]*domain.Commit, error) {
	opts := &github.ListOptions{PerPage: perPage}
	commits := make([]*domain.Commit, 0)

	for {
		page, resp, err := g.restClient.PullRequests.ListCommits(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list commits of %s/%s#%d: %w", owner, repo, number, err)
		}

		for _, c := range page {
			commits = append(commits, &domain.Commit{
				SHA:        c.GetSHA(),
				Message:    c.GetCommit().GetMessage(),
				AuthorName: c.GetCommit().GetAuthor().GetName(),
				AuthorDate: c.GetCommit().GetAuthor().GetDate().Time,
				HTMLURL:    c.GetHTMLURL(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
		g.logger.WithField("page", opts.Page).Debug("Fetching next page of commits")
	}

	return commits, nil
}

// SearchPullRequestsByAuthor returns every PR username opened in owner/repo.
// Results carry no commits.
func (g *GitHubGateway) SearchPullRequestsByAuthor(ctx context.Context, owner, repo, username string) ([]*domain.RemotePullRequest, error) {
	query := fmt.Sprintf("repo:%s/%s is:pr author:%s", owner, repo, username)
	variables := map[string]interface{}{
		"query":  githubv4.String(query),
		"first":  githubv4.Int(searchLimit),
		"cursor": (*githubv4.String)(nil),
	}

	prs := make([]*domain.RemotePullRequest, 0)
	for {
		var q searchPullRequestsQuery
		if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
			return nil, fmt.Errorf("failed to search pull requests: %w", err)
		}

		for _, node := range q.Search.Nodes {
			if node.Typename != "PullRequest" {
				continue
			}
			p := node.PullRequest

			remote := &domain.RemotePullRequest{
				Owner:     p.Repository.Owner.Login,
				Repo:      p.Repository.Name,
				Number:    p.Number,
				Title:     p.Title,
				HTMLURL:   p.URL,
				State:     restState(p.State),
				CreatedAt: p.CreatedAt.Time,
				UpdatedAt: p.UpdatedAt.Time,
				Author: domain.RemoteUser{
					Login:     p.Author.Login,
					AvatarURL: p.Author.AvatarURL,
					HTMLURL:   p.Author.URL,
				},
			}
			if p.MergedAt != nil {
				mergedAt := p.MergedAt.Time
				remote.MergedAt = &mergedAt
			}
			prs = append(prs, remote)
		}

		if !q.Search.PageInfo.HasNextPage {
			break
		}
		variables["cursor"] = githubv4.NewString(q.Search.PageInfo.EndCursor)
		g.logger.Debug("Fetching next page of search results")
	}

	g.logger.WithFields(logrus.Fields{
		"query": query,
		"found": len(prs),
	}).Info("Searched pull requests")

	return prs, nil
}

// restState folds the GraphQL tri-state onto the REST open/closed pair.
// Merged PRs are closed with MergedAt set.
func restState(state githubv4.PullRequestState) string {
	if state == githubv4.PullRequestStateOpen {
		return domain.StateOpen
	}
	return domain.StateClosed
}
