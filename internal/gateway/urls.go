package gateway

import (
	"regexp"
	"strconv"
	"strings"

	"github-scout/internal/domain"
)

var pullRequestURLPattern = regexp.MustCompile(`github\.com/([^/\s]+)/([^/\s]+)/pull/(\d+)`)

// ParsePullRequestURL extracts owner, repo and number from a PR link such
// as https://github.com/o/r/pull/12/files.
func ParsePullRequestURL(raw string) (owner, repo string, number int, err error) {
	m := pullRequestURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", "", 0, domain.ErrInvalidPRURL
	}

	number, err = strconv.Atoi(m[3])
	if err != nil || number <= 0 {
		return "", "", 0, domain.ErrInvalidPRURL
	}

	return m[1], m[2], number, nil
}

// ParseRepositoryURL accepts https://github.com/o/r, github.com/o/r or o/r.
func ParseRepositoryURL(raw string) (owner, repo string, err error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimPrefix(s, "github.com/")
	s = strings.TrimSuffix(s, "/")
	s = strings.TrimSuffix(s, ".git")

	owner, repo, ok := domain.SplitRepository(s)
	if !ok || strings.ContainsAny(s, " :?#") {
		return "", "", domain.ErrInvalidRepoURL
	}
	return owner, repo, nil
}
