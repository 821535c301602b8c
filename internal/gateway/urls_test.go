package gateway

import (
	"testing"

	"github-scout/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestParsePullRequestURL(t *testing.T) {
	testCases := []struct {
		name   string
		raw    string
		owner  string
		repo   string
		number int
		err    error
	}{
		{name: "canonical", raw: "https://github.com/octo/repo/pull/12", owner: "octo", repo: "repo", number: 12},
		{name: "trailing path", raw: "https://github.com/octo/repo/pull/12/files", owner: "octo", repo: "repo", number: 12},
		{name: "no scheme", raw: "github.com/a-b/c.d/pull/3", owner: "a-b", repo: "c.d", number: 3},
		{name: "issue link", raw: "https://github.com/octo/repo/issues/12", err: domain.ErrInvalidPRURL},
		{name: "other host", raw: "https://gitlab.com/octo/repo/pull/12", err: domain.ErrInvalidPRURL},
		{name: "zero number", raw: "https://github.com/octo/repo/pull/0", err: domain.ErrInvalidPRURL},
		{name: "empty", raw: "", err: domain.ErrInvalidPRURL},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			owner, repo, number, err := ParsePullRequestURL(tc.raw)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, tc.repo, repo)
			assert.Equal(t, tc.number, number)
		})
	}
}

func TestParseRepositoryURL(t *testing.T) {
	testCases := []struct {
		raw   string
		owner string
		repo  string
		ok    bool
	}{
		{raw: "https://github.com/octo/repo", owner: "octo", repo: "repo", ok: true},
		{raw: "https://github.com/octo/repo/", owner: "octo", repo: "repo", ok: true},
		{raw: "github.com/octo/repo.git", owner: "octo", repo: "repo", ok: true},
		{raw: "octo/repo", owner: "octo", repo: "repo", ok: true},
		{raw: "octo", ok: false},
		{raw: "https://github.com/octo/repo/pull/1", ok: false},
		{raw: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			owner, repo, err := ParseRepositoryURL(tc.raw)
			if !tc.ok {
				assert.ErrorIs(t, err, domain.ErrInvalidRepoURL)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.owner, owner)
			assert.Equal(t, tc.repo, repo)
		})
	}
}
