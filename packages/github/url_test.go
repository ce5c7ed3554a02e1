package github_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"repo-radar/packages/github"
	"repo-radar/types"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected types.RepoRef
		ok       bool
	}{
		{
			name:     "valid repository URL",
			url:      "https://github.com/acme/widgets",
			expected: types.RepoRef{Owner: "acme", Name: "widgets"},
			ok:       true,
		},
		{
			name:     "trailing path segments ignored",
			url:      "https://github.com/acme/widgets/tree/main",
			expected: types.RepoRef{Owner: "acme", Name: "widgets"},
			ok:       true,
		},
		{
			name:     "trailing slash",
			url:      "https://github.com/acme/widgets/",
			expected: types.RepoRef{Owner: "acme", Name: "widgets"},
			ok:       true,
		},
		{
			name: "http scheme rejected",
			url:  "http://github.com/acme/widgets",
		},
		{
			name: "other host rejected",
			url:  "https://gitlab.com/acme/widgets",
		},
		{
			name: "subdomain rejected",
			url:  "https://www.github.com/acme/widgets",
		},
		{
			name: "missing repository name",
			url:  "https://github.com/acme",
		},
		{
			name: "empty path",
			url:  "https://github.com/",
		},
		{
			name: "not a URL",
			url:  "::not a url::",
		},
		{
			name: "empty string",
			url:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := github.ParseRepoURL(tt.url)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, ref)
		})
	}
}

func TestURLCheck(t *testing.T) {
	assert.True(t, github.URLCheck("https://github.com/acme/widgets"))
	assert.False(t, github.URLCheck("http://github.com/acme/widgets"))
	assert.False(t, github.URLCheck("https://gitlab.com/acme/widgets"))
}
