package github

import (
	"net/url"
	"strings"

	"repo-radar/types"
)

// webHost is the only host accepted for repository URLs. Subdomains,
// IP addresses and self-hosted instances are rejected.
const webHost = "github.com"

// ParseRepoURL validates a repository web URL and extracts its owner and
// name. Only https://github.com/<owner>/<repo>[/...] is accepted; everything
// else reports ok=false rather than an error. Trailing path segments such as
// /tree/main are ignored.
func ParseRepoURL(raw string) (types.RepoRef, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return types.RepoRef{}, false
	}
	if parsed.Scheme != "https" || parsed.Host != webHost {
		return types.RepoRef{}, false
	}

	parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return types.RepoRef{}, false
	}

	return types.RepoRef{Owner: parts[0], Name: parts[1]}, true
}

// URLCheck reports whether raw is a usable repository URL.
func URLCheck(raw string) bool {
	_, ok := ParseRepoURL(raw)
	return ok
}
