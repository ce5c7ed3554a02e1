package github

import (
	"context"

	"repo-radar/types"
)

// defaultBranchCandidates is the fixed lookup order used to locate the tip
// commit. The repository's actual default branch is deliberately not read
// from its metadata; repositories using another branch name resolve to
// ErrNotFound.
var defaultBranchCandidates = []string{"main", "master"}

// ResolveDefaultCommit returns the tip commit SHA of the first branch
// candidate that exists, trying main before master. Once a candidate
// succeeds no further lookups happen.
func (c *Client) ResolveDefaultCommit(ctx context.Context, ref types.RepoRef) (string, error) {
	for _, name := range defaultBranchCandidates {
		branch, _, err := c.api.Repositories.GetBranch(ctx, ref.Owner, ref.Name, name)
		if err != nil {
			continue
		}
		sha := branch.GetCommit().GetSHA()
		if sha == "" {
			return "", ErrMalformed
		}
		return sha, nil
	}
	return "", ErrNotFound
}

// ListBranches returns the names of the repository's branches.
func (c *Client) ListBranches(ctx context.Context, ref types.RepoRef) ([]string, error) {
	branches, _, err := c.api.Repositories.ListBranches(ctx, ref.Owner, ref.Name, nil)
	if err != nil {
		return nil, ErrNotFound
	}
	names := make([]string, 0, len(branches))
	for _, branch := range branches {
		names = append(names, branch.GetName())
	}
	return names, nil
}
