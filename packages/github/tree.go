package github

import (
	"context"

	"repo-radar/types"
)

// FetchTree retrieves the full recursive listing for a commit in a single
// request; there is no follow-up pagination. Remote records typed "tree" map
// to Directory and every other type maps to File.
func (c *Client) FetchTree(ctx context.Context, ref types.RepoRef, sha string) ([]types.TreeEntry, error) {
	remote, _, err := c.api.Git.GetTree(ctx, ref.Owner, ref.Name, sha, true)
	if err != nil {
		return nil, ErrNotFound
	}
	if remote == nil || remote.Entries == nil {
		return nil, ErrMalformed
	}

	entries := make([]types.TreeEntry, 0, len(remote.Entries))
	for _, item := range remote.Entries {
		path := item.GetPath()
		if path == "" {
			return nil, ErrMalformed
		}
		kind := types.File
		if item.GetType() == "tree" {
			kind = types.Directory
		}
		entries = append(entries, types.TreeEntry{Path: path, Kind: kind})
	}
	return entries, nil
}
