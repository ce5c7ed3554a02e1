package github

import (
	"context"

	gogithub "github.com/google/go-github/github"

	"repo-radar/types"
)

// ListOpenIssues returns up to limit open issues, excluding pull requests,
// which the issues endpoint also reports.
func (c *Client) ListOpenIssues(ctx context.Context, ref types.RepoRef, limit int) ([]types.Issue, error) {
	opt := &gogithub.IssueListByRepoOptions{
		State:       "open",
		ListOptions: gogithub.ListOptions{PerPage: limit},
	}
	remote, _, err := c.api.Issues.ListByRepo(ctx, ref.Owner, ref.Name, opt)
	if err != nil {
		return nil, ErrNotFound
	}

	issues := make([]types.Issue, 0, len(remote))
	for _, item := range remote {
		if item.IsPullRequest() {
			continue
		}
		labels := make([]string, 0, len(item.Labels))
		for _, label := range item.Labels {
			labels = append(labels, label.GetName())
		}
		issues = append(issues, types.Issue{
			Number: item.GetNumber(),
			Title:  item.GetTitle(),
			Body:   item.GetBody(),
			State:  item.GetState(),
			Labels: labels,
		})
		if limit > 0 && len(issues) == limit {
			break
		}
	}
	return issues, nil
}
