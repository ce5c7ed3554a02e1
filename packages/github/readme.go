package github

import (
	"context"

	"repo-radar/types"
)

// FetchReadme returns the repository README decoded to plain text. The text
// is passed through to the AI collaborator untouched.
func (c *Client) FetchReadme(ctx context.Context, ref types.RepoRef) (string, error) {
	content, _, err := c.api.Repositories.GetReadme(ctx, ref.Owner, ref.Name, nil)
	if err != nil {
		return "", ErrNotFound
	}
	text, err := content.GetContent()
	if err != nil {
		return "", ErrMalformed
	}
	return text, nil
}

// FetchFileContent returns one file's decoded content. Used to attach source
// snippets to the code-flow analysis.
func (c *Client) FetchFileContent(ctx context.Context, ref types.RepoRef, path string) (string, error) {
	file, _, _, err := c.api.Repositories.GetContents(ctx, ref.Owner, ref.Name, path, nil)
	if err != nil {
		return "", ErrNotFound
	}
	if file == nil {
		return "", ErrMalformed
	}
	text, err := file.GetContent()
	if err != nil {
		return "", ErrMalformed
	}
	return text, nil
}
