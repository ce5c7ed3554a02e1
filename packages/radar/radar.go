package radar

import (
	"context"
	"errors"
	"log/slog"

	"repo-radar/packages/ai"
	"repo-radar/packages/config"
	"repo-radar/packages/github"
	"repo-radar/packages/tree"
	"repo-radar/types"
)

// ErrInvalidURL marks a repository URL that failed validation. The URL never
// reaches the network.
var ErrInvalidURL = errors.New("radar: invalid repository URL")

// Service wires the GitHub client and an AI provider into the dashboard's
// operations. It holds no per-request state; every method derives its data
// fresh from the inputs.
type Service struct {
	github *github.Client
}

func NewService(client *github.Client) *Service {
	return &Service{github: client}
}

// TreeNode fetches a repository's listing and builds its nested tree:
// URL -> (owner, repo) -> tip commit -> flat entries -> nested structure.
func (s *Service) TreeNode(ctx context.Context, rawURL string) (*tree.Node, types.RepoRef, error) {
	ref, ok := github.ParseRepoURL(rawURL)
	if !ok {
		return nil, types.RepoRef{}, ErrInvalidURL
	}

	sha, err := s.github.ResolveDefaultCommit(ctx, ref)
	if err != nil {
		return nil, ref, err
	}

	entries, err := s.github.FetchTree(ctx, ref, sha)
	if err != nil {
		return nil, ref, err
	}

	slog.Info("Fetched repository tree", "repo", ref.String(), "commit", sha, "entries", len(entries))
	return tree.Build(entries), ref, nil
}

// TreeString returns the rendered ASCII form of the repository tree.
func (s *Service) TreeString(ctx context.Context, rawURL string) (string, error) {
	root, _, err := s.TreeNode(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return root.Render(), nil
}

// Structure runs the repository-structure report.
func (s *Service) Structure(ctx context.Context, provider ai.Provider, rawURL string) (string, error) {
	root, _, err := s.TreeNode(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return ai.NewAnalyzer(provider).RepositoryStructure(ctx, root)
}

// Setup runs the environment-setup report. A repository without a README is
// still analyzed; the prompt states the README is missing.
func (s *Service) Setup(ctx context.Context, provider ai.Provider, rawURL string) (string, error) {
	root, ref, err := s.TreeNode(ctx, rawURL)
	if err != nil {
		return "", err
	}
	readme, err := s.github.FetchReadme(ctx, ref)
	if err != nil {
		slog.Info("No README available", "repo", ref.String())
		readme = ""
	}
	return ai.NewAnalyzer(provider).EnvironmentSetup(ctx, root, readme)
}

// Flow runs the code-flow report. files names repository paths whose content
// is attached as source snippets; progress, when non-nil, is called once per
// fetched file. Files that cannot be fetched are skipped.
func (s *Service) Flow(ctx context.Context, provider ai.Provider, rawURL string, files []string, progress func(path string)) (string, error) {
	root, ref, err := s.TreeNode(ctx, rawURL)
	if err != nil {
		return "", err
	}

	var sources map[string]string
	if len(files) > 0 {
		sources = make(map[string]string, len(files))
		for _, path := range files {
			content, err := s.github.FetchFileContent(ctx, ref, path)
			if err != nil {
				slog.Warn("Skipping unreadable file", "repo", ref.String(), "path", path, "error", err)
			} else {
				sources[path] = content
			}
			if progress != nil {
				progress(path)
			}
		}
	}
	return ai.NewAnalyzer(provider).CodeFlow(ctx, root, sources)
}

// Issues runs the issue-summary report over the repository's open issues.
func (s *Service) Issues(ctx context.Context, provider ai.Provider, rawURL string) (string, error) {
	ref, ok := github.ParseRepoURL(rawURL)
	if !ok {
		return "", ErrInvalidURL
	}
	issues, err := s.github.ListOpenIssues(ctx, ref, config.GetConfig().GitHub.IssueLimit)
	if err != nil {
		return "", err
	}
	return ai.NewAnalyzer(provider).IssueSummary(ctx, issues)
}
