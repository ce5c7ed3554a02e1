package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"repo-radar/packages/config"
	"repo-radar/packages/tree"
	"repo-radar/types"
)

// Analyzer runs the four report operations against one provider. Each
// operation serializes its inputs, builds the matching prompt and issues a
// single generation request.
type Analyzer struct {
	provider Provider
	cfg      config.AIConfig
}

func NewAnalyzer(provider Provider) *Analyzer {
	return &Analyzer{provider: provider, cfg: config.GetConfig().AI}
}

// Provider returns the backend the analyzer is bound to.
func (a *Analyzer) Provider() Provider {
	return a.provider
}

// RepositoryStructure analyzes the repository layout.
func (a *Analyzer) RepositoryStructure(ctx context.Context, root *tree.Node) (string, error) {
	treeJSON, err := marshalTree(root)
	if err != nil {
		return "", err
	}
	return a.generate(ctx, RoleRepositoryAnalyzer, BuildStructurePrompt(treeJSON), a.cfg.StructureTemperature)
}

// EnvironmentSetup produces a setup guide from the tree and README.
func (a *Analyzer) EnvironmentSetup(ctx context.Context, root *tree.Node, readme string) (string, error) {
	treeJSON, err := marshalTree(root)
	if err != nil {
		return "", err
	}
	return a.generate(ctx, RoleEnvironmentGuide, BuildSetupPrompt(treeJSON, readme), a.cfg.SetupTemperature)
}

// CodeFlow traces execution paths; sources maps filenames to their content
// and may be nil.
func (a *Analyzer) CodeFlow(ctx context.Context, root *tree.Node, sources map[string]string) (string, error) {
	treeJSON, err := marshalTree(root)
	if err != nil {
		return "", err
	}
	prompt := BuildFlowPrompt(treeJSON, sources, a.cfg.SnippetMaxChars)
	return a.generate(ctx, RoleCodeFlowAnalyzer, prompt, a.cfg.FlowTemperature)
}

// IssueSummary summarizes and categorizes the issue list.
func (a *Analyzer) IssueSummary(ctx context.Context, issues []types.Issue) (string, error) {
	if len(issues) == 0 {
		return "", fmt.Errorf("ai: no issues to summarize")
	}
	issuesJSON, err := json.MarshalIndent(issues, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize issues: %w", err)
	}
	return a.generate(ctx, RoleIssueSummarizer, BuildIssuesPrompt(string(issuesJSON)), a.cfg.IssueTemperature)
}

func (a *Analyzer) generate(ctx context.Context, role Role, prompt string, temperature float32) (string, error) {
	slog.Info("Sending generation request", "provider", a.provider.Name(), "role", string(role), "promptLength", len(prompt))

	content, err := a.provider.Generate(ctx, SystemPrompt(role, a.cfg.Language), prompt, temperature)
	if err != nil {
		slog.Error("Generation failed", "provider", a.provider.Name(), "role", string(role), "error", err)
		return "", err
	}

	slog.Info("Generation complete", "role", string(role), "contentLength", len(content))
	return content, nil
}

func marshalTree(root *tree.Node) (string, error) {
	if root == nil {
		return "", fmt.Errorf("ai: no tree to analyze")
	}
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize tree: %w", err)
	}
	return string(data), nil
}
