package ai

import (
	"fmt"
	"sort"
	"strings"
)

// Role selects which system prompt frames a generation request.
type Role string

const (
	RoleRepositoryAnalyzer Role = "repository_analyzer"
	RoleEnvironmentGuide   Role = "environment_guide"
	RoleCodeFlowAnalyzer   Role = "code_flow_analyzer"
	RoleIssueSummarizer    Role = "issue_summarizer"
)

// systemPrompts frames each report type. The response language is
// substituted in by SystemPrompt.
var systemPrompts = map[Role]string{
	RoleRepositoryAnalyzer: `You are an expert software architect specializing in code analysis.

Your task:
- Analyze repository structure and identify patterns
- Determine entry points and main files
- Evaluate code organization quality
- Provide clear, actionable insights

You must answer in %s.`,

	RoleEnvironmentGuide: `You are a DevOps engineer specializing in development environment setup.

Your task:
- Create step-by-step installation guides
- Identify required dependencies
- Provide configuration instructions
- Include troubleshooting tips

You must answer in %s.`,

	RoleCodeFlowAnalyzer: `You are an expert software engineer specializing in code flow analysis.

Your task:
- Trace execution flow from entry points
- Identify function call chains and dependencies
- Map data flow through the application
- Explain how different modules interact
- Highlight critical paths and bottlenecks

You must answer in %s.`,

	RoleIssueSummarizer: `You are a technical project manager specializing in issue analysis.

Your task:
- Summarize issues clearly and concisely
- Categorize issues by type (bug, feature, enhancement)
- Identify priority and severity
- Extract key information (steps to reproduce, expected behavior)
- Provide actionable recommendations

You must answer in %s.`,
}

// SystemPrompt returns the system instruction for a role, bound to the
// requested response language.
func SystemPrompt(role Role, language string) string {
	if language == "" {
		language = "English"
	}
	return fmt.Sprintf(systemPrompts[role], language)
}

// BuildStructurePrompt asks for a structural analysis of a repository given
// its JSON-serialized file tree.
func BuildStructurePrompt(treeJSON string) string {
	return fmt.Sprintf(`Analyze this repository file tree structure:
`+"```json"+`
%s
`+"```"+`

Please provide:
1. **Entry Point**: Main files to start the application
2. **Languages Used**: Primary programming languages
3. **Directory Structure**: Purpose of each directory
4. **Code Organization**: Quality assessment and suggestions
5. **Project Type**: Web app, CLI tool, library, etc.`, treeJSON)
}

// BuildSetupPrompt asks for an environment setup guide given the README and
// the JSON file tree. A missing README is stated explicitly.
func BuildSetupPrompt(treeJSON, readme string) string {
	if readme == "" {
		readme = "(No README file found)"
	}
	return fmt.Sprintf(`Based on the following information, create a comprehensive setup guide:

README:
%s

File Structure:
`+"```json"+`
%s
`+"```"+`

Please provide:
1. **System Requirements**: OS, software versions
2. **Installation Steps**: Numbered, detailed instructions
3. **Configuration**: Environment variables, config files
4. **Running the Application**: Commands to start
5. **Troubleshooting**: Common issues and solutions`, readme, treeJSON)
}

// BuildFlowPrompt asks for a code-flow analysis. Source snippets, when
// supplied, are appended in filename order and truncated to snippetMaxChars
// each so a handful of large files cannot crowd out the tree.
func BuildFlowPrompt(treeJSON string, sources map[string]string, snippetMaxChars int) string {
	var sourceInfo strings.Builder
	if len(sources) > 0 {
		names := make([]string, 0, len(sources))
		for name := range sources {
			names = append(names, name)
		}
		sort.Strings(names)

		sourceInfo.WriteString("\n\nSource Code Samples:\n")
		for _, name := range names {
			code := sources[name]
			if snippetMaxChars > 0 && len(code) > snippetMaxChars {
				code = code[:snippetMaxChars]
			}
			fmt.Fprintf(&sourceInfo, "\n--- %s ---\n%s\n", name, code)
		}
	}

	return fmt.Sprintf(`Analyze the code flow and execution path of this project:

File Structure:
`+"```json"+`
%s
`+"```"+`
%s

Please provide:
1. **Execution Flow**: Step-by-step execution path from entry point
2. **Module Dependencies**: How modules depend on each other
3. **Data Flow**: How data moves through the application
4. **Key Functions**: Important functions and their roles
5. **Interaction Diagram**: Describe how components interact
6. **Critical Paths**: Performance bottlenecks or important execution paths
7. **Recommendations**: Suggestions for improving code flow`, treeJSON, sourceInfo.String())
}

// BuildIssuesPrompt asks for a summary of the JSON-serialized issue list.
func BuildIssuesPrompt(issuesJSON string) string {
	return fmt.Sprintf(`Analyze and summarize the following project issues:
`+"```json"+`
%s
`+"```"+`

Please provide:
1. **Overall Summary**: High-level overview of all issues
2. **Categorization**: Group by type (bugs, features, enhancements, etc.)
3. **Priority Analysis**: Identify high-priority issues
4. **Common Themes**: Recurring patterns or related issues
5. **Statistics**: Count of each issue type
6. **Action Items**: Recommended next steps
7. **Critical Issues**: Issues that need immediate attention

Format the response in a clear, structured way.`, issuesJSON)
}
