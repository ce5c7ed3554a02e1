package session

import (
	"context"
	"sync"

	"repo-radar/packages/ai"
	"repo-radar/packages/config"
	"repo-radar/packages/github"
)

// Options holds the user-entered inputs that gate every dashboard page.
type Options struct {
	Language      string
	APIKey        string
	APIType       string
	RepositoryURL string
}

// SaveResult reports what a Save call accepted.
type SaveResult struct {
	KeyAccepted bool   `json:"key_accepted"`
	APIType     string `json:"api_type"`
	URLAccepted bool   `json:"url_accepted"`
}

// Session is the explicit per-user state object: validated inputs plus a
// cache of computed report content. It replaces ambient globals; callers
// create one per user and pass it where needed.
type Session struct {
	mu       sync.Mutex
	options  Options
	fileTree string
	reports  map[string]string

	// validateKey returns the provider name for an accepted key.
	validateKey func(ctx context.Context, key string) (string, error)
	validateURL func(raw string) bool
}

// New creates a session backed by real provider detection and URL
// validation.
func New() *Session {
	return NewWithValidators(
		func(ctx context.Context, key string) (string, error) {
			provider, err := ai.Detect(ctx, key)
			if err != nil {
				return "", err
			}
			return provider.Name(), nil
		},
		github.URLCheck,
	)
}

// NewWithValidators creates a session with injected validators. Tests use it
// to avoid network calls.
func NewWithValidators(validateKey func(ctx context.Context, key string) (string, error), validateURL func(raw string) bool) *Session {
	return &Session{
		options:     Options{Language: config.GetConfig().AI.Language},
		reports:     make(map[string]string),
		validateKey: validateKey,
		validateURL: validateURL,
	}
}

// Save validates both inputs and stores whichever pass, clearing the stored
// value for whichever fail. All cached report content is discarded first, so
// stale reports never survive an input change.
func (s *Session) Save(ctx context.Context, apiKey, repositoryURL string) SaveResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.fileTree = ""
	s.reports = make(map[string]string)

	var result SaveResult
	if apiType, err := s.validateKey(ctx, apiKey); err == nil {
		s.options.APIKey = apiKey
		s.options.APIType = apiType
		result.KeyAccepted = true
		result.APIType = apiType
	} else {
		s.options.APIKey = ""
		s.options.APIType = ""
	}

	if s.validateURL(repositoryURL) {
		s.options.RepositoryURL = repositoryURL
		result.URLAccepted = true
	} else {
		s.options.RepositoryURL = ""
	}

	return result
}

// Reset clears all inputs and cached content.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.options = Options{Language: config.GetConfig().AI.Language}
	s.fileTree = ""
	s.reports = make(map[string]string)
}

// Ready reports whether both a key and a URL have been accepted.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.options.APIKey != "" && s.options.RepositoryURL != ""
}

// Options returns a copy of the current options.
func (s *Session) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.options
}

// FileTree returns the cached rendered tree, if any.
func (s *Session) FileTree() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileTree
}

// SetFileTree caches a rendered tree.
func (s *Session) SetFileTree(rendered string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fileTree = rendered
}

// Report returns the cached content for a report kind.
func (s *Session) Report(kind string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	content, ok := s.reports[kind]
	return content, ok
}

// SetReport caches report content.
func (s *Session) SetReport(kind, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reports[kind] = content
}
