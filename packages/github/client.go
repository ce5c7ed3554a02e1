package github

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	gogithub "github.com/google/go-github/github"
	"golang.org/x/oauth2"
)

// requestTimeout caps every API call. There are no retries: one attempt per
// request is the whole failure-handling policy.
const requestTimeout = 10 * time.Second

var (
	// ErrNotFound covers non-2xx responses, network failures and timeouts
	// uniformly. It is a normal terminal outcome, not a fault.
	ErrNotFound = errors.New("github: no usable result")

	// ErrMalformed marks a decodable response that is missing an expected
	// field, such as a tree listing without its entry list.
	ErrMalformed = errors.New("github: malformed response")
)

// Client is a read-only wrapper around the GitHub REST API covering the
// endpoints the dashboard needs: branch metadata, recursive tree listings,
// README content, file content and open issues.
type Client struct {
	api *gogithub.Client
}

// NewClient builds a client authenticated with the GITHUB_TOKEN environment
// variable when it is set. Without a token requests still work, just under
// the lower anonymous rate limit.
func NewClient() *Client {
	return NewClientWithToken(os.Getenv("GITHUB_TOKEN"))
}

// NewClientWithToken builds a client with an explicit bearer token. An empty
// token means anonymous access.
func NewClientWithToken(token string) *Client {
	httpClient := &http.Client{Timeout: requestTimeout}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), src)
		httpClient.Timeout = requestTimeout
	}
	return &Client{api: gogithub.NewClient(httpClient)}
}

// SetBaseURL points the client at a different API endpoint. Tests use it to
// target a local fake server.
func (c *Client) SetBaseURL(raw string) error {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return err
	}
	c.api.BaseURL = base
	return nil
}
