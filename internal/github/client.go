// Package github is the remote data source: a thin wrapper around the
// GitHub REST API for the two operations this application performs.
package github

import (
	"context"
	"errors"
	"fmt"
	"os"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"

	"github.com/spiffcs/ghfind/internal/log"
)

// searchPerPage is the page size requested from the search endpoint.
// A single page is fetched; there is no pagination.
const searchPerPage = 30

// StatusError reports a non-2xx HTTP response. The remote does not
// distinguish status codes further; callers render the message as-is.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Network request failed with code: %d", e.StatusCode)
}

// Client wraps the GitHub API client.
type Client struct {
	client *gh.Client
	// token is intentionally unexported. NEVER add String(), MarshalJSON(),
	// or any method that could expose this value in logs or serialized output.
	token string
}

// Option configures a Client.
type Option func(*Client) error

// WithBaseURL points the client at a different API root (GitHub
// Enterprise, or a test server).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		u, err := c.client.BaseURL.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", baseURL, err)
		}
		if u.Path == "" || u.Path[len(u.Path)-1] != '/' {
			u.Path += "/"
		}
		c.client.BaseURL = u
		return nil
	}
}

// NewClient creates a new GitHub client using a personal access token.
// Every outbound request carries the token as a bearer Authorization header.
func NewClient(ctx context.Context, token string, opts ...Option) (*Client, error) {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("GitHub token not provided. Set the GITHUB_TOKEN environment variable")
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	c := &Client{
		client: gh.NewClient(tc),
		token:  token,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SearchUsers issues GET /search/users?q={query} and returns the raw wire
// result. The query is passed through uninterpreted; the upstream service
// decides what it means. A single page is returned, sorted by relevance.
func (c *Client) SearchUsers(ctx context.Context, query string) (*gh.UsersSearchResult, error) {
	opts := &gh.SearchOptions{
		ListOptions: gh.ListOptions{PerPage: searchPerPage},
	}

	result, resp, err := c.client.Search.Users(ctx, query, opts)
	if err != nil {
		return nil, apiError(err)
	}
	log.Debug("searched users", "query", query, "status", resp.StatusCode, "total", result.GetTotal())

	return result, nil
}

// GetUser issues GET /users/{login} and returns the raw wire record. A
// successful response with no body returns a nil user: go-github decodes
// an empty 2xx body into a zero-value User instead of reporting it, so
// the absence has to be detected here.
func (c *Client) GetUser(ctx context.Context, login string) (*gh.User, error) {
	user, resp, err := c.client.Users.Get(ctx, login)
	if err != nil {
		return nil, apiError(err)
	}
	log.Debug("fetched user", "login", login, "status", resp.StatusCode)

	if user == nil || (user.ID == nil && user.Login == nil) {
		return nil, nil
	}
	return user, nil
}

// apiError collapses go-github's typed errors for non-2xx responses into a
// StatusError. Transport failures pass through opaque.
func apiError(err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return &StatusError{StatusCode: errResp.Response.StatusCode}
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return &StatusError{StatusCode: rateErr.Response.StatusCode}
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return &StatusError{StatusCode: abuseErr.Response.StatusCode}
	}
	return err
}
