package checker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kata-containers/check-versions/internal/common/httpclient"
)

// ErrParser is returned when an upstream response does not have the expected shape.
var ErrParser = errors.New("unexpected upstream response")

// UserAgent is sent to the GitHub and GitLab APIs.
const UserAgent = "Check Versions v1.0"

// Resolver fetches the latest version published at an endpoint.
type Resolver interface {
	// FetchLatest performs one blocking request and extracts the latest version.
	FetchLatest(ctx context.Context, endpoint string) (string, error)

	// GetName returns a human-readable name for this resolver
	GetName() string
}

// GitHubResolver reads the tag of a GitHub "latest release" response.
type GitHubResolver struct {
	Client    *httpclient.Client
	UserAgent string
	// Token is an optional personal access token; empty means unauthenticated
	Token string
}

// GitHubRelease is the part of the releases API response the resolver reads.
type GitHubRelease struct {
	TagName string `json:"tag_name"`
}

// NewGitHubResolver creates a resolver for GitHub release endpoints.
func NewGitHubResolver(client *httpclient.Client, token string) *GitHubResolver {
	return &GitHubResolver{
		Client:    client,
		UserAgent: UserAgent,
		Token:     token,
	}
}

// GetName returns the resolver name
func (r *GitHubResolver) GetName() string {
	return "GitHub releases API"
}

// FetchLatest returns the top-level tag_name of the release at endpoint.
func (r *GitHubResolver) FetchLatest(ctx context.Context, endpoint string) (string, error) {
	body, err := r.Client.Get(ctx, endpoint, map[string]string{
		"User-Agent":    r.UserAgent,
		"Authorization": httpclient.BearerToken(r.Token),
	})
	if err != nil {
		return "", err
	}
	return parseGitHubRelease(body)
}

func parseGitHubRelease(body []byte) (string, error) {
	var release map[string]any
	if err := json.Unmarshal(body, &release); err != nil {
		return "", fmt.Errorf("%w: GitHub response is not a JSON object: %v", ErrParser, err)
	}

	tag, ok := release["tag_name"].(string)
	if !ok {
		return "", fmt.Errorf("%w: missing string field tag_name", ErrParser)
	}
	return tag, nil
}

// GitLabResolver reads the first entry of a GitLab repository tags listing.
// The API lists tags newest first; the order is not verified.
type GitLabResolver struct {
	Client    *httpclient.Client
	UserAgent string
}

// GitLabTag is the part of a tags API entry the resolver reads.
type GitLabTag struct {
	Name string `json:"name"`
}

// NewGitLabResolver creates a resolver for GitLab tag endpoints.
func NewGitLabResolver(client *httpclient.Client) *GitLabResolver {
	return &GitLabResolver{
		Client:    client,
		UserAgent: UserAgent,
	}
}

// GetName returns the resolver name
func (r *GitLabResolver) GetName() string {
	return "GitLab tags API"
}

// FetchLatest returns the name of the first tag listed at endpoint.
func (r *GitLabResolver) FetchLatest(ctx context.Context, endpoint string) (string, error) {
	body, err := r.Client.Get(ctx, endpoint, map[string]string{
		"User-Agent": r.UserAgent,
	})
	if err != nil {
		return "", err
	}
	return parseGitLabTags(body)
}

func parseGitLabTags(body []byte) (string, error) {
	var tags []map[string]any
	if err := json.Unmarshal(body, &tags); err != nil {
		return "", fmt.Errorf("%w: GitLab response is not a JSON array of objects: %v", ErrParser, err)
	}
	if len(tags) == 0 {
		return "", fmt.Errorf("%w: empty tag list", ErrParser)
	}

	name, ok := tags[0]["name"].(string)
	if !ok {
		return "", fmt.Errorf("%w: first tag has no string field name", ErrParser)
	}
	return name, nil
}

// PlainTextResolver returns the response body as the version, untouched.
type PlainTextResolver struct {
	Client *httpclient.Client
}

// NewPlainTextResolver creates a resolver for plain-text version endpoints.
func NewPlainTextResolver(client *httpclient.Client) *PlainTextResolver {
	return &PlainTextResolver{Client: client}
}

// GetName returns the resolver name
func (r *PlainTextResolver) GetName() string {
	return "plain-text endpoint"
}

// FetchLatest returns the body at endpoint verbatim, trailing newline included.
func (r *PlainTextResolver) FetchLatest(ctx context.Context, endpoint string) (string, error) {
	body, err := r.Client.Get(ctx, endpoint, nil)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Ensure resolvers implement the Resolver interface
var (
	_ Resolver = (*GitHubResolver)(nil)
	_ Resolver = (*GitLabResolver)(nil)
	_ Resolver = (*PlainTextResolver)(nil)
)
