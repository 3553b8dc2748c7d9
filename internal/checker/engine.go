package checker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kata-containers/check-versions/internal/common/httpclient"
	"github.com/kata-containers/check-versions/internal/common/logger"
	"github.com/kata-containers/check-versions/internal/manifest"
)

// Error variables for engine errors
var (
	// ErrFetchFailed wraps any resolver failure for a component
	ErrFetchFailed = errors.New("failed to fetch latest version")
	// ErrNoResolver is returned when a protocol has no registered resolver
	ErrNoResolver = errors.New("no resolver registered for protocol")
)

// Sink receives report lines in order. A write error aborts the run.
type Sink interface {
	WriteLine(line string) error
}

// CheckResult is the outcome of checking one component.
type CheckResult struct {
	// Name is the component name as reported
	Name string
	// Category is the manifest section of the component
	Category string
	// CurrentVersion is the declared version, or UnknownVersion
	CurrentVersion string
	// LatestVersion is the version found upstream
	LatestVersion string
	// Source is the classified upstream that was queried
	Source Source
	// Error is set when the upstream could not be queried or parsed
	Error error
}

// Line formats the result as a report line.
func (r CheckResult) Line() string {
	if r.Error != nil {
		return fmt.Sprintf("Warning! Failed to check version for %s", r.Name)
	}
	return fmt.Sprintf("project: %s, current_version: %s, latest_version: %s",
		r.Name, r.CurrentVersion, r.LatestVersion)
}

// Engine walks a manifest and checks each component against its upstream.
// Components are checked one at a time in declaration order.
type Engine struct {
	sink      Sink
	resolvers map[Protocol]Resolver
	// client backs the default resolvers
	client      *httpclient.Client
	githubToken string
	timeout     time.Duration
	dryRun      bool
}

// EngineOption is a functional option for configuring Engine
type EngineOption func(*Engine)

// WithGitHubToken sets the bearer token sent to GitHub endpoints.
// An empty token disables authentication.
func WithGitHubToken(token string) EngineOption {
	return func(e *Engine) {
		e.githubToken = token
	}
}

// WithHTTPClient sets the client used by the default resolvers
func WithHTTPClient(client *httpclient.Client) EngineOption {
	return func(e *Engine) {
		e.client = client
	}
}

// WithResolver registers r for protocol p, replacing the default
func WithResolver(p Protocol, r Resolver) EngineOption {
	return func(e *Engine) {
		e.resolvers[p] = r
	}
}

// WithTimeout bounds each upstream request
func WithTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.timeout = d
	}
}

// WithDryRun reports the classified source of each component instead of querying it
func WithDryRun(dryRun bool) EngineOption {
	return func(e *Engine) {
		e.dryRun = dryRun
	}
}

// NewEngine creates an engine writing to sink. Protocols without an
// explicitly registered resolver get the default implementation.
func NewEngine(sink Sink, opts ...EngineOption) *Engine {
	e := &Engine{
		sink:      sink,
		resolvers: make(map[Protocol]Resolver),
		timeout:   httpclient.DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.client == nil {
		e.client = httpclient.New()
	}

	github := NewGitHubResolver(e.client, e.githubToken)
	defaults := map[Protocol]Resolver{
		ProtocolGitHubReleases: github,
		ProtocolLanguageFeed:   github,
		ProtocolGitLabTags:     NewGitLabResolver(e.client),
		ProtocolPlainText:      NewPlainTextResolver(e.client),
	}
	for p, r := range defaults {
		if _, ok := e.resolvers[p]; !ok {
			e.resolvers[p] = r
		}
	}

	return e
}

// Run checks every component of v and writes one line per checked component.
// Only a sink failure is returned; per-component failures become warning lines.
func (e *Engine) Run(ctx context.Context, v *manifest.Versions) ([]CheckResult, error) {
	components := v.Components()
	results := make([]CheckResult, 0, len(components))

	for _, c := range components {
		result, err := e.Check(ctx, c)
		if err != nil {
			return results, err
		}
		if result != nil {
			results = append(results, *result)
		}
	}

	return results, nil
}

// Check checks a single component. It returns a nil result when the
// component has no automatable upstream.
func (e *Engine) Check(ctx context.Context, c manifest.Component) (*CheckResult, error) {
	current, err := CurrentVersion(c)
	if err != nil {
		logger.Debug("%s: %v", c.Name, err)
		if err := e.sink.WriteLine(fmt.Sprintf("Warning! Failed to read version for %s", c.Name)); err != nil {
			return nil, err
		}
		current = UnknownVersion
	}

	src := Classify(c)
	if e.dryRun {
		line := fmt.Sprintf("project: %s, current_version: %s, protocol: %s, endpoint: %s",
			c.Name, current, src.Protocol, src.Endpoint)
		return nil, e.sink.WriteLine(line)
	}

	if src.Protocol == ProtocolNone {
		logger.Debug("%s: no automatable upstream for %q, skipping", c.Name, c.URL)
		return nil, nil
	}

	result := &CheckResult{
		Name:           c.Name,
		Category:       c.Category,
		CurrentVersion: current,
		Source:         src,
	}

	latest, err := e.fetch(ctx, src)
	if err != nil {
		result.Error = fmt.Errorf("%w: %s: %w", ErrFetchFailed, c.Name, err)
		logger.Debug("%v", result.Error)
	} else {
		result.LatestVersion = latest
	}

	if err := e.sink.WriteLine(result.Line()); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) fetch(ctx context.Context, src Source) (string, error) {
	resolver, ok := e.resolvers[src.Protocol]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoResolver, src.Protocol)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	logger.Debug("querying %s via %s", src.Endpoint, resolver.GetName())
	return resolver.FetchLatest(ctx, src.Endpoint)
}
