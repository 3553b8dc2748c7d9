package checker

import (
	"strings"

	"github.com/kata-containers/check-versions/internal/manifest"
)

// Protocol is the upstream API shape used to find a component's latest version.
type Protocol int

const (
	// ProtocolNone means the component is not checked
	ProtocolNone Protocol = iota
	// ProtocolGitHubReleases queries a GitHub "latest release" endpoint derived from the manifest URL
	ProtocolGitHubReleases
	// ProtocolGitLabTags queries a GitLab repository tags endpoint
	ProtocolGitLabTags
	// ProtocolPlainText treats the whole response body as the version
	ProtocolPlainText
	// ProtocolLanguageFeed queries a fixed GitHub release endpoint for a toolchain
	ProtocolLanguageFeed
)

var protocolNames = map[Protocol]string{
	ProtocolNone:           "none",
	ProtocolGitHubReleases: "github-releases",
	ProtocolGitLabTags:     "gitlab-tags",
	ProtocolPlainText:      "plain-text",
	ProtocolLanguageFeed:   "language-feed",
}

func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return "unknown"
}

// Source is the classified upstream of a component.
type Source struct {
	Protocol Protocol
	Endpoint string
}

const (
	githubHost      = "github.com"
	githubWebPrefix = "https://github.com"
	githubAPIPrefix = "https://api.github.com/repos"
	latestRelease   = "/releases/latest"
)

// IsGitHubURL reports whether url points at github.com (or its API host).
func IsGitHubURL(url string) bool {
	return strings.Contains(url, githubHost)
}

// NormalizeGitHubURL rewrites a repository URL into its "latest release"
// API endpoint. An already-normalized endpoint is returned unchanged.
func NormalizeGitHubURL(url string) string {
	if strings.HasPrefix(url, githubAPIPrefix) && strings.HasSuffix(url, latestRelease) {
		return url
	}

	switch {
	case strings.Contains(url, "runtime-spec"):
		// runtime-spec links to its releases listing, not the repository root.
		endpoint := strings.Replace(url, githubWebPrefix, githubAPIPrefix, 1)
		if strings.HasSuffix(endpoint, "/releases") {
			endpoint += "/latest"
		}
		return endpoint
	case strings.Contains(url, "containerd/containerd"):
		// Declared without a scheme, so only the host is replaced.
		return strings.Replace(url, githubHost, githubAPIPrefix, 1) + latestRelease
	default:
		return strings.Replace(url, githubWebPrefix, githubAPIPrefix, 1) + latestRelease
	}
}

// Classify selects the provider protocol and query endpoint for a component.
//
// Components with a GitHub URL use the releases API. Components with any
// other URL are only checked when their name has a hosted override, and
// components without a URL are treated as language toolchains and looked
// up by name. Everything else classifies as ProtocolNone.
func Classify(c manifest.Component) Source {
	if c.URL == "" {
		if src, ok := languageOverrides[c.Name]; ok {
			return src
		}
		return Source{Protocol: ProtocolNone}
	}

	if IsGitHubURL(c.URL) {
		return Source{Protocol: ProtocolGitHubReleases, Endpoint: NormalizeGitHubURL(c.URL)}
	}

	// Architecture entries share a project URL and never match name overrides.
	if !c.ArchitectureSpecific {
		if src, ok := hostedOverrides[c.Name]; ok {
			return src
		}
	}
	return Source{Protocol: ProtocolNone}
}
