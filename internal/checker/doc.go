// Package checker resolves the current and latest version of every
// component in a versions manifest.
//
// The package implements:
//   - current version extraction (tag, then branch, then version)
//   - classification of a component's upstream into a provider protocol
//   - one Resolver per protocol (GitHub releases, GitLab tags, plain text)
//   - the Engine that walks the manifest and reports one line per component
//
// A failure on one component is reported as a warning line and never stops
// the run. Components whose upstream cannot be checked automatically are
// skipped without output.
//
// Usage:
//
//	engine := checker.NewEngine(sink, checker.WithGitHubToken(token))
//	results, err := engine.Run(ctx, versions)
package checker
