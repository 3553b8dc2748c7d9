package checker

// languageOverrides maps toolchains, which carry no URL in the manifest,
// to their release feed.
var languageOverrides = map[string]Source{
	"golang": {
		Protocol: ProtocolPlainText,
		Endpoint: "https://golang.org/VERSION?m=text",
	},
	"golangci-lint": {
		Protocol: ProtocolLanguageFeed,
		Endpoint: NormalizeGitHubURL("https://github.com/golangci/golangci-lint"),
	},
	"rust": {
		Protocol: ProtocolLanguageFeed,
		Endpoint: "https://api.github.com/repos/rust-lang/rust/releases/latest",
	},
}

// hostedOverrides maps components hosted outside GitHub to a fixed endpoint.
var hostedOverrides = map[string]Source{
	"virtiofsd": {
		Protocol: ProtocolGitLabTags,
		Endpoint: "https://gitlab.com/api/v4/projects/21523468/repository/tags",
	},
}
