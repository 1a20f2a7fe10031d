// Package version derives the build identity reported in /health and log
// startup lines. An -ldflags override wins, then VCS metadata from the Go
// build info, then "dev" for test binaries and non-git builds.
package version

import "runtime/debug"

// AppName prefixes version strings and user agents.
const AppName = "redclaw"

// gitCommitOverride is injected with -ldflags for container builds that
// compile outside a git checkout.
var gitCommitOverride string

// GitCommit is the short commit hash, or "dev" when nothing better exists.
var GitCommit = resolveCommit()

func resolveCommit() string {
	if gitCommitOverride != "" {
		return shortHash(gitCommitOverride)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return shortHash(s.Value)
			}
		}
	}
	return "dev"
}

func shortHash(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "redclaw/<commit>".
func Full() string {
	return AppName + "/" + GitCommit
}
