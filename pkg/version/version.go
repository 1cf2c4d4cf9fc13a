// Package version reports which build of inquira is running.
//
// The commit hash comes from the embedded VCS stamp that the Go toolchain
// records for git checkouts. Container builds without a .git directory can
// inject one instead:
//
//	go build -ldflags "-X github.com/inquira/inquira/pkg/version.commit=$SHA"
//
// When neither source is available (go test, tarball builds) the commit
// reads "dev".
package version

import "runtime/debug"

// AppName prefixes version strings and user agents.
const AppName = "inquira"

// commit carries an optional -ldflags override for builds without VCS info.
var commit string

// GitCommit is the short commit hash of this build, or "dev".
var GitCommit = resolveCommit()

func resolveCommit() string {
	if commit != "" {
		return short(commit)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return short(s.Value)
			}
		}
	}
	return "dev"
}

// short truncates a revision to the familiar 8-character form.
func short(rev string) string {
	if len(rev) > 8 {
		return rev[:8]
	}
	return rev
}

// Full returns "inquira/<commit>", suitable for startup logs and health
// responses.
func Full() string {
	return AppName + "/" + GitCommit
}
