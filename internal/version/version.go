// Package version carries the build fingerprint of the lintwire CLI.
// The variables can be overridden at build time via -ldflags.
package version

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// Toolchain identifies the host build plugins are checked against.
	Toolchain = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)
