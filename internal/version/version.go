// Package version exposes build metadata.
package version

// Overridden at build time via -ldflags. Defaults cover local builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = ""
)
