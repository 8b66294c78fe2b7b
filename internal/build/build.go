// Package build holds version information injected at link time.
package build

// These are set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
