// Package version carries build metadata stamped by the linker.
package version

// Set via -ldflags at release build time; the defaults cover a plain
// go build or go install.
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)
