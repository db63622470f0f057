package toolman

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser.
	// For development builds, this shows "dev".
	version = "dev"

	// commit is set via ldflags during build by GoReleaser.
	commit = "unknown"

	// buildTime is set via ldflags during build by GoReleaser, RFC3339.
	buildTime = "unknown"
)

// Version returns the compiled version, or "dev" if run from source.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go toolchain version used to build this binary.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the identifier string Toolman uses when it needs to
// identify itself to an external collaborator (an MCP client, a log line).
func UserAgent() string {
	return fmt.Sprintf("toolman/%s", version)
}

// BuildInfo returns a multi-line summary of all build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
