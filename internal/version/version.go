package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/konradko/linkify/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/konradko/linkify/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/konradko/linkify/internal/version.Date={{.Date}}
)

// String returns the full version line.
func String() string {
	return fmt.Sprintf("linkify %s (commit %s, built %s)", Version, Commit, Date)
}
