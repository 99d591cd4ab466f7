package version

// Build information set by ldflags
var (
	Version = "0.4.1"   // Set by goreleaser: -X github.com/arthur-debert/boil/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/boil/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/boil/internal/version.Date={{.Date}}
)
