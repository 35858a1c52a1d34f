package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/cwalker/chimera/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/cwalker/chimera/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/cwalker/chimera/internal/version.Date={{.Date}}
)
